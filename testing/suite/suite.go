package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-match/internal/config"
	"github.com/rocketscienceinc/tictactoe-match/internal/pkg/random"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Random *random.MockRandom
	Config *config.Config
}

// New - context with timeout, silent logger, queue-driven random source and a config without delays.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := &config.Config{
		LogLevel: "debug",
		Match: config.Match{
			WinningScore: 1,
			FirstPlayer:  config.FirstPlayerHuman,
		},
	}

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Random: random.NewMockRandom(),
		Config: conf,
	}
}
