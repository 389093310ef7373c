package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-match/internal/config"
	"github.com/rocketscienceinc/tictactoe-match/internal/pkg/random"
	"github.com/rocketscienceinc/tictactoe-match/internal/service"
	"github.com/rocketscienceinc/tictactoe-match/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-match/internal/transport/terminal"
)

// RunApp - runs the application until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err := Play(ctx, logger, conf, random.New(conf.Match.Seed), terminal.New(in, out, !conf.Terminal.Plain))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	case terminal.IsEndOfInput(err):
		log.Info("Input closed, shutting down")
		return nil
	default:
		return err
	}
}

// Play - sets up both players and runs matches on the given terminal.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, rnd random.Random, term *terminal.Terminal) error {
	playerService := service.NewPlayerService(rnd)
	botService := service.NewBotService(rnd)

	marker, err := term.AskMarker(ctx)
	if err != nil {
		return fmt.Errorf("could not read marker: %w", err)
	}

	name, err := term.AskName(ctx)
	if err != nil {
		return fmt.Errorf("could not read name: %w", err)
	}

	human, err := playerService.CreateHuman(name, marker)
	if err != nil {
		return fmt.Errorf("could not create human player: %w", err)
	}

	bot, err := playerService.CreateBot(human)
	if err != nil {
		return fmt.Errorf("could not create bot player: %w", err)
	}

	controller, err := tictactoe.NewMatchController(logger, conf.Match, human, bot, botService, term)
	if err != nil {
		return fmt.Errorf("could not create match controller: %w", err)
	}

	if err = controller.Run(ctx); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return nil
}
