package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-match/internal"
	"github.com/rocketscienceinc/tictactoe-match/internal/config"
)

type flags struct {
	configPath   string
	logLevel     string
	winningScore int
	firstPlayer  string
	seed         uint64
	botDelay     time.Duration
	plain        bool
}

// main - is the entry point of the application. It parses flags, loads the configuration and plays the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &flags{}

	rootCmd := &cobra.Command{
		Use:          "tictactoe",
		Short:        "Play tic tac toe against the computer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start a match against the computer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "Path to the yaml config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&opts.winningScore, "winning-score", 0, "Rounds needed to win the match")
	rootCmd.PersistentFlags().StringVar(&opts.firstPlayer, "first-player", "", "Who opens every round: human or bot")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "Seed for the computer's random moves")
	rootCmd.PersistentFlags().DurationVar(&opts.botDelay, "bot-delay", 0, "Pause before the computer moves and between rounds")
	rootCmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Don't clear the screen between turns")

	rootCmd.AddCommand(playCmd)

	return rootCmd
}

func runPlay(cmd *cobra.Command, opts *flags) error {
	conf, err := initConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger := initLogger(conf)

	if err = app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config, flags set explicitly win over the file and environment.
func initConfig(cmd *cobra.Command, opts *flags) (*config.Config, error) {
	conf, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		conf.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("winning-score") {
		conf.Match.WinningScore = opts.winningScore
	}
	if cmd.Flags().Changed("first-player") {
		conf.Match.FirstPlayer = opts.firstPlayer
	}
	if cmd.Flags().Changed("seed") {
		conf.Match.Seed = opts.seed
	}
	if cmd.Flags().Changed("bot-delay") {
		conf.Match.BotDelay = opts.botDelay
	}
	if cmd.Flags().Changed("plain") {
		conf.Terminal.Plain = opts.plain
	}

	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// initialize logger. Logs go to stderr so they don't mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}
