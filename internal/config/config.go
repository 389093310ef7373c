package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	FirstPlayerHuman = "human"
	FirstPlayerBot   = "bot"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn"`
	Match    Match    `yaml:"match"`
	Terminal Terminal `yaml:"terminal"`
}

// Match - a zero winning-score or bot-delay in yaml is kept as written, see keepExplicitZeros.
type Match struct {
	WinningScore int           `yaml:"winning-score" env:"TTT_WINNING_SCORE" env-default:"5"`
	FirstPlayer  string        `yaml:"first-player" env:"TTT_FIRST_PLAYER" env-default:"human"`
	BotDelay     time.Duration `yaml:"bot-delay" env:"TTT_BOT_DELAY" env-default:"1500ms"`
	Seed         uint64        `yaml:"seed" env:"TTT_SEED" env-default:"0"`
}

// Terminal - zero values from yaml are replaced by env-default, so options default to off.
type Terminal struct {
	Plain bool `yaml:"plain" env:"TTT_PLAIN"`
}

// Load - reads the yaml file if it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		if err = cleanenv.ReadConfig(path, config); err == nil {
			err = keepExplicitZeros(path, config)
		}
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// explicitValues - yaml fields that cleanenv would replace with env-default when they are zero.
type explicitValues struct {
	Match struct {
		WinningScore *int           `yaml:"winning-score"`
		BotDelay     *time.Duration `yaml:"bot-delay"`
	} `yaml:"match"`
}

// keepExplicitZeros - restores zeros written in a yaml file unless the environment overrides them.
func keepExplicitZeros(path string, config *Config) error {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
	default:
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	var explicit explicitValues
	if err = yaml.Unmarshal(content, &explicit); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	if value := explicit.Match.WinningScore; value != nil && *value == 0 && !isEnvSet("TTT_WINNING_SCORE") {
		config.Match.WinningScore = 0
	}

	if value := explicit.Match.BotDelay; value != nil && *value == 0 && !isEnvSet("TTT_BOT_DELAY") {
		config.Match.BotDelay = 0
	}

	return nil
}

func isEnvSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

func (that *Config) Validate() error {
	if that.Match.WinningScore < 1 {
		return fmt.Errorf("%w: winning-score must be positive, got %d", ErrInvalidConfig, that.Match.WinningScore)
	}

	switch that.Match.FirstPlayer {
	case FirstPlayerHuman, FirstPlayerBot:
	default:
		return fmt.Errorf("%w: first-player must be %q or %q, got %q",
			ErrInvalidConfig, FirstPlayerHuman, FirstPlayerBot, that.Match.FirstPlayer)
	}

	if that.Match.BotDelay < 0 {
		return fmt.Errorf("%w: bot-delay must not be negative", ErrInvalidConfig)
	}

	return nil
}
