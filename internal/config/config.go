// Package config loads the gateway configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/reqschema/internal/server"
	"github.com/dmitrymomot/reqschema/pkg/logger"
)

// Config is the complete gateway configuration.
type Config struct {
	HTTP server.Config

	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"reqschema"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"`

	// RoutesFile is the YAML file describing the validated routes.
	RoutesFile  string `env:"ROUTES_FILE" envDefault:"routes.yaml"`
	MaxBodySize int64  `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

var dotenvLoaded sync.Once

// Load reads a .env file from the working directory if there is one, then
// parses the environment into a Config.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.Level(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	switch logger.Format(c.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: LOG_FORMAT must be %q or %q, got %q", ErrInvalidConfig, logger.FormatJSON, logger.FormatText, c.LogFormat)
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("%w: MAX_BODY_SIZE must be positive, got %d", ErrInvalidConfig, c.MaxBodySize)
	}
	if c.RoutesFile == "" {
		return fmt.Errorf("%w: ROUTES_FILE is empty", ErrInvalidConfig)
	}
	return nil
}

// Level returns the parsed LOG_LEVEL.
func (c Config) Level() (slog.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// LoggerOptions translates the logging settings into logger options.
// An empty LOG_FORMAT keeps the format chosen for APP_ENV.
func (c Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.AppEnv, c.ServiceName)}
	if level, err := c.Level(); err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return opts
}
