// Package config holds the environment based settings of the times command line tool.
package config

import (
	"io"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrInvalidLogLevel errorkit.Error = "ErrInvalidLogLevel"

type Config struct {
	// LogLevel is the minimum level of the logging entries written to the error output.
	LogLevel string `env:"TIMES_LOG_LEVEL" default:"info"`
	// Separator is written between the printed numbers.
	Separator string `env:"TIMES_SEPARATOR" default:"\n"`
}

var levels = []logging.Level{
	logging.LevelDebug,
	logging.LevelInfo,
	logging.LevelWarn,
	logging.LevelError,
	logging.LevelFatal,
}

// Load reads the Config from the environment variables.
func Load() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, ok := c.level(); !ok {
		return ErrInvalidLogLevel.F("unknown logging level: %q", c.LogLevel)
	}
	return nil
}

func (c Config) level() (logging.Level, bool) {
	for _, lvl := range levels {
		if string(lvl) == c.LogLevel {
			return lvl, true
		}
	}
	return "", false
}

// Logger makes a structured logger that writes to out with the configured level.
func (c Config) Logger(out io.Writer) *logging.Logger {
	lvl, ok := c.level()
	if !ok {
		lvl = logging.LevelInfo
	}
	return &logging.Logger{Out: out, Level: lvl}
}
