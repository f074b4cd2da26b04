package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/reoring/numlit/internal/logging"
)

// Env is the environment configuration. A .env file in the working
// directory is loaded first when present.
type Env struct {
	Preset    string `env:"NUMLIT_PRESET" envDefault:"standard"`
	Presets   string `env:"NUMLIT_PRESETS"`
	LogLevel  string `env:"NUMLIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"NUMLIT_LOG_FORMAT" envDefault:"text"`
	Color     string `env:"NUMLIT_COLOR" envDefault:"auto"`
	Lang      string `env:"NUMLIT_LANG" envDefault:"en"`
}

func loadEnv() (Env, error) {
	// the .env file is optional
	_ = godotenv.Load()
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("environment: %w", err)
	}
	switch strings.ToLower(e.Color) {
	case "auto", "always", "never":
		e.Color = strings.ToLower(e.Color)
	default:
		return e, fmt.Errorf("environment: NUMLIT_COLOR must be auto, always or never, got %q", e.Color)
	}
	return e, nil
}

func newLogger(e Env, verbose bool, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(e.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	f := logging.Format(strings.ToLower(e.LogFormat))
	if f != logging.FormatJSON && f != logging.FormatText {
		return nil, fmt.Errorf("environment: NUMLIT_LOG_FORMAT must be json or text, got %q", e.LogFormat)
	}
	return logging.New(
		logging.WithLevel(level),
		logging.WithFormat(f),
		logging.WithOutput(w),
		logging.WithAttr(logging.Component("numlit")),
	), nil
}
