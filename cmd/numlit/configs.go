package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/reoring/numlit"
	"github.com/reoring/numlit/i18n"
	"github.com/reoring/numlit/internal/logging"
	"github.com/reoring/numlit/source"
)

type MainConfig struct {
	Preset     string `cli:"name=p aliases=preset desc='preset to use (default $NUMLIT_PRESET)'"`
	Presets    string `cli:"name=presets desc='register presets from a yaml, json or toml file'"`
	Base       string `cli:"name=b aliases=base desc='override the preset base: 2, 8, 10, 16'"`
	Literal    bool   `cli:"name=literal desc='judge text as source-code literals'"`
	StringMode bool   `cli:"name=string desc='judge text as serialized strings'"`
	Verbose    bool   `cli:"name=v desc='debug logging'"`

	Out      string
	CloseOut func() error

	Env Env
	Log *slog.Logger

	Ctx context.Context

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// setup loads the environment, the logger and any preset file. It runs once
// before the subcommand.
func (cfg *MainConfig) setup(stderr io.Writer) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	cfg.Env = e
	if cfg.Log, err = newLogger(e, cfg.Verbose, stderr); err != nil {
		return err
	}
	i18n.SetLanguage(e.Lang)

	for _, path := range []string{e.Presets, cfg.Presets} {
		if path == "" {
			continue
		}
		ps, err := source.RegisterPresets(path)
		if err != nil {
			return err
		}
		cfg.Log.Debug("presets registered", slog.String("file", path), slog.Int("count", len(ps)))
	}
	return nil
}

func (cfg *MainConfig) context() context.Context {
	if cfg.Ctx == nil {
		return context.Background()
	}
	return cfg.Ctx
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.Log == nil {
		return logging.Discard()
	}
	return cfg.Log
}

// preset resolves -p (or $NUMLIT_PRESET) and applies -b, -literal and
// -string.
func (cfg *MainConfig) preset() (numlit.Preset, error) {
	name := cfg.Preset
	if name == "" {
		name = cfg.Env.Preset
	}
	if name == "" {
		name = "standard"
	}
	p, ok := numlit.Lookup(name)
	if !ok {
		return p, fmt.Errorf("%w: unknown preset %q", cli.ErrUsage, name)
	}
	if cfg.Base != "" {
		b, err := numlit.ParseBase(cfg.Base)
		if err != nil {
			return p, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		p.Base = b
	}
	switch {
	case cfg.Literal && cfg.StringMode:
		return p, fmt.Errorf("%w: -literal and -string are exclusive", cli.ErrUsage)
	case cfg.Literal:
		p.Mode = numlit.Literal
	case cfg.StringMode:
		p.Mode = numlit.String
	}
	return p, nil
}

// useColor reports whether w gets ANSI colors: forced by flag, then
// $NUMLIT_COLOR, then whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer, force bool) bool {
	if force {
		return true
	}
	switch cfg.Env.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func parseKind(s string) (numlit.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float", "f":
		return numlit.Float, nil
	case "integer", "int", "i":
		return numlit.Integer, nil
	}
	return numlit.Float, fmt.Errorf("%w: kind must be float or integer, got %q", cli.ErrUsage, s)
}

type CheckConfig struct {
	*MainConfig
	Kind  string `cli:"name=k aliases=kind desc='float or integer' default=float"`
	Quiet bool   `cli:"name=q desc='print nothing, only set the exit code'"`

	Check *cli.Command
}

type ParseConfig struct {
	*MainConfig
	Kind string `cli:"name=k aliases=kind desc='float or integer' default=float"`
	JSON bool   `cli:"name=json desc='print one JSON object per input'"`

	Parse *cli.Command
}

type FormatConfig struct {
	*MainConfig
	Kind string `cli:"name=k aliases=kind desc='float or integer' default=float"`

	Format *cli.Command
}

type ListConfig struct {
	*MainConfig
	JSON bool `cli:"name=json desc='print presets as a JSON preset file'"`
	YAML bool `cli:"name=yaml desc='print presets as a YAML preset file'"`

	List *cli.Command
}

type FlagsConfig struct {
	*MainConfig

	Flags *cli.Command
}

type RunConfig struct {
	*MainConfig
	Golden string `cli:"name=golden desc='compare the report with a golden file'"`
	Update bool   `cli:"name=update desc='rewrite the golden file instead of comparing'"`
	Color  bool   `cli:"name=color desc='color the report'"`

	Run *cli.Command
}
