package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/reoring/numlit/source"
	"github.com/reoring/numlit/vector"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: run requires at least one vector file", cli.ErrUsage)
	}
	if cfg.Update && cfg.Golden == "" {
		return fmt.Errorf("%w: -update needs -golden", cli.ErrUsage)
	}
	// golden files are compared uncolored
	color := cfg.Golden == "" && cfg.useColor(cc.Out, cfg.Color)
	report, failures, err := runVectors(cfg.context(), args, color, cfg.logger())
	if err != nil {
		return err
	}
	switch {
	case cfg.Golden == "":
		if _, err := io.WriteString(cc.Out, report); err != nil {
			return err
		}
	case cfg.Update:
		if err := os.WriteFile(cfg.Golden, []byte(report), 0o644); err != nil {
			return fmt.Errorf("write golden: %w", err)
		}
		cfg.logger().Info("golden file updated", slog.String("file", cfg.Golden))
	default:
		differs, err := compareGolden(cc.Out, cfg.Golden, report)
		if err != nil {
			return err
		}
		if differs {
			return cli.ExitCodeErr(1)
		}
	}
	if failures > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// runVectors renders the reports of every file and counts the cases whose
// expectations were not met.
func runVectors(ctx context.Context, paths []string, color bool, log *slog.Logger) (string, int, error) {
	b := &strings.Builder{}
	failures := 0
	for i, path := range paths {
		vf, err := source.LoadVectors(path)
		if err != nil {
			return "", 0, err
		}
		rep, err := vector.Run(ctx, vf, vector.WithLogger(log))
		if err != nil {
			return "", 0, fmt.Errorf("%s: %w", path, err)
		}
		failures += len(rep.Failures())
		if i > 0 {
			b.WriteString("\n")
		}
		if err := rep.Markdown(b, vector.RenderOpt{Color: color}); err != nil {
			return "", 0, err
		}
	}
	return b.String(), failures, nil
}

func compareGolden(w io.Writer, path, report string) (bool, error) {
	want, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read golden: %w", err)
	}
	d, differs := vector.Diff(string(want), report)
	if !differs {
		return false, nil
	}
	_, err = fmt.Fprintf(w, "report differs from %s:\n%s", path, d)
	return true, err
}
