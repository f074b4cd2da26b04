package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"github.com/reoring/numlit"
	"github.com/reoring/numlit/internal/logging"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	p, err := cfg.preset()
	if err != nil {
		return err
	}
	kind, err := parseKind(cfg.Kind)
	if err != nil {
		return err
	}
	texts, err := inputs(cc, args)
	if err != nil {
		return err
	}
	rejected, err := checkTexts(cc.Out, p, kind, texts, cfg.Quiet, cfg.logger())
	if err != nil {
		return err
	}
	if rejected > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkTexts writes one "ok" or "reject" line per text and returns the
// number of rejections.
func checkTexts(w io.Writer, p numlit.Preset, kind numlit.Kind, texts []string, quiet bool, log *slog.Logger) (int, error) {
	req := p.Request(kind)
	log = log.With(logging.Preset(p.Name))
	rejected := 0
	for _, text := range texts {
		o := numlit.Validate(text, p.Spec, req)
		if !o.Accepted() {
			rejected++
			log.Debug("rejected", logging.Input(text), logging.Error(o.Err))
		}
		if quiet {
			continue
		}
		var err error
		if o.Accepted() {
			_, err = fmt.Fprintf(w, "ok\t%s\n", text)
		} else {
			_, err = fmt.Fprintf(w, "reject\t%s\t%v\n", text, o.Err)
		}
		if err != nil {
			return rejected, err
		}
	}
	return rejected, nil
}
