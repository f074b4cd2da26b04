package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/reoring/numlit"
)

func format(cfg *FormatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Format.Parse(cc, args)
	if err != nil {
		cfg.Format.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: format requires at least one value", cli.ErrUsage)
	}
	p, err := cfg.preset()
	if err != nil {
		return err
	}
	kind, err := parseKind(cfg.Kind)
	if err != nil {
		return err
	}
	failed, err := formatValues(cc.Out, p, kind, args)
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// formatValues reads each argument as a standard decimal number and writes
// it in p's grammar. It returns the number of values p cannot represent.
func formatValues(w io.Writer, p numlit.Preset, kind numlit.Kind, args []string) (int, error) {
	in := numlit.Request{Mode: numlit.String, Kind: kind, Base: numlit.Decimal}
	failed := 0
	for _, arg := range args {
		v, err := numlit.ParseValue(arg, numlit.Standard(), in)
		if err != nil {
			return failed, fmt.Errorf("%w: %q is not a decimal %s: %v", cli.ErrUsage, arg, kind, err)
		}
		text, err := numlit.FormatValue(v, p.Spec, p.Request(kind).Base)
		if err != nil {
			failed++
			if _, werr := fmt.Fprintf(w, "error\t%s\t%v\n", arg, err); werr != nil {
				return failed, werr
			}
			continue
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return failed, err
		}
	}
	return failed, nil
}
