package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"github.com/reoring/numlit"
	"github.com/reoring/numlit/source"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: presets takes no arguments", cli.ErrUsage)
	}
	if cfg.JSON && cfg.YAML {
		return fmt.Errorf("%w: -json and -yaml are exclusive", cli.ErrUsage)
	}
	return listPresets(cc.Out, numlit.Presets(), cfg.JSON, cfg.YAML)
}

// listPresets prints a table, or a preset file that -presets can load back.
func listPresets(w io.Writer, ps []numlit.Preset, asJSON, asYAML bool) error {
	pf := source.PresetFile{Presets: make([]numlit.PresetDocument, 0, len(ps))}
	for _, p := range ps {
		pf.Presets = append(pf.Presets, numlit.PresetDocumentOf(p))
	}
	switch {
	case asJSON:
		d, err := json.MarshalIndent(pf, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case asYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pf); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, p := range ps {
		req := p.Request(numlit.Integer)
		if _, err := fmt.Fprintf(w, "%-20s %-11s %-7s %s\n", p.Name, req.Base, p.Mode, p.Description); err != nil {
			return err
		}
	}
	return nil
}

func flags(cfg *FlagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flags.Parse(cc, args)
	if err != nil {
		cfg.Flags.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: flags takes no arguments", cli.ErrUsage)
	}
	return listFlags(cc.Out)
}

func listFlags(w io.Writer) error {
	for _, fi := range numlit.Flags() {
		if _, err := fmt.Fprintf(w, "%-4s %s\n", fi.Code, fi.Name); err != nil {
			return err
		}
	}
	return nil
}
