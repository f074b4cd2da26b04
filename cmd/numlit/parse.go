package main

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/scott-cotton/cli"

	"github.com/reoring/numlit"
)

func parse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		cfg.Parse.Usage(cc, err)
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
	rejected, err := parseTexts(cc.Out, p, kind, texts, cfg.JSON)
	if err != nil {
		return err
	}
	if rejected > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type parseRecord struct {
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
	Value    string `json:"value,omitempty"`
	Class    string `json:"class,omitempty"`
	Code     string `json:"code,omitempty"`
	Offset   *int   `json:"offset,omitempty"`
	Group    string `json:"group,omitempty"`
	Position string `json:"position,omitempty"`
	Message  string `json:"message,omitempty"`
}

func recordOf(text string, v numlit.Value, err error) parseRecord {
	r := parseRecord{Input: text, Accepted: err == nil}
	if err == nil {
		r.Value = v.String()
		if v.Kind == numlit.Float {
			r.Class = v.Class.String()
		}
		return r
	}
	ne, ok := numlit.AsNumberError(err)
	if !ok {
		r.Message = err.Error()
		return r
	}
	r.Code = ne.Code
	r.Message = ne.Message
	if ne.Offset >= 0 {
		off := ne.Offset
		r.Offset = &off
	}
	if ne.Group != numlit.GroupNone {
		r.Group = ne.Group.String()
	}
	if ne.Position != numlit.PositionNone {
		r.Position = ne.Position.String()
	}
	return r
}

// parseTexts extracts every text and returns the number of rejections.
func parseTexts(w io.Writer, p numlit.Preset, kind numlit.Kind, texts []string, asJSON bool) (int, error) {
	req := p.Request(kind)
	enc := json.NewEncoder(w)
	rejected := 0
	for _, text := range texts {
		v, err := numlit.ParseValue(text, p.Spec, req)
		if err != nil {
			rejected++
		}
		var werr error
		switch {
		case asJSON:
			werr = enc.Encode(recordOf(text, v, err))
		case err != nil:
			_, werr = fmt.Fprintf(w, "%s\treject\t%v\n", text, err)
		default:
			_, werr = fmt.Fprintf(w, "%s\t%s\n", text, v)
		}
		if werr != nil {
			return rejected, werr
		}
	}
	return rejected, nil
}
