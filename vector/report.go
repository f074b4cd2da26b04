package vector

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/reoring/numlit"
)

const (
	markPass = "✅"
	markFail = "❌"
)

// RenderOpt controls Markdown output.
type RenderOpt struct {
	// Color adds ANSI colors to headings and mismatches.
	Color bool
}

type palette struct {
	title    func(format string, a ...any) string
	mismatch func(format string, a ...any) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		plain := func(format string, a ...any) string { return fmt.Sprintf(format, a...) }
		return palette{title: plain, mismatch: plain}
	}
	title := color.New(color.FgCyan, color.Bold)
	title.EnableColor()
	mismatch := color.RGB(196, 64, 64)
	mismatch.EnableColor()
	return palette{title: title.SprintfFunc(), mismatch: mismatch.SprintfFunc()}
}

// Markdown writes the report as a Markdown section: a heading, the
// description and one table per kind with a Flag, Pass, Value and Title
// column. Pass marks acceptance. Cases whose expectations were not met are
// listed after the tables.
func (r *Report) Markdown(w io.Writer, opt RenderOpt) error {
	pal := newPalette(opt.Color)
	b := &strings.Builder{}
	b.WriteString(pal.title("## %s", r.Title))
	b.WriteString("\n\n")
	if r.Description != "" {
		b.WriteString(strings.TrimSpace(r.Description))
		b.WriteString("\n\n")
	}
	for _, kind := range []numlit.Kind{numlit.Float, numlit.Integer} {
		var rows []Result
		for _, res := range r.Results {
			if res.Kind == kind {
				rows = append(rows, res)
			}
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(b, "### %s\n\n", kindHeading(kind))
		b.WriteString("| Flag | Pass | Value | Title |\n")
		b.WriteString("|:----:|:----:|:-----:|:-----:|\n")
		for _, res := range rows {
			mark := markFail
			if res.Accepted {
				mark = markPass
			}
			fmt.Fprintf(b, "| %s | %s | %s | %s |\n", res.Case.Flags, mark, valueCell(res.Values), res.Case.Title)
		}
		b.WriteString("\n")
	}
	if fails := r.Failures(); len(fails) > 0 {
		b.WriteString(pal.mismatch("%d mismatch(es):", len(fails)))
		b.WriteString("\n\n")
		for _, res := range fails {
			fmt.Fprintf(b, "- %s: %s\n", res.Case.Title, pal.mismatch("%s", res.Detail))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// String renders the report without colors.
func (r *Report) String() string {
	b := &strings.Builder{}
	_ = r.Markdown(b, RenderOpt{})
	return b.String()
}

func kindHeading(k numlit.Kind) string {
	if k == numlit.Float {
		return "Floats"
	}
	return "Integers"
}

func valueCell(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		// pipes would split the table cell
		parts[i] = "`" + strings.ReplaceAll(v, "|", `\|`) + "`"
	}
	return strings.Join(parts, ", ")
}
