package vector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reoring/numlit"
	"github.com/reoring/numlit/internal/logging"
	"github.com/reoring/numlit/source"
)

// Result is the outcome of one case.
type Result struct {
	Kind   numlit.Kind
	Case   source.Case
	Values []string
	// Accepted is the outcome shared by every value of the case.
	Accepted bool
	// Pass reports whether the outcome matched the case's expectations.
	Pass   bool
	Err    error // first rejection
	Detail string
}

// Report collects the results of one vector file.
type Report struct {
	Title       string
	Description string
	Preset      string
	Results     []Result
}

// Failures returns the results whose expectations were not met.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Pass {
			out = append(out, res)
		}
	}
	return out
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run evaluates every case of vf against its preset. It stops early only
// when ctx is done or the file cannot be resolved; failing cases are part of
// the report.
func Run(ctx context.Context, vf *source.VectorFile, opts ...Option) (*Report, error) {
	cfg := &runConfig{logger: logging.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}
	p, err := vf.Preset()
	if err != nil {
		return nil, err
	}
	log := cfg.logger.With(logging.Component("vector"), logging.Preset(p.Name))

	rep := &Report{Title: vf.Metadata.Title, Description: vf.Metadata.Description, Preset: p.Name}
	groups := []struct {
		kind  numlit.Kind
		cases []source.Case
	}{
		{numlit.Float, vf.Floats},
		{numlit.Integer, vf.IntegerCases()},
	}
	for _, g := range groups {
		for _, c := range g.cases {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			res := Evaluate(p, g.kind, c)
			if !res.Pass {
				log.Warn("vector mismatch", slog.String("title", c.Title), slog.Any("values", res.Values), slog.String("detail", res.Detail))
			} else {
				log.Debug("vector ok", slog.String("title", c.Title), slog.Bool("accepted", res.Accepted))
			}
			rep.Results = append(rep.Results, res)
		}
	}
	log.Info("vectors evaluated", slog.String("file", vf.Path), slog.Int("cases", len(rep.Results)), slog.Int("failures", len(rep.Failures())))
	return rep, nil
}

// Evaluate runs a single case. All values of a case must agree on
// acceptance; a value list that does not is reported as a failure.
func Evaluate(p numlit.Preset, kind numlit.Kind, c source.Case) Result {
	res := Result{Kind: kind, Case: c}
	values, err := c.Values()
	if err != nil {
		res.Detail = err.Error()
		return res
	}
	res.Values = values

	var want *numlit.Value
	if c.Want != "" {
		w, err := numlit.ParseValue(c.Want, numlit.Standard(), numlit.Request{Mode: numlit.String, Kind: kind, Base: numlit.Decimal})
		if err != nil {
			res.Detail = fmt.Sprintf("invalid want %q: %v", c.Want, err)
			return res
		}
		want = &w
	}

	for i, text := range values {
		v, err := numlit.ParseValue(text, p.Spec, p.Request(kind))
		accepted := err == nil
		if i == 0 {
			res.Accepted = accepted
		} else if accepted != res.Accepted {
			res.Detail = fmt.Sprintf("inconsistent outcome: %q accepted=%t, %q accepted=%t", values[0], res.Accepted, text, accepted)
			return res
		}
		if err != nil && res.Err == nil {
			res.Err = err
		}
		switch {
		case accepted && want != nil && !v.Equal(*want):
			res.Detail = fmt.Sprintf("%q: want %s, got %s", text, want, v)
		case !accepted && c.Code != "" && !numlit.IsCode(err, c.Code):
			res.Detail = fmt.Sprintf("%q: want code %s, got %v", text, c.Code, err)
		}
		if res.Detail != "" {
			return res
		}
	}
	if res.Accepted != c.ExpectPass() {
		res.Detail = fmt.Sprintf("expected %s, got %s", passWord(c.ExpectPass()), passWord(res.Accepted))
		if res.Err != nil {
			res.Detail += ": " + res.Err.Error()
		}
		return res
	}
	res.Pass = true
	return res
}

func passWord(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
