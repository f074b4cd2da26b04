package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/reoring/numlit"
)

// VectorFile is a set of test vectors for one format: a metadata table and
// float and integer cases.
type VectorFile struct {
	Path     string                 `yaml:"-" json:"-" toml:"-"`
	Metadata Metadata               `yaml:"metadata" json:"metadata" toml:"metadata"`
	Format   *numlit.FormatDocument `yaml:"format,omitempty" json:"format,omitempty" toml:"format,omitempty"`
	Floats   []Case                 `yaml:"floats" json:"floats" toml:"floats"`
	Integers []Case                 `yaml:"integers" json:"integers" toml:"integers"`
	Ints     []Case                 `yaml:"ints" json:"ints" toml:"ints"`
}

// Metadata describes a vector file. Preset names a registered preset; a
// [format] table replaces it. Literal and Base override the preset.
type Metadata struct {
	Title       string `yaml:"title" json:"title" toml:"title"`
	Description string `yaml:"description" json:"description" toml:"description"`
	Language    string `yaml:"language" json:"language" toml:"language"`
	Preset      string `yaml:"preset" json:"preset" toml:"preset"`
	Literal     *bool  `yaml:"literal" json:"literal" toml:"literal"`
	Base        int    `yaml:"base" json:"base" toml:"base"`
}

// Case is one vector. Value is a string or a list of strings that must all
// produce the same outcome.
type Case struct {
	Value    any    `yaml:"value" json:"value" toml:"value"`
	Title    string `yaml:"title" json:"title" toml:"title"`
	Flags    string `yaml:"flags" json:"flags" toml:"flags"`
	Expected string `yaml:"expected" json:"expected" toml:"expected"`
	Want     string `yaml:"want" json:"want" toml:"want"`
	Code     string `yaml:"code" json:"code" toml:"code"`
}

// Values normalizes Value into a non-empty list.
func (c Case) Values() ([]string, error) {
	switch v := c.Value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		if len(v) == 0 {
			return nil, fmt.Errorf("case %q: empty value list", c.Title)
		}
		return v, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("case %q: empty value list", c.Title)
		}
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("case %q: value list entries must be strings, got %T", c.Title, e)
			}
			out = append(out, s)
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("case %q: missing value", c.Title)
	}
	return nil, fmt.Errorf("case %q: value must be a string or a list of strings, got %T", c.Title, c.Value)
}

// ExpectPass reports whether the case is expected to be accepted. Anything
// other than "fail" means pass.
func (c Case) ExpectPass() bool { return !strings.EqualFold(strings.TrimSpace(c.Expected), "fail") }

// IntegerCases returns integers followed by ints.
func (f *VectorFile) IntegerCases() []Case {
	out := make([]Case, 0, len(f.Integers)+len(f.Ints))
	out = append(out, f.Integers...)
	return append(out, f.Ints...)
}

// Preset resolves the format the vectors run against.
func (f *VectorFile) Preset() (numlit.Preset, error) {
	var p numlit.Preset
	switch {
	case f.Format != nil:
		spec, err := f.Format.Build()
		if err != nil {
			return p, fmt.Errorf("%s: format: %w", f.Path, err)
		}
		p = numlit.Preset{Name: f.Metadata.Title, Spec: spec, Base: numlit.Decimal, Mode: numlit.String}
	case f.Metadata.Preset != "":
		var ok bool
		if p, ok = numlit.Lookup(f.Metadata.Preset); !ok {
			return p, fmt.Errorf("%s: unknown preset %q", f.Path, f.Metadata.Preset)
		}
	default:
		return p, fmt.Errorf("%s: metadata needs a preset or a [format] table", f.Path)
	}
	if f.Metadata.Literal != nil {
		p.Mode = numlit.String
		if *f.Metadata.Literal {
			p.Mode = numlit.Literal
		}
	}
	if f.Metadata.Base != 0 {
		p.Base = numlit.Base(f.Metadata.Base)
		if !p.Base.Valid() {
			return p, fmt.Errorf("%s: unsupported base %d", f.Path, f.Metadata.Base)
		}
	}
	return p, nil
}

// DecodeVectors decodes a vector document.
func DecodeVectors(f Format, data []byte) (*VectorFile, error) {
	var vf VectorFile
	if err := Unmarshal(f, data, &vf); err != nil {
		return nil, err
	}
	return &vf, nil
}

// LoadVectors reads a vector file by extension.
func LoadVectors(path string) (*VectorFile, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	vf, err := DecodeVectors(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	vf.Path = path
	return vf, nil
}
