package numlit

import (
	"fmt"
	"strings"
)

// FormatDocument is the serializable form of a FormatSpec, as found in preset
// and vector files. Flags accept snake_case names or short codes ("I/R").
// Empty character fields keep the defaults; Separator "none" disables
// separators.
type FormatDocument struct {
	Flags        []string `yaml:"flags" json:"flags" toml:"flags"`
	Separator    string   `yaml:"separator,omitempty" json:"separator,omitempty" toml:"separator,omitempty"`
	DecimalPoint string   `yaml:"decimal_point,omitempty" json:"decimal_point,omitempty" toml:"decimal_point,omitempty"`
	ExponentChar string   `yaml:"exponent,omitempty" json:"exponent,omitempty" toml:"exponent,omitempty"`
	NaN          string   `yaml:"nan,omitempty" json:"nan,omitempty" toml:"nan,omitempty"`
	Inf          string   `yaml:"inf,omitempty" json:"inf,omitempty" toml:"inf,omitempty"`
	Infinity     string   `yaml:"infinity,omitempty" json:"infinity,omitempty" toml:"infinity,omitempty"`

	// NoCapabilities starts from an empty capability set instead of all four.
	NoCapabilities bool `yaml:"no_capabilities,omitempty" json:"no_capabilities,omitempty" toml:"no_capabilities,omitempty"`
}

// Build resolves the document into a FormatSpec.
func (d FormatDocument) Build() (FormatSpec, error) {
	b := NewFormat()
	if d.NoCapabilities {
		b.Clear(CapabilityFlags)
	}
	for _, name := range d.Flags {
		f, err := ParseFlag(strings.TrimSpace(name))
		if err != nil {
			return FormatSpec{}, err
		}
		b.Set(f)
	}
	if d.Separator != "" && d.Separator != "none" {
		c, err := singleChar("separator", d.Separator)
		if err != nil {
			return FormatSpec{}, err
		}
		b.Separator(c)
	}
	if d.DecimalPoint != "" {
		c, err := singleChar("decimal_point", d.DecimalPoint)
		if err != nil {
			return FormatSpec{}, err
		}
		b.DecimalPoint(c)
	}
	if d.ExponentChar != "" {
		c, err := singleChar("exponent", d.ExponentChar)
		if err != nil {
			return FormatSpec{}, err
		}
		b.ExponentChar(c)
	}
	b.Spellings(d.NaN, d.Inf, d.Infinity)
	return b.Build()
}

// DocumentOf converts a spec back into its document form.
func DocumentOf(f FormatSpec) FormatDocument {
	d := FormatDocument{
		DecimalPoint: string(f.spec.Point),
		ExponentChar: string(f.spec.Exponent),
		NaN:          f.spec.NaN,
		Inf:          f.spec.Inf,
		Infinity:     f.spec.Infinity,
	}
	if f.spec.Separator != 0 {
		d.Separator = string(f.spec.Separator)
	}
	d.NoCapabilities = !f.Has(CapabilityFlags)
	for _, fi := range Flags() {
		if !f.Has(fi.Flag) || (fi.Flag&CapabilityFlags != 0 && !d.NoCapabilities) {
			continue
		}
		d.Flags = append(d.Flags, fi.Name)
	}
	return d
}

// PresetDocument is one entry of a preset file.
type PresetDocument struct {
	Name        string         `yaml:"name" json:"name" toml:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Base        int            `yaml:"base,omitempty" json:"base,omitempty" toml:"base,omitempty"`
	Mode        string         `yaml:"mode,omitempty" json:"mode,omitempty" toml:"mode,omitempty"`
	Extends     string         `yaml:"extends,omitempty" json:"extends,omitempty" toml:"extends,omitempty"`
	Format      FormatDocument `yaml:"format" json:"format" toml:"format"`
}

// PresetDocumentOf converts a preset back into its document form.
func PresetDocumentOf(p Preset) PresetDocument {
	return PresetDocument{
		Name:        p.Name,
		Description: p.Description,
		Base:        int(p.Request(Integer).Base),
		Mode:        p.Mode.String(),
		Format:      DocumentOf(p.Spec),
	}
}

// Preset resolves the document. With Extends set, the named preset's format
// is the starting point and Format.Flags are added to it.
func (d PresetDocument) Preset() (Preset, error) {
	if d.Name == "" {
		return Preset{}, fmt.Errorf("numlit: preset name is required")
	}
	mode, err := ParseMode(d.Mode)
	if err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", d.Name, err)
	}
	p := Preset{Name: d.Name, Description: d.Description, Base: Base(d.Base), Mode: mode}
	if p.Base == 0 {
		p.Base = Decimal
	}
	if d.Extends != "" {
		parent, ok := Lookup(d.Extends)
		if !ok {
			return Preset{}, fmt.Errorf("preset %s: unknown parent %q", d.Name, d.Extends)
		}
		b := parent.Spec.Builder()
		for _, name := range d.Format.Flags {
			f, err := ParseFlag(strings.TrimSpace(name))
			if err != nil {
				return Preset{}, fmt.Errorf("preset %s: %w", d.Name, err)
			}
			b.Set(f)
		}
		if p.Spec, err = b.Build(); err != nil {
			return Preset{}, fmt.Errorf("preset %s: %w", d.Name, err)
		}
		if d.Base == 0 {
			p.Base = parent.Base
		}
		if d.Mode == "" {
			p.Mode = parent.Mode
		}
		return p, nil
	}
	if p.Spec, err = d.Format.Build(); err != nil {
		return Preset{}, fmt.Errorf("preset %s: %w", d.Name, err)
	}
	return p, nil
}

// ParseMode accepts "literal" and "string"; empty means string.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string":
		return String, nil
	case "literal":
		return Literal, nil
	}
	return String, &NumberError{Code: CodeInvalidFormat, Offset: -1, Hint: "unknown mode " + s}
}

// ParseBase accepts 2, 8, 10, 16 or their names.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "10", "decimal", "dec":
		return Decimal, nil
	case "16", "hexadecimal", "hex":
		return Hexadecimal, nil
	case "8", "octal", "oct":
		return Octal, nil
	case "2", "binary", "bin":
		return Binary, nil
	}
	return 0, &NumberError{Code: CodeUnsupportedBase, Offset: -1, Hint: s}
}

func singleChar(field, s string) (byte, error) {
	if len(s) != 1 {
		return 0, &NumberError{Code: CodeInvalidFormat, Offset: -1, Hint: fmt.Sprintf("%s must be one ASCII character, got %q", field, s)}
	}
	return s[0], nil
}
