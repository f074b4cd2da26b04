package numlit_test

import (
	"sort"
	"testing"

	numlit "github.com/reoring/numlit"
)

func TestPresets_Builtins(t *testing.T) {
	ps := numlit.Presets()
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("presets not sorted: %v", names)
	}
	for _, name := range []string{"standard", "rust-literal", "rust-string", "rust-hex-literal", "json"} {
		if _, ok := numlit.Lookup(name); !ok {
			t.Fatalf("missing builtin %q", name)
		}
	}
	hex, _ := numlit.Lookup("rust-hex-literal")
	if hex.Base != numlit.Hexadecimal || hex.Mode != numlit.Literal {
		t.Fatalf("rust-hex-literal: %+v", hex)
	}
	req := hex.Request(numlit.Integer)
	if req.Base != numlit.Hexadecimal || req.Mode != numlit.Literal || req.Kind != numlit.Integer {
		t.Fatalf("request: %+v", req)
	}
}

func TestPresets_JSON(t *testing.T) {
	accept := []string{"0", "-0", "0.5", "1e10", "1E+2", "-12.5e-3"}
	reject := []string{"01", "+1", ".5", "1.", "NaN", "1_0", "1e"}
	for _, text := range accept {
		if _, err := numlit.ParseFloat(text, numlit.JSON()); err != nil {
			t.Errorf("%q: %v", text, err)
		}
	}
	for _, text := range reject {
		if _, err := numlit.ParseFloat(text, numlit.JSON()); err == nil {
			t.Errorf("%q: expected rejection", text)
		}
	}
}

func TestRegister(t *testing.T) {
	p := numlit.Preset{Name: "test-register", Spec: numlit.Standard()}
	if err := numlit.Register(p); err != nil {
		t.Fatal(err)
	}
	got, ok := numlit.Lookup("test-register")
	if !ok || got.Base != numlit.Decimal {
		t.Fatalf("got %+v, %v", got, ok)
	}
	if err := numlit.Register(numlit.Preset{}); err == nil {
		t.Fatalf("empty name must fail")
	}
	if err := numlit.Register(numlit.Preset{Name: "base-seven", Base: 7}); !numlit.IsCode(err, numlit.CodeUnsupportedBase) {
		t.Fatalf("expected unsupported_base, got %v", err)
	}
}
