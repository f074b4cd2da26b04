package numlit_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	numlit "github.com/reoring/numlit"
	"github.com/reoring/numlit/i18n"
)

func TestNumberError_Text(t *testing.T) {
	_, err := numlit.ParseFloat("1_1.11e11", numlit.RustString())
	if err == nil {
		t.Fatal("expected rejection")
	}
	want := "invalid_separator_position at offset 1 (integer internal): internal digit separator not allowed"
	if err.Error() != want {
		t.Fatalf("got %q", err.Error())
	}

	e := &numlit.NumberError{Code: numlit.CodeInvalidFormat, Offset: -1, Hint: "unknown flag x"}
	if got := e.Error(); got != "invalid_format: invalid format [unknown flag x]" {
		t.Fatalf("got %q", got)
	}
}

func TestNumberError_IsAs(t *testing.T) {
	_, err := numlit.ParseInteger("+1", numlit.JSON(), numlit.Decimal)
	wrapped := fmt.Errorf("field a: %w", err)

	if !errors.Is(wrapped, &numlit.NumberError{Code: numlit.CodeDisallowedSign}) {
		t.Fatalf("errors.Is by code failed: %v", wrapped)
	}
	if errors.Is(wrapped, &numlit.NumberError{Code: numlit.CodeLeadingZeros}) {
		t.Fatalf("errors.Is must compare codes")
	}
	ne, ok := numlit.AsNumberError(wrapped)
	if !ok || ne.Offset != 0 || ne.Group != numlit.GroupMantissa {
		t.Fatalf("AsNumberError: %+v", ne)
	}
	if _, ok := numlit.AsNumberError(nil); ok {
		t.Fatalf("nil is not a NumberError")
	}
	if numlit.IsCode(errors.New("plain"), numlit.CodeDisallowedSign) {
		t.Fatalf("plain errors carry no code")
	}
}

func TestNumberError_Japanese(t *testing.T) {
	i18n.SetLanguage("ja")
	t.Cleanup(func() { i18n.SetLanguage("en") })

	_, err := numlit.ParseFloat(".", numlit.RustString())
	if err == nil || !strings.Contains(err.Error(), "数字が必要です") {
		t.Fatalf("expected japanese message, got %v", err)
	}
}
