package numfmt

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if cfg.DefaultLocale != "US" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if cfg.DefaultStyle != "currency" {
		t.Fatalf("DefaultStyle = %q", cfg.DefaultStyle)
	}
	if cfg.MaxDecimals != 0 {
		t.Fatalf("MaxDecimals = %d; want no limit", cfg.MaxDecimals)
	}
	if cfg.Registry != DefaultRegistry() {
		t.Fatal("expected the compiled-in registry")
	}
}

func TestNewConfigRejectsUnknownDefaults(t *testing.T) {
	if _, err := NewConfig(WithDefaultLocale("XX")); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("default locale error = %v; want ErrUnknownLocale", err)
	}
	if _, err := NewConfig(WithDefaultStyle("percent")); !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("default style error = %v; want ErrUnknownStyle", err)
	}
	if _, err := NewConfig(WithMaxDecimals(-1)); err == nil {
		t.Fatal("expected error for negative max decimals")
	}
}

func TestNewFormatterWithLocaleFile(t *testing.T) {
	formatter, err := NewFormatter(
		WithLocaleFile(filepath.Join("testdata", "override_us.yaml")),
		WithDefaultLocale("IN"),
		WithDefaultStyle("grouped"),
	)
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	if diff := cmp.Diff([]string{"US", "EU", "UK", "IN"}, formatter.Locales()); diff != "" {
		t.Fatalf("Locales() mismatch (-want +got):\n%s", diff)
	}

	result, err := formatter.Format(Request{Value: 1234.5, Locale: "US"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if result.Formatted != "1,235" {
		t.Fatalf("Formatted = %q", result.Formatted)
	}

	result, err = formatter.Format(Request{Value: -1234.5, Style: "currency"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if result.Locale != "IN" || result.Formatted != "-₹1,234.50" {
		t.Fatalf("unexpected result %+v", result)
	}

	result, err = formatter.Format(Request{Value: 10, Locale: "US", Style: "currency"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if result.Formatted != "US$10.00" {
		t.Fatalf("override not applied: %q", result.Formatted)
	}

	if DefaultRegistry().Has("IN") {
		t.Fatal("locale file leaked into the compiled-in registry")
	}
}

func TestWithLocaleFileErrors(t *testing.T) {
	_, err := NewFormatter(WithLocaleFile(filepath.Join("testdata", "missing_field.yaml")))
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("error = %v; want ErrInvalidProfile", err)
	}
}

func TestNewFormatterWithRegistry(t *testing.T) {
	registry, err := NewRegistry(swissProfile)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if _, err := NewFormatter(WithRegistry(registry)); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected the US default to be rejected, got %v", err)
	}

	formatter, err := NewFormatter(WithRegistry(registry), WithDefaultLocale("CH"))
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}
	if formatter.Registry() != registry {
		t.Fatal("expected the supplied registry")
	}
	if diff := cmp.Diff([]string{"CH"}, formatter.Locales()); diff != "" {
		t.Fatalf("Locales mismatch (-want +got):\n%s", diff)
	}

	result, err := formatter.Format(Request{Value: 1234.5})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if result.Formatted != "CHF 1'234.50" {
		t.Fatalf("Formatted = %q", result.Formatted)
	}
	if _, err := formatter.Format(Request{Value: 1, Locale: "US"}); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("US should be unknown with a replaced registry, got %v", err)
	}
}
