package numfmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// profileView flattens a Profile into comparable plain values.
type profileView struct {
	ID, Decimal, Thousands, Symbol, Position string
	Space                                    bool
	Currency, Language                       string
}

func viewOf(p Profile) profileView {
	return profileView{
		ID:        p.ID,
		Decimal:   p.DecimalSeparator,
		Thousands: p.ThousandsSeparator,
		Symbol:    p.CurrencySymbol,
		Position:  p.SymbolPosition.String(),
		Space:     p.SymbolSpace,
		Currency:  p.CurrencyCode(),
		Language:  p.LanguageTag(),
	}
}

func viewsOf(profiles []Profile) []profileView {
	out := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, viewOf(p))
	}
	return out
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	if diff := cmp.Diff([]string{"US", "EU", "UK"}, registry.Identifiers()); diff != "" {
		t.Fatalf("Identifiers() mismatch (-want +got):\n%s", diff)
	}

	want := []profileView{
		{"US", ".", ",", "$", "before", false, "USD", "en-US"},
		{"EU", ",", ".", "€", "after", true, "EUR", "en-150"},
		{"UK", ".", ",", "£", "before", false, "GBP", "en-GB"},
	}
	if diff := cmp.Diff(want, viewsOf(registry.Profiles())); diff != "" {
		t.Fatalf("Profiles() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryLookup(t *testing.T) {
	registry := DefaultRegistry()

	profile, err := registry.Lookup("EU")
	if err != nil {
		t.Fatalf("Lookup(EU): %v", err)
	}
	if profile.CurrencySymbol != "€" {
		t.Fatalf("EU symbol = %q", profile.CurrencySymbol)
	}

	for _, id := range []string{"eu", "XX", "", " US"} {
		if _, err := registry.Lookup(id); !errors.Is(err, ErrUnknownLocale) {
			t.Errorf("Lookup(%q) error = %v; want ErrUnknownLocale", id, err)
		}
	}
}

func TestRegistryIdentifiersAreCopies(t *testing.T) {
	registry := DefaultRegistry()

	ids := registry.Identifiers()
	ids[0] = "mutated"

	if got := registry.Identifiers()[0]; got != "US" {
		t.Fatalf("registry was mutated through Identifiers(): %q", got)
	}
}

func TestNewRegistryValidation(t *testing.T) {
	valid := swissProfile

	tests := []struct {
		name   string
		mutate func(p *Profile)
		want   error
	}{
		{"empty id", func(p *Profile) { p.ID = "" }, ErrInvalidProfile},
		{"missing decimal separator", func(p *Profile) { p.DecimalSeparator = "" }, ErrInvalidProfile},
		{"long thousands separator", func(p *Profile) { p.ThousandsSeparator = "''" }, ErrInvalidProfile},
		{"same separators", func(p *Profile) { p.ThousandsSeparator = "." }, ErrInvalidProfile},
		{"missing symbol", func(p *Profile) { p.CurrencySymbol = "" }, ErrInvalidProfile},
		{"bad position", func(p *Profile) { p.SymbolPosition = 9 }, ErrInvalidProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := valid
			tt.mutate(&profile)
			if _, err := NewRegistry(profile); !errors.Is(err, tt.want) {
				t.Fatalf("NewRegistry error = %v; want %v", err, tt.want)
			}
		})
	}

	if _, err := NewRegistry(valid, valid); !errors.Is(err, ErrDuplicateLocale) {
		t.Fatalf("duplicate error = %v; want ErrDuplicateLocale", err)
	}
}

func TestRegistryExtend(t *testing.T) {
	base := DefaultRegistry()

	replacement := swissProfile
	replacement.ID = "EU"

	extended, err := base.Extend(swissProfile, replacement)
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	if diff := cmp.Diff([]string{"US", "EU", "UK", "CH"}, extended.Identifiers()); diff != "" {
		t.Fatalf("extended identifiers mismatch (-want +got):\n%s", diff)
	}

	eu, _ := extended.Lookup("EU")
	if eu.CurrencySymbol != "CHF" {
		t.Fatalf("EU was not replaced: %+v", eu)
	}

	if base.Has("CH") || base.Len() != 3 {
		t.Fatal("Extend mutated the receiver")
	}
	original, _ := base.Lookup("EU")
	if original.CurrencySymbol != "€" {
		t.Fatal("Extend mutated a receiver profile")
	}

	if _, err := base.Extend(swissProfile, swissProfile); !errors.Is(err, ErrDuplicateLocale) {
		t.Fatalf("duplicate extend error = %v; want ErrDuplicateLocale", err)
	}
}
