package numfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// SymbolPosition places the currency symbol relative to the amount.
type SymbolPosition uint8

const (
	SymbolBefore SymbolPosition = iota
	SymbolAfter
)

// ParseSymbolPosition accepts "before" or "after" in any case.
func ParseSymbolPosition(s string) (SymbolPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before":
		return SymbolBefore, nil
	case "after":
		return SymbolAfter, nil
	default:
		return 0, fmt.Errorf("%w: symbol position %q must be \"before\" or \"after\"", ErrInvalidProfile, s)
	}
}

func (p SymbolPosition) String() string {
	if p == SymbolAfter {
		return "after"
	}
	return "before"
}

func (p SymbolPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *SymbolPosition) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbolPosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Profile holds the number formatting conventions of one locale.
// Currency and Language are descriptive metadata and never affect rendering.
type Profile struct {
	ID                 string         `json:"id"`
	DecimalSeparator   string         `json:"decimal_separator"`
	ThousandsSeparator string         `json:"thousands_separator"`
	CurrencySymbol     string         `json:"currency_symbol"`
	SymbolPosition     SymbolPosition `json:"currency_symbol_position"`
	SymbolSpace        bool           `json:"currency_symbol_space"`

	Currency currency.Unit `json:"-"`
	Language language.Tag  `json:"-"`
}

// CurrencyCode returns the ISO 4217 code, or "" when none is configured.
func (p Profile) CurrencyCode() string {
	if p.Currency == (currency.Unit{}) {
		return ""
	}
	return p.Currency.String()
}

// LanguageTag returns the BCP 47 tag, or "" when none is configured.
func (p Profile) LanguageTag() string {
	if p.Language == language.Und {
		return ""
	}
	return p.Language.String()
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: empty locale identifier", ErrInvalidProfile)
	}
	if utf8.RuneCountInString(p.DecimalSeparator) != 1 {
		return fmt.Errorf("%w: %q decimal separator must be a single character", ErrInvalidProfile, p.ID)
	}
	if utf8.RuneCountInString(p.ThousandsSeparator) != 1 {
		return fmt.Errorf("%w: %q thousands separator must be a single character", ErrInvalidProfile, p.ID)
	}
	if p.DecimalSeparator == p.ThousandsSeparator {
		return fmt.Errorf("%w: %q uses %q for both separators", ErrInvalidProfile, p.ID, p.DecimalSeparator)
	}
	if p.CurrencySymbol == "" {
		return fmt.Errorf("%w: %q has no currency symbol", ErrInvalidProfile, p.ID)
	}
	if p.SymbolPosition != SymbolBefore && p.SymbolPosition != SymbolAfter {
		return fmt.Errorf("%w: %q has an unknown symbol position", ErrInvalidProfile, p.ID)
	}
	return nil
}
