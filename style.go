package numfmt

import (
	"fmt"
	"strings"
)

// Style selects the output family.
type Style uint8

const (
	StyleCurrency Style = iota
	StyleGrouped
	StyleRounded
	StyleScientific
)

var styleNames = [...]string{
	StyleCurrency:   "currency",
	StyleGrouped:    "grouped",
	StyleRounded:    "rounded",
	StyleScientific: "scientific",
}

// styleAliases maps every accepted lower-cased spelling to its style.
var styleAliases = map[string]Style{
	"currency":   StyleCurrency,
	"grouped":    StyleGrouped,
	"comma":      StyleGrouped,
	"rounded":    StyleRounded,
	"round":      StyleRounded,
	"scientific": StyleScientific,
	"sci":        StyleScientific,
}

// ParseStyle resolves a style name or synonym, ignoring case.
func ParseStyle(s string) (Style, error) {
	if style, ok := styleAliases[strings.ToLower(s)]; ok {
		return style, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownStyle, s)
}

// String returns the canonical style name.
func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// DefaultDecimals is the fractional digit count used when the caller gives none.
func (s Style) DefaultDecimals() int {
	switch s {
	case StyleCurrency:
		return 2
	case StyleScientific:
		return ScientificDigits
	default:
		return 0
	}
}

// Grouped reports whether the style inserts thousands separators.
func (s Style) Grouped() bool {
	return s == StyleCurrency || s == StyleGrouped
}

// FixedDecimals reports whether the style ignores a caller supplied count.
func (s Style) FixedDecimals() bool {
	return s == StyleScientific
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
