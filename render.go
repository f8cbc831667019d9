package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// ScientificDigits is the fixed number of mantissa fractional digits used by
// the scientific style.
const ScientificDigits = 3

// RenderPlain renders value with exactly decimals fractional digits using the
// profile's separators. The integer part is grouped when grouped is true; the
// fractional part never is.
func RenderPlain(value float64, p Profile, decimals int, grouped bool) string {
	sign := ""
	if value < 0 {
		sign = "-"
	}
	return sign + renderMagnitude(math.Abs(value), p, decimals, grouped)
}

// RenderCurrency renders value as a grouped amount with the profile's currency
// symbol attached. A negative sign always leads the whole result and never
// sits between the symbol and the digits.
func RenderCurrency(value float64, p Profile, decimals int) string {
	sign := ""
	if value < 0 {
		sign = "-"
	}

	amount := renderMagnitude(math.Abs(value), p, decimals, true)

	spacer := ""
	if p.SymbolSpace {
		spacer = " "
	}

	if p.SymbolPosition == SymbolAfter {
		return sign + amount + spacer + p.CurrencySymbol
	}
	return sign + p.CurrencySymbol + spacer + amount
}

// RenderScientific renders value as d.ddde±XX. Only the mantissa's decimal
// point is localized; the exponent marker and its sign are left alone.
func RenderScientific(value float64, p Profile) string {
	raw := strconv.FormatFloat(value, 'e', ScientificDigits, 64)
	if p.DecimalSeparator == "." {
		return raw
	}
	return strings.Replace(raw, ".", p.DecimalSeparator, 1)
}

func renderMagnitude(magnitude float64, p Profile, decimals int, grouped bool) string {
	intPart, fracPart := roundFixed(magnitude, decimals)

	if grouped {
		intPart = Group(intPart, p.ThousandsSeparator)
	}

	if decimals > 0 {
		return intPart + p.DecimalSeparator + fracPart
	}
	return intPart
}
