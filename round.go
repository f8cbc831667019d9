package numfmt

import (
	"strconv"
	"strings"
)

// roundFixed rounds a non-negative finite magnitude to exactly decimals
// fractional digits, half away from zero, and returns the integer and
// fractional digit strings. Rounding operates on the shortest decimal form
// that round-trips to the same float64, so 2.345 rounds to 2.35 even though
// its binary value sits just below the midpoint.
func roundFixed(magnitude float64, decimals int) (string, string) {
	shortest := strconv.FormatFloat(magnitude, 'f', -1, 64)

	intPart, fracPart, _ := strings.Cut(shortest, ".")
	if len(fracPart) <= decimals {
		return intPart, fracPart + strings.Repeat("0", decimals-len(fracPart))
	}

	roundUp := fracPart[decimals] >= '5'
	digits := []byte(intPart + fracPart[:decimals])
	if roundUp {
		digits = incrementDigits(digits)
	}

	split := len(digits) - decimals
	return string(digits[:split]), string(digits[split:])
}

// incrementDigits adds one to a decimal digit string, growing it on overflow.
func incrementDigits(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}
