package numfmt

import "errors"

// Input errors. Every one of them is the caller's fault and is reported as-is.
var (
	// ErrMissingValue indicates that no numeric value was supplied.
	ErrMissingValue = errors.New("numfmt: value is required")
	// ErrInvalidValue indicates a value that is not a finite real number.
	ErrInvalidValue = errors.New("numfmt: value must be numeric")
	// ErrInvalidDecimals indicates a decimals count that is not a usable integer.
	ErrInvalidDecimals = errors.New("numfmt: decimals must be a non-negative integer")
	// ErrUnknownLocale indicates a locale identifier missing from the registry.
	ErrUnknownLocale = errors.New("numfmt: unknown locale")
	// ErrUnknownStyle indicates a style that matches no style or synonym.
	ErrUnknownStyle = errors.New("numfmt: unknown style")
	// ErrDecimalsLimit indicates a decimals count above the limit set with
	// WithMaxDecimals.
	ErrDecimalsLimit = errors.New("numfmt: decimals exceed the configured limit")
)

// Registry construction errors.
var (
	ErrInvalidProfile    = errors.New("numfmt: invalid locale profile")
	ErrDuplicateLocale   = errors.New("numfmt: duplicate locale")
	ErrUnsupportedFormat = errors.New("numfmt: unsupported locale file format")
)

// IsInputError reports whether err was caused by bad request input, as opposed
// to a configuration or internal failure.
func IsInputError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrInvalidValue) ||
		errors.Is(err, ErrInvalidDecimals) ||
		errors.Is(err, ErrDecimalsLimit) ||
		errors.Is(err, ErrUnknownLocale) ||
		errors.Is(err, ErrUnknownStyle)
}
