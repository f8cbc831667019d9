package numfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseValue converts a raw request value into a finite float64. nil means
// the value was not supplied at all.
func ParseValue(raw any) (float64, error) {
	var (
		value float64
		err   error
	)

	switch v := raw.(type) {
	case nil:
		return 0, ErrMissingValue
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int64:
		value = float64(v)
	case int32:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint64:
		value = float64(v)
	case uint32:
		value = float64(v)
	case json.Number:
		value, err = strconv.ParseFloat(string(v), 64)
	case string:
		var text string
		if text, err = numericText(v); err == nil {
			value, err = strconv.ParseFloat(text, 64)
		}
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, raw)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidValue, raw)
	}
	return value, nil
}

// ParseDecimals converts a raw decimals field. nil and the empty string mean
// "not supplied" and yield a nil pointer.
func ParseDecimals(raw any) (*int, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int:
		return Decimals(v), nil
	case int64:
		return Decimals(int(v)), nil
	case int32:
		return Decimals(int(v)), nil
	case float64:
		return integralDecimals(v, raw)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return Decimals(int(n)), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDecimals, raw)
		}
		return integralDecimals(f, raw)
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		text, err := numericText(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDecimals, v)
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDecimals, v)
		}
		return Decimals(n), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidDecimals, raw)
	}
}

func integralDecimals(f float64, raw any) (*int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDecimals, raw)
	}
	return Decimals(int(f)), nil
}

// numericText trims s and prepares it for strconv. Hexadecimal notation is
// refused and single underscores between digits are dropped, so "1_000" is
// accepted while "0x1p4", "_1" and "1__0" are not.
func numericText(s string) (string, error) {
	s = strings.TrimSpace(s)

	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", fmt.Errorf("hexadecimal notation in %q", s)
	}

	if !strings.Contains(s, "_") {
		return s, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", fmt.Errorf("misplaced underscore in %q", s)
		}
	}
	return strings.ReplaceAll(s, "_", ""), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
