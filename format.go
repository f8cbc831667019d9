package numfmt

import (
	"fmt"
	"math"
	"sync"
)

// Request is a single formatting call. Empty Locale and Style fall back to the
// formatter defaults; a nil Decimals selects the style default.
type Request struct {
	Value    float64
	Locale   string
	Style    string
	Decimals *int
}

// Result echoes the resolved request alongside the rendered string.
type Result struct {
	Value     float64 `json:"value"`
	Locale    string  `json:"locale"`
	Style     Style   `json:"style"`
	Decimals  int     `json:"decimals"`
	Formatted string  `json:"formatted"`
}

// Decimals returns a pointer to n, for use in Request.Decimals.
func Decimals(n int) *int {
	return &n
}

// Formatter dispatches requests to the renderer for their style. It holds no
// mutable state and may be shared across goroutines.
type Formatter struct {
	registry      *Registry
	defaultLocale string
	defaultStyle  string
	maxDecimals   int
}

// NewFormatter builds a Formatter from options
func NewFormatter(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter(), nil
}

// BuildFormatter creates a Formatter from an already validated Config
func (cfg *Config) BuildFormatter() *Formatter {
	return &Formatter{
		registry:      cfg.Registry,
		defaultLocale: cfg.DefaultLocale,
		defaultStyle:  cfg.DefaultStyle,
		maxDecimals:   cfg.MaxDecimals,
	}
}

// Registry exposes the locale registry backing the formatter.
func (f *Formatter) Registry() *Registry {
	return f.registry
}

// Locales lists the locale identifiers the formatter accepts.
func (f *Formatter) Locales() []string {
	return f.registry.Identifiers()
}

// Format validates req and renders it.
func (f *Formatter) Format(req Request) (Result, error) {
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return Result{}, fmt.Errorf("%w: %v is not finite", ErrInvalidValue, req.Value)
	}

	locale := req.Locale
	if locale == "" {
		locale = f.defaultLocale
	}
	profile, err := f.registry.Lookup(locale)
	if err != nil {
		return Result{}, err
	}

	styleName := req.Style
	if styleName == "" {
		styleName = f.defaultStyle
	}
	style, err := ParseStyle(styleName)
	if err != nil {
		return Result{}, err
	}

	decimals := style.DefaultDecimals()
	if req.Decimals != nil && !style.FixedDecimals() {
		decimals = *req.Decimals
	}
	if req.Decimals != nil {
		if *req.Decimals < 0 {
			return Result{}, fmt.Errorf("%w: got %d", ErrInvalidDecimals, *req.Decimals)
		}
		if f.maxDecimals > 0 && *req.Decimals > f.maxDecimals {
			return Result{}, fmt.Errorf("%w: %d is above %d", ErrDecimalsLimit, *req.Decimals, f.maxDecimals)
		}
	}

	var formatted string
	switch style {
	case StyleCurrency:
		formatted = RenderCurrency(req.Value, profile, decimals)
	case StyleGrouped, StyleRounded:
		formatted = RenderPlain(req.Value, profile, decimals, style.Grouped())
	case StyleScientific:
		formatted = RenderScientific(req.Value, profile)
	}

	return Result{
		Value:     req.Value,
		Locale:    locale,
		Style:     style,
		Decimals:  decimals,
		Formatted: formatted,
	}, nil
}

var (
	defaultFormatterOnce sync.Once
	defaultFormatter     *Formatter
)

func globalFormatter() *Formatter {
	defaultFormatterOnce.Do(func() {
		cfg := &Config{
			Registry:      DefaultRegistry(),
			DefaultLocale: DefaultLocale,
			DefaultStyle:  DefaultStyle,
		}
		defaultFormatter = cfg.BuildFormatter()
	})
	return defaultFormatter
}

// Format renders value with the compiled-in locales. A nil decimals selects
// the style default.
func Format(value float64, locale, style string, decimals *int) (string, error) {
	result, err := globalFormatter().Format(Request{
		Value:    value,
		Locale:   locale,
		Style:    style,
		Decimals: decimals,
	})
	if err != nil {
		return "", err
	}
	return result.Formatted, nil
}

// Locales lists the compiled-in locale identifiers.
func Locales() []string {
	return DefaultRegistry().Identifiers()
}
