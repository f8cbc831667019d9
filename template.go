package numfmt

import "fmt"

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is looked up when a helper receives a map instead of a locale
	// identifier, so templates can pass their data context directly.
	LocaleKey string
	// OnError renders a failed call. When nil the error aborts template
	// execution.
	OnError func(locale string, value any, err error) string
}

// TemplateHelpers exposes the formatter to text/template and html/template.
//
//	{{format_currency .Locale .Total}}
//	{{format_number . "rounded" .Ratio 3}}
//	{{format_scientific "EU" .Mass}}
//
// A nil formatter uses the compiled-in locales.
func TemplateHelpers(f *Formatter, cfg HelperConfig) map[string]any {
	if f == nil {
		f = globalFormatter()
	}
	if cfg.LocaleKey == "" {
		cfg.LocaleKey = "locale"
	}

	render := func(localeArg any, style string, value any, decimals []any) (string, error) {
		locale := cfg.resolveLocale(localeArg)
		out, err := renderHelper(f, locale, style, value, decimals)
		if err != nil && cfg.OnError != nil {
			return cfg.OnError(locale, value, err), nil
		}
		return out, err
	}

	return map[string]any{
		"format_number": func(locale any, style string, value any, decimals ...any) (string, error) {
			return render(locale, style, value, decimals)
		},
		"format_currency": func(locale any, value any, decimals ...any) (string, error) {
			return render(locale, StyleCurrency.String(), value, decimals)
		},
		"format_grouped": func(locale any, value any, decimals ...any) (string, error) {
			return render(locale, StyleGrouped.String(), value, decimals)
		},
		"format_rounded": func(locale any, value any, decimals ...any) (string, error) {
			return render(locale, StyleRounded.String(), value, decimals)
		},
		"format_scientific": func(locale any, value any) (string, error) {
			return render(locale, StyleScientific.String(), value, nil)
		},
		"locales": f.Locales,
	}
}

func renderHelper(f *Formatter, locale, style string, value any, decimals []any) (string, error) {
	if len(decimals) > 1 {
		return "", fmt.Errorf("%w: expected at most one decimals argument, got %d", ErrInvalidDecimals, len(decimals))
	}

	v, err := ParseValue(value)
	if err != nil {
		return "", err
	}

	var d *int
	if len(decimals) == 1 {
		if d, err = ParseDecimals(decimals[0]); err != nil {
			return "", err
		}
	}

	result, err := f.Format(Request{Value: v, Locale: locale, Style: style, Decimals: d})
	if err != nil {
		return "", err
	}
	return result.Formatted, nil
}

func (cfg HelperConfig) resolveLocale(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case map[string]any:
		return stringValue(v[cfg.LocaleKey])
	case map[string]string:
		return v[cfg.LocaleKey]
	default:
		return ""
	}
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return ""
	}
}
