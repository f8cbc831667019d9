package numfmt

import "fmt"

const (
	// DefaultLocale is used when a request names no locale.
	DefaultLocale = "US"
	// DefaultStyle is used when a request names no style.
	DefaultStyle = "currency"
)

// Config captures formatter setup
type Config struct {
	Registry      *Registry
	DefaultLocale string
	DefaultStyle  string
	// MaxDecimals limits the requested fractional digit count. Zero means
	// no limit.
	MaxDecimals int
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		DefaultLocale: DefaultLocale,
		DefaultStyle:  DefaultStyle,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}

	if !cfg.Registry.Has(cfg.DefaultLocale) {
		return nil, fmt.Errorf("numfmt: default locale %q is not registered: %w", cfg.DefaultLocale, ErrUnknownLocale)
	}
	if _, err := ParseStyle(cfg.DefaultStyle); err != nil {
		return nil, fmt.Errorf("numfmt: default style: %w", err)
	}

	return cfg, nil
}

// WithRegistry replaces the compiled-in locale registry
func WithRegistry(registry *Registry) Option {
	return func(c *Config) error {
		c.Registry = registry
		return nil
	}
}

// WithProfiles extends the compiled-in registry with extra profiles
func WithProfiles(profiles ...Profile) Option {
	return func(c *Config) error {
		base := c.Registry
		if base == nil {
			base = DefaultRegistry()
		}
		registry, err := base.Extend(profiles...)
		if err != nil {
			return err
		}
		c.Registry = registry
		return nil
	}
}

// WithLocaleFile extends the registry with the profiles found in path
func WithLocaleFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		profiles, err := LoadProfiles(path)
		if err != nil {
			return err
		}
		return WithProfiles(profiles...)(c)
	}
}

// WithDefaultLocale sets the locale used when a request names none
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		if locale != "" {
			c.DefaultLocale = locale
		}
		return nil
	}
}

// WithDefaultStyle sets the style used when a request names none
func WithDefaultStyle(style string) Option {
	return func(c *Config) error {
		if style != "" {
			c.DefaultStyle = style
		}
		return nil
	}
}

// WithMaxDecimals limits the decimals a request may ask for. Zero removes the
// limit.
func WithMaxDecimals(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("numfmt: max decimals must be >= 0, got %d", n)
		}
		c.MaxDecimals = n
		return nil
	}
}
