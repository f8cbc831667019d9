// Package config loads numfmt settings from the environment.
//
// A .env file in the working directory is loaded first when present; real
// environment variables always win over it. All variables use the NUMFMT_
// prefix.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const appName = "numfmt"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)

// HTTP holds the listener settings.
type HTTP struct {
	CORSEnabled    bool     `env:"CORS_ENABLED" envDefault:"true"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	Addr            string        `env:"ADDR" envDefault:":8003"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Config is the full application configuration.
type Config struct {
	HTTP HTTP

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"US"`
	DefaultStyle  string `env:"DEFAULT_STYLE" envDefault:"currency"`
	// MaxDecimals limits the decimals a request may ask for. Zero means no limit.
	MaxDecimals int `env:"MAX_DECIMALS" envDefault:"0"`
	// LocaleFile extends the compiled-in locales. Empty means "look in the
	// XDG config directory".
	LocaleFile string `env:"LOCALE_FILE"`
}

// Load reads .env files (the default ./.env when none are given) and parses
// the NUMFMT_ prefixed environment into cfg.
func Load(cfg *Config, files ...string) error {
	if cfg == nil {
		return ErrNilPointer
	}

	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		// A missing .env file is fine; a malformed one is not.
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "NUMFMT_"}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// localeFileExtensions lists supported locale file extensions in order of preference
var localeFileExtensions = []string{".json", ".yaml", ".yml", ".toml"}

// ConfigDir returns the directory searched for a locale file.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// ResolveLocaleFile returns the explicit path when set, otherwise the first
// locales.{json,yaml,yml,toml} found in ConfigDir, otherwise "".
func (c Config) ResolveLocaleFile() string {
	if c.LocaleFile != "" {
		return c.LocaleFile
	}
	return FindLocaleFile(ConfigDir())
}

// CORSOrigins returns the trimmed allowed origins, or nil when CORS is off.
func (h HTTP) CORSOrigins() []string {
	if !h.CORSEnabled {
		return nil
	}
	var origins []string
	for _, origin := range h.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// FindLocaleFile looks for a locales file inside dir.
func FindLocaleFile(dir string) string {
	for _, ext := range localeFileExtensions {
		path := filepath.Join(dir, "locales"+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
