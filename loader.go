package numfmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LocaleFile is the on-disk shape of a locale data file.
type LocaleFile struct {
	Locales []ProfileDefinition `json:"locales" yaml:"locales" toml:"locales"`
}

// ProfileDefinition describes one locale in a data file. The five formatting
// fields are pointers so a missing key can be told apart from a zero value.
type ProfileDefinition struct {
	ID                     string  `json:"id" yaml:"id" toml:"id"`
	DecimalSeparator       *string `json:"decimal_separator" yaml:"decimal_separator" toml:"decimal_separator"`
	ThousandsSeparator     *string `json:"thousands_separator" yaml:"thousands_separator" toml:"thousands_separator"`
	CurrencySymbol         *string `json:"currency_symbol" yaml:"currency_symbol" toml:"currency_symbol"`
	CurrencySymbolPosition *string `json:"currency_symbol_position" yaml:"currency_symbol_position" toml:"currency_symbol_position"`
	CurrencySymbolSpace    *bool   `json:"currency_symbol_space" yaml:"currency_symbol_space" toml:"currency_symbol_space"`
	Currency               string  `json:"currency,omitempty" yaml:"currency,omitempty" toml:"currency,omitempty"`
	Language               string  `json:"language,omitempty" yaml:"language,omitempty" toml:"language,omitempty"`
}

// LoadProfiles reads a locale data file and returns its validated profiles in
// file order. The format is chosen by extension: .json, .yaml, .yml or .toml.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load locale file: %w", err)
	}

	file, err := DecodeLocaleFile(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file.Profiles()
}

// DecodeLocaleFile parses data according to the file extension ext.
func DecodeLocaleFile(data []byte, ext string) (*LocaleFile, error) {
	var file LocaleFile

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse JSON locale file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse YAML locale file: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse TOML locale file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return &file, nil
}

// Profiles converts and validates every definition in the file.
func (f *LocaleFile) Profiles() ([]Profile, error) {
	if f == nil {
		return nil, nil
	}

	profiles := make([]Profile, 0, len(f.Locales))
	seen := make(map[string]struct{}, len(f.Locales))
	for i, def := range f.Locales {
		profile, err := def.Profile()
		if err != nil {
			return nil, fmt.Errorf("locale #%d: %w", i+1, err)
		}
		if _, dup := seen[profile.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, profile.ID)
		}
		seen[profile.ID] = struct{}{}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// Profile converts a definition into a validated Profile.
func (d ProfileDefinition) Profile() (Profile, error) {
	id := strings.TrimSpace(d.ID)

	var missing []string
	if d.DecimalSeparator == nil {
		missing = append(missing, "decimal_separator")
	}
	if d.ThousandsSeparator == nil {
		missing = append(missing, "thousands_separator")
	}
	if d.CurrencySymbol == nil {
		missing = append(missing, "currency_symbol")
	}
	if d.CurrencySymbolPosition == nil {
		missing = append(missing, "currency_symbol_position")
	}
	if d.CurrencySymbolSpace == nil {
		missing = append(missing, "currency_symbol_space")
	}
	if len(missing) > 0 {
		return Profile{}, fmt.Errorf("%w: %q is missing %s", ErrInvalidProfile, id, strings.Join(missing, ", "))
	}

	position, err := ParseSymbolPosition(*d.CurrencySymbolPosition)
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{
		ID:                 id,
		DecimalSeparator:   *d.DecimalSeparator,
		ThousandsSeparator: *d.ThousandsSeparator,
		CurrencySymbol:     *d.CurrencySymbol,
		SymbolPosition:     position,
		SymbolSpace:        *d.CurrencySymbolSpace,
	}

	if code := strings.ToUpper(strings.TrimSpace(d.Currency)); code != "" {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: %q currency %q: %v", ErrInvalidProfile, id, code, err)
		}
		profile.Currency = unit
	}

	if tag := strings.TrimSpace(d.Language); tag != "" {
		parsed, err := language.Parse(tag)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: %q language %q: %v", ErrInvalidProfile, id, tag, err)
		}
		profile.Language = parsed
	}

	if err := profile.validate(); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
