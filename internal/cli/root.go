// Package cli wires the numfmt commands.
package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-numfmt"
	"github.com/goliatone/go-numfmt/internal/config"
)

type app struct {
	localeFile string
	debug      bool
}

// NewRootCommand creates the numfmt command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:              "numfmt",
		Short:            "Locale aware number formatting",
		Long:             `numfmt renders numbers as currency, grouped, rounded or scientific text using per-locale separator and currency conventions.`,
		Version:          version,
		TraverseChildren: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.localeFile, "locale-file", "", "Locale data file (json, yaml or toml) extending the built-in locales")
	rootCmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug output")
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(a.newFormatCommand())
	rootCmd.AddCommand(a.newLocalesCommand())
	rootCmd.AddCommand(a.newServeCommand())

	return rootCmd
}

// loadConfig reads the NUMFMT_ environment. The --locale-file flag wins over
// NUMFMT_LOCALE_FILE and the XDG config directory.
func (a *app) loadConfig() (config.Config, error) {
	var cfg config.Config
	if err := config.Load(&cfg); err != nil {
		return cfg, err
	}
	if a.localeFile != "" {
		cfg.LocaleFile = a.localeFile
	}
	cfg.LocaleFile = cfg.ResolveLocaleFile()
	if a.debug {
		cfg.LogLevel = log.DebugLevel.String()
	}
	return cfg, nil
}

func newFormatter(cfg config.Config) (*numfmt.Formatter, error) {
	formatter, err := numfmt.NewFormatter(
		numfmt.WithLocaleFile(cfg.LocaleFile),
		numfmt.WithDefaultLocale(cfg.DefaultLocale),
		numfmt.WithDefaultStyle(cfg.DefaultStyle),
		numfmt.WithMaxDecimals(cfg.MaxDecimals),
	)
	if err != nil {
		return nil, fmt.Errorf("building formatter: %w", err)
	}
	return formatter, nil
}
