package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-numfmt"
)

type formatOptions struct {
	locale   string
	style    string
	decimals int
	json     bool
}

func (a *app) newFormatCommand() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Format a single number",
		Long: `Format a single number for a locale and style.

Styles: currency (default), grouped (comma), rounded (round), scientific (sci).
Pass negative values after "--", for example: numfmt format -- -42`,
		Example: `  numfmt format 1234.5
  numfmt format 1234.5 --locale EU
  numfmt format 1234567 --style grouped
  numfmt format 3.14159 --style rounded --decimals 3 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFormat(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.locale, "locale", "l", "", "Locale identifier (default US)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "Formatting style (default currency)")
	cmd.Flags().IntVarP(&opts.decimals, "decimals", "n", 0, "Fractional digits (default depends on style)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the resolved request and result as JSON")

	return cmd
}

func (a *app) runFormat(cmd *cobra.Command, rawValue string, opts *formatOptions) error {
	cmd.SilenceUsage = true

	value, err := numfmt.ParseValue(rawValue)
	if err != nil {
		return err
	}

	var decimals *int
	if cmd.Flags().Changed("decimals") {
		decimals = numfmt.Decimals(opts.decimals)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}

	result, err := formatter.Format(numfmt.Request{
		Value:    value,
		Locale:   opts.locale,
		Style:    opts.style,
		Decimals: decimals,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err = fmt.Fprintln(out, result.Formatted)
	return err
}
