package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/goliatone/go-numfmt"
)

func (a *app) newLocalesCommand() *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the available locales",
		Long:  `List the locale identifiers accepted by --locale. On a terminal the separators and currency conventions of each locale are shown as a table.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			formatter, err := newFormatter(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			profiles := formatter.Registry().Profiles()
			if table || isTerminal(out) {
				renderLocaleTable(out, profiles)
				return nil
			}
			for _, p := range profiles {
				if _, err := fmt.Fprintln(out, p.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&table, "table", "t", false, "Always print the detailed table")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderLocaleTable(w io.Writer, profiles []numfmt.Profile) {
	t := NewTable("ID", "Decimal", "Thousands", "Symbol", "Position", "Space", "Currency", "Language")
	for _, p := range profiles {
		t.AddRow(
			p.ID,
			strconv.Quote(p.DecimalSeparator),
			strconv.Quote(p.ThousandsSeparator),
			p.CurrencySymbol,
			p.SymbolPosition.String(),
			strconv.FormatBool(p.SymbolSpace),
			p.CurrencyCode(),
			languageName(p.Language),
		)
	}
	t.Render(w)
}

func languageName(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return tag.String()
}
