package numfmt

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// defaultProfiles are the locales compiled into every build, in listing order.
// Adding a locale means adding exactly one entry here.
var defaultProfiles = []Profile{
	{
		ID:                 "US",
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "$",
		SymbolPosition:     SymbolBefore,
		SymbolSpace:        false,
		Currency:           currency.USD,
		Language:           language.AmericanEnglish,
	},
	{
		ID:                 "EU",
		DecimalSeparator:   ",",
		ThousandsSeparator: ".",
		CurrencySymbol:     "€",
		SymbolPosition:     SymbolAfter,
		SymbolSpace:        true,
		Currency:           currency.EUR,
		Language:           language.MustParse("en-150"),
	},
	{
		ID:                 "UK",
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "£",
		SymbolPosition:     SymbolBefore,
		SymbolSpace:        false,
		Currency:           currency.GBP,
		Language:           language.BritishEnglish,
	},
}
