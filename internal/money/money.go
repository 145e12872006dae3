// Package money formats whole-dollar amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a non-negative whole-dollar amount as US currency with
// grouping separators and no fractional digits, e.g. 32500 -> "$32,500".
func FormatUSD(amount int64) string {
	return usd.Sprintf("$%v", number.Decimal(amount))
}
