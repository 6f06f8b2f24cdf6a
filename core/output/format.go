// Package output - Currency formatting
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEuro formats an amount in Dutch notation: thousands separated by
// dots, two decimals after a comma (e.g. € 12.705,00).
func FormatEuro(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	raw := amount.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	intPart := groupThousands(parts[0])

	result := "€ " + intPart + "," + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a dot every three digits from the right
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
