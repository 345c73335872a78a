package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"budget/internal/core"
)

// FormatMoney renders m with the currency symbol, thousands separators and
// two decimals, e.g. "$1,234.50" or "-$20.00".
func FormatMoney(m core.Money, currency string) string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
		m = m.Neg()
	}
	_, frac, _ := strings.Cut(m.StringFixed(2), ".")
	whole := m.Decimal().Round(2).BigInt()
	return sign + currency + humanize.BigComma(whole) + "." + frac
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return humanize.Comma(n)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Share returns part/total as a 0-1 float, or 0 when total is not positive.
func Share(part, total core.Money) float64 {
	if total.Cmp(core.Zero) <= 0 {
		return 0
	}
	return part.Float64() / total.Float64()
}
