// Package currency renders decimal amounts for display, matching the
// format the web UI uses in its summaries and charts.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// Compact renders an amount with a K, M or B suffix. Amounts below one
// thousand are rendered as-is.
func Compact(amount decimal.Decimal) string {
	abs := amount.Abs()
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	switch {
	case abs.GreaterThanOrEqual(billion):
		return sign + abs.DivRound(billion, 2).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(million):
		return sign + abs.DivRound(million, 2).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return sign + abs.DivRound(thousand, 2).StringFixed(2) + "K"
	}

	return sign + abs.String()
}

// Format renders a signed currency string: positive amounts get a plus
// sign, negative amounts a minus sign, zero neither.
func Format(amount decimal.Decimal, compact bool) string {
	if amount.IsZero() {
		return "$0"
	}

	abs := amount.Abs()
	body := grouped(abs)
	if compact {
		body = Compact(abs)
	}

	if amount.IsNegative() {
		return "-$" + body
	}
	return "+$" + body
}

// grouped renders a non-negative amount with thousands separators.
func grouped(amount decimal.Decimal) string {
	if amount.Equal(amount.Truncate(0)) {
		return printer.Sprintf("%d", amount.IntPart())
	}

	f, _ := amount.Float64()
	return printer.Sprintf("%.2f", f)
}
