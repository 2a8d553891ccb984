// Package moneypkg converts integer cent amounts to display strings.
//
// All stored monetary values are integer counts of minor currency units.
// Conversion to a decimal string happens only here, at the output boundary,
// so no intermediate computation ever rounds.
package moneypkg

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders cents as a fixed two-decimal string with a comma
// decimal separator, e.g. 123456 -> "1234,56".
func Format(cents int64) string {
	s := decimal.New(cents, -2).StringFixed(2)
	return strings.Replace(s, ".", ",", 1)
}

// Percentage renders part as a percentage of whole to two decimals,
// e.g. Percentage(500, 1200) -> "41,67%".
//
// A zero whole is substituted with 1 so that ratios over an empty
// baseline degrade to a plain figure instead of a division fault.
// Every aggregator shares this single division-guard policy.
func Percentage(part, whole int64) string {
	if whole == 0 {
		whole = 1
	}

	ratio := decimal.New(part, 0).
		Div(decimal.New(whole, 0)).
		Mul(decimal.New(100, 0)).
		StringFixed(2)

	return strings.Replace(ratio, ".", ",", 1) + "%"
}

// ChangePercent returns the relative change from previous to current in
// percent. A zero previous yields 0 rather than a fault: "no baseline"
// is reported as no change by contract.
func ChangePercent(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}

	return float64(current-previous) / float64(previous) * 100
}
