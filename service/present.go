package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"calc-api/domain"
)

// finite replaces NaN and ±Inf with 0 and records an advisory for field.
// Only the first advisory per field is kept.
func finite(val domain.Validation, field string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if _, exists := val[field]; !exists {
			val[field] = msgUndefined
		}
		return 0
	}
	return v
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// roundTo2Decimals rounds a monetary amount to cents.
func roundTo2Decimals(v float64) float64 {
	return roundTo(v, 2)
}

// formatMoney renders v as "$1,234.56" (negative as "-$1,234.56").
func formatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatPercent renders v (already in percent) with two decimals.
func formatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00%"
	}
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

// formatCount prints large float counts without exponent where possible.
func formatCount(v float64) string {
	if v < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%g", v)
}

// summary joins "Label: value" lines into a clipboard payload.
func summary(title string, lines ...string) string {
	var b strings.Builder
	b.WriteString(title)
	for _, l := range lines {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	return b.String()
}

// present attaches advisories and the summary to a result.
func present(val domain.Validation, text string) domain.Presentation {
	if len(val) == 0 {
		val = nil
	}
	return domain.Presentation{Validation: val, Summary: text}
}

// trimFloat prints v without trailing zeros. Non-finite values print as 0.
func trimFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return decimal.NewFromFloat(v).String()
}
