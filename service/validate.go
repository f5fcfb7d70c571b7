package service

import "calc-api/domain"

// advisePositive records an advisory when v <= 0.
func advisePositive(val domain.Validation, field, label string, v float64) {
	if v <= 0 {
		val[field] = label + " " + msgMustBePositive
	}
}

// adviseNonNegative records an advisory when v < 0.
func adviseNonNegative(val domain.Validation, field, label string, v float64) {
	if v < 0 {
		val[field] = label + " " + msgNotNegative
	}
}

// adviseRange records an advisory when v lies outside [lo, hi].
func adviseRange(val domain.Validation, field, label string, v, lo, hi float64) {
	if v < lo || v > hi {
		val[field] = label + " must be between " + trimFloat(lo) + " and " + trimFloat(hi)
	}
}

// frequency describes how often payments are made.
type frequency struct {
	perYear int
	// divisor > 0 marks an accelerated schedule: the monthly payment split
	// into divisor parts.
	divisor int
	label   string
}

var loanFrequencies = map[string]frequency{
	"monthly":      {perYear: 12, label: "monthly"},
	"semi_monthly": {perYear: 24, label: "semi-monthly"},
	"biweekly":     {perYear: 26, label: "bi-weekly"},
	"weekly":       {perYear: 52, label: "weekly"},
	"quarterly":    {perYear: 4, label: "quarterly"},
	"annually":     {perYear: 1, label: "annual"},
}

var mortgageFrequencies = map[string]frequency{
	"monthly":              {perYear: 12, label: "monthly"},
	"semi_monthly":         {perYear: 24, label: "semi-monthly"},
	"biweekly":             {perYear: 26, label: "bi-weekly"},
	"weekly":               {perYear: 52, label: "weekly"},
	"accelerated_biweekly": {perYear: 26, divisor: 2, label: "accelerated bi-weekly"},
	"accelerated_weekly":   {perYear: 52, divisor: 4, label: "accelerated weekly"},
}

// resolveFrequency falls back to monthly for an empty or unknown name; the
// unknown case is reported.
func resolveFrequency(val domain.Validation, name string, table map[string]frequency) (string, frequency) {
	if name == "" {
		return "monthly", table["monthly"]
	}
	if f, ok := table[name]; ok {
		return name, f
	}
	val["frequency"] = "unknown frequency " + name + ", using monthly"
	return "monthly", table["monthly"]
}
