package formula

import "math"

// SemiAnnualEffectiveRate converts a nominal annual rate (percent) compounded
// semi-annually into its effective annual rate as a decimal.
func SemiAnnualEffectiveRate(annualRate float64) float64 {
	return math.Pow(1+annualRate/100/2, 2) - 1
}

// EquivalentPeriodicRate re-derives the periodic rate for k payments per year
// from an effective annual rate.
func EquivalentPeriodicRate(effective float64, k int) float64 {
	return math.Pow(1+effective, 1/float64(k)) - 1
}

// CanadianPeriodicRate is the periodic rate of a Canadian fixed mortgage:
// nominal rate compounded semi-annually, paid k times a year.
func CanadianPeriodicRate(annualRate float64, k int) float64 {
	return EquivalentPeriodicRate(SemiAnnualEffectiveRate(annualRate), k)
}

// CMHC premium tiers keyed by the upper loan-to-value bound they cover.
var cmhcTiers = []struct {
	maxLTV  float64
	premium float64
}{
	{80, 0},
	{85, 2.80},
	{90, 3.10},
	{95, 4.00},
}

// CMHCPremiumRate returns the mortgage insurance premium (percent of the
// loan) for a loan-to-value ratio given in percent. ok is false when the
// ratio is above the insurable maximum.
func CMHCPremiumRate(ltv float64) (rate float64, ok bool) {
	for _, tier := range cmhcTiers {
		if ltv <= tier.maxLTV {
			return tier.premium, true
		}
	}
	return 0, false
}
