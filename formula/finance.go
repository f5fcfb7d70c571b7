package formula

import "math"

// CAGR is the compound annual growth rate in percent.
func CAGR(start, end, years float64) float64 {
	return (math.Pow(end/start, 1/years) - 1) * 100
}

// DTI is the debt-to-income ratio in percent.
func DTI(monthlyDebts, grossMonthlyIncome float64) float64 {
	return monthlyDebts / grossMonthlyIncome * 100
}

// DiscountedPrice applies a percentage discount and then sales tax.
func DiscountedPrice(price, discount, tax float64) (discounted, final float64) {
	discounted = price * (1 - discount/100)
	final = discounted * (1 + tax/100)
	return discounted, final
}

// MoneyFactorToAPR and APRToMoneyFactor use the 2400 lease convention.
func MoneyFactorToAPR(mf float64) float64 { return mf * 2400 }

func APRToMoneyFactor(apr float64) float64 { return apr / 2400 }

// LeasePayment returns the pre-tax depreciation and finance fees of a lease
// on a net capitalized cost.
func LeasePayment(capCost, residual, moneyFactor float64, months int) (depreciation, finance float64) {
	depreciation = (capCost - residual) / float64(months)
	finance = (capCost + residual) * moneyFactor
	return depreciation, finance
}

// Margin and Markup are both in percent of price and cost respectively.
func Margin(cost, price float64) float64 { return (price - cost) / price * 100 }

func Markup(cost, price float64) float64 { return (price - cost) / cost * 100 }

// PriceFromMargin solves margin = (p − c)/p for p.
func PriceFromMargin(cost, margin float64) float64 { return cost / (1 - margin/100) }

// PriceFromMarkup solves markup = (p − c)/c for p.
func PriceFromMarkup(cost, markup float64) float64 { return cost * (1 + markup/100) }
