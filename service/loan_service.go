package service

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/formula"
)

// LoanService covers amortized loans, Canadian mortgages and leases.
type LoanService struct {
	logger *zap.Logger
}

// NewLoanService creates a new LoanService.
func NewLoanService(logger *zap.Logger) *LoanService {
	return &LoanService{logger: logger.Named("loan")}
}

// CalculateLoan computes the level payment of an amortized loan.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	// Hard limits reject the request; everything else is advisory.
	if input.Principal > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("principal exceeds the maximum of %s", formatMoney(MaxLoanAmount))
	}
	if input.AnnualRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("annual rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}

	val := domain.Validation{}
	advisePositive(val, "principal", "principal", input.Principal)
	adviseNonNegative(val, "annual_rate", "annual rate", input.AnnualRate)
	adviseRange(val, "origination_fee", "origination fee", input.OriginationFee, 0, 100)
	if input.TermMonths <= 0 {
		val["term_months"] = "term must be at least 1 month"
	}

	name, freq := resolveFrequency(val, input.Frequency, loanFrequencies)
	n := int(math.Round(float64(input.TermMonths) * float64(freq.perYear) / 12))
	if n <= 0 && input.TermMonths > 0 {
		val["term_months"] = "term is shorter than one " + freq.label + " period"
	}

	i := formula.PeriodicRate(input.AnnualRate, freq.perYear)
	principal := math.Max(0, input.Principal)

	payment := finite(val, "payment", formula.Payment(input.Principal, i, n))
	total := payment * float64(max(n, 0))
	interest := total - principal
	if payment == 0 {
		interest = 0
	}
	fee := principal * input.OriginationFee / 100

	result := domain.LoanResult{
		Frequency:     name,
		Payments:      max(n, 0),
		Payment:       roundTo2Decimals(payment),
		TotalPayment:  roundTo2Decimals(total),
		TotalInterest: roundTo2Decimals(interest),
		FeeAmount:     roundTo2Decimals(fee),
		TotalCost:     roundTo2Decimals(total + fee),
	}

	if input.IncludeSchedule && payment > 0 {
		for _, row := range formula.Schedule(input.Principal, i, n) {
			result.Schedule = append(result.Schedule, domain.SchedulePayment{
				Period:    row.Period,
				Payment:   roundTo2Decimals(row.Payment),
				Principal: roundTo2Decimals(row.Principal),
				Interest:  roundTo2Decimals(row.Interest),
				Balance:   roundTo2Decimals(row.Balance),
			})
		}
	}

	lines := []string{
		fmt.Sprintf("Payment: %s %s (%d payments)", formatMoney(result.Payment), freq.label, result.Payments),
		"Total paid: " + formatMoney(result.TotalPayment),
		"Total interest: " + formatMoney(result.TotalInterest),
	}
	if fee > 0 {
		lines = append(lines,
			"Origination fee: "+formatMoney(result.FeeAmount),
			"Total cost: "+formatMoney(result.TotalCost),
		)
	}
	result.Presentation = present(val, summary("Loan payment", lines...))

	if len(val) > 0 {
		s.logger.Debug("degenerate loan input", zap.Any("validation", val))
	}

	return result, nil
}

// CalculateMortgage computes a Canadian mortgage: the nominal rate compounds
// semi-annually and CMHC insurance is added when the down payment is below 20%.
func (s *LoanService) CalculateMortgage(
	input domain.MortgageInput,
) (domain.MortgageResult, error) {

	if input.Price > MaxLoanAmount {
		return domain.MortgageResult{}, fmt.Errorf("price exceeds the maximum of %s", formatMoney(MaxLoanAmount))
	}
	if input.AnnualRate > MaxInterestRate {
		return domain.MortgageResult{}, fmt.Errorf("annual rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.AmortizationYears > MaxAmortizationYears {
		return domain.MortgageResult{}, fmt.Errorf("amortization exceeds the maximum of %d years", MaxAmortizationYears)
	}

	val := domain.Validation{}
	advisePositive(val, "price", "price", input.Price)
	adviseNonNegative(val, "down_payment", "down payment", input.DownPayment)
	adviseNonNegative(val, "annual_rate", "annual rate", input.AnnualRate)
	if input.AmortizationYears <= 0 {
		val["amortization_years"] = "amortization must be at least 1 year"
	}

	name, freq := resolveFrequency(val, input.Frequency, mortgageFrequencies)

	loan := math.Max(0, input.Price-input.DownPayment)
	ltv := finite(val, "loan_to_value", loan*100/input.Price)

	premiumRate, insurable := formula.CMHCPremiumRate(ltv)
	if !insurable {
		val["down_payment"] = "down payment below 5% of the price cannot be insured"
	}
	premium := loan * premiumRate / 100
	insured := loan + premium

	var (
		periodic float64
		payment  float64
		payments int
		total    float64
	)

	if freq.divisor > 0 {
		// Accelerated: split the monthly payment, pay it more often, and
		// finish early.
		monthlyRate := formula.CanadianPeriodicRate(input.AnnualRate, 12)
		monthly := formula.Payment(insured, monthlyRate, input.AmortizationYears*12)
		payment = finite(val, "payment", monthly/float64(freq.divisor))
		periodic = formula.CanadianPeriodicRate(input.AnnualRate, freq.perYear)
		periods := finite(val, "payments", periodsToRepay(insured, periodic, payment))
		payments = int(math.Ceil(periods))
		total = payment * periods
	} else {
		periodic = formula.CanadianPeriodicRate(input.AnnualRate, freq.perYear)
		payments = max(input.AmortizationYears, 0) * freq.perYear
		payment = finite(val, "payment", formula.Payment(insured, periodic, payments))
		total = payment * float64(payments)
	}

	interest := total - insured
	if payment == 0 || payments == 0 {
		payment = 0
		interest, total, payments = 0, 0, 0
	}

	result := domain.MortgageResult{
		Frequency:        name,
		LoanToValue:      roundTo2Decimals(ltv),
		InsuranceRate:    premiumRate,
		InsurancePremium: roundTo2Decimals(premium),
		InsuredPrincipal: roundTo2Decimals(insured),
		PeriodicRate:     roundTo(periodic*100, 6),
		EffectiveAnnual:  roundTo(formula.SemiAnnualEffectiveRate(input.AnnualRate)*100, 6),
		Payments:         payments,
		Payment:          roundTo2Decimals(payment),
		TotalPayment:     roundTo2Decimals(total),
		TotalInterest:    roundTo2Decimals(interest),
	}

	result.Presentation = present(val, summary("Mortgage payment",
		fmt.Sprintf("Payment: %s %s (%d payments)", formatMoney(result.Payment), freq.label, result.Payments),
		"Mortgage amount: "+formatMoney(result.InsuredPrincipal),
		"CMHC insurance: "+formatMoney(result.InsurancePremium)+" ("+formatPercent(premiumRate)+")",
		"Total interest: "+formatMoney(result.TotalInterest),
	))

	if len(val) > 0 {
		s.logger.Debug("degenerate mortgage input", zap.Any("validation", val))
	}

	return result, nil
}

// periodsToRepay solves the annuity formula for n given a fixed payment.
func periodsToRepay(principal, i, payment float64) float64 {
	if principal <= 0 || payment <= 0 {
		return 0
	}
	if i == 0 {
		return principal / payment
	}
	return -math.Log(1-principal*i/payment) / math.Log(1+i)
}

// CalculateLease computes a closed-end lease payment from the net
// capitalized cost, residual value and money factor.
func (s *LoanService) CalculateLease(
	input domain.LeaseInput,
) (domain.LeaseResult, error) {

	if input.MSRP > MaxLoanAmount || input.NegotiatedPrice > MaxLoanAmount {
		return domain.LeaseResult{}, fmt.Errorf("price exceeds the maximum of %s", formatMoney(MaxLoanAmount))
	}
	if input.TermMonths > MaxLeaseMonths {
		return domain.LeaseResult{}, fmt.Errorf("lease term exceeds the maximum of %d months", MaxLeaseMonths)
	}

	val := domain.Validation{}
	advisePositive(val, "msrp", "MSRP", input.MSRP)
	adviseNonNegative(val, "down_payment", "down payment", input.DownPayment)
	adviseNonNegative(val, "trade_in", "trade-in", input.TradeIn)
	adviseRange(val, "residual_percent", "residual percent", input.ResidualPercent, 0, 100)
	adviseNonNegative(val, "sales_tax", "sales tax", input.SalesTax)
	if input.TermMonths <= 0 {
		val["term_months"] = "term must be at least 1 month"
	}

	mf := input.MoneyFactor
	if mf == 0 && input.APR != 0 {
		mf = formula.APRToMoneyFactor(input.APR)
	}
	adviseNonNegative(val, "money_factor", "money factor", mf)

	price := input.NegotiatedPrice
	if price == 0 {
		price = input.MSRP
	}
	capCost := price - input.DownPayment - input.TradeIn
	residual := input.MSRP * input.ResidualPercent / 100
	if capCost < residual {
		val["negotiated_price"] = "capitalized cost is below the residual value"
	}

	dep, fin := formula.LeasePayment(capCost, residual, mf, max(input.TermMonths, 0))
	dep = finite(val, "depreciation_fee", dep)
	tax := (dep + fin) * input.SalesTax / 100
	monthly := dep + fin + tax
	total := monthly*float64(max(input.TermMonths, 0)) + input.DownPayment

	result := domain.LeaseResult{
		CapitalizedCost: roundTo2Decimals(capCost),
		ResidualValue:   roundTo2Decimals(residual),
		MoneyFactor:     roundTo(mf, 6),
		APR:             roundTo(formula.MoneyFactorToAPR(mf), 4),
		Depreciation:    roundTo2Decimals(dep),
		Finance:         roundTo2Decimals(fin),
		Tax:             roundTo2Decimals(tax),
		MonthlyPayment:  roundTo2Decimals(monthly),
		TotalCost:       roundTo2Decimals(total),
	}

	result.Presentation = present(val, summary("Lease payment",
		"Monthly payment: "+formatMoney(result.MonthlyPayment),
		fmt.Sprintf("Money factor: %s (APR %s)", trimFloat(result.MoneyFactor), formatPercent(result.APR)),
		"Residual value: "+formatMoney(result.ResidualValue),
		"Total lease cost: "+formatMoney(result.TotalCost),
	))

	return result, nil
}
