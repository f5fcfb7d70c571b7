package service

import (
	"fmt"

	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/formula"
)

type FinanceService struct {
	logger *zap.Logger
}

func NewFinanceService(logger *zap.Logger) *FinanceService {
	return &FinanceService{logger: logger.Named("finance")}
}

// CalculateDiscount applies a percentage discount followed by sales tax.
func (s *FinanceService) CalculateDiscount(
	input domain.DiscountInput,
) (domain.DiscountResult, error) {

	if input.Price > MaxLoanAmount {
		return domain.DiscountResult{}, fmt.Errorf("price exceeds the maximum of %s", formatMoney(MaxLoanAmount))
	}

	val := domain.Validation{}
	advisePositive(val, "original_price", "price", input.Price)
	adviseRange(val, "discount", "discount", input.Discount, 0, 100)
	adviseNonNegative(val, "tax", "tax", input.Tax)

	discounted, final := formula.DiscountedPrice(input.Price, input.Discount, input.Tax)

	result := domain.DiscountResult{
		DiscountedPrice: roundTo2Decimals(discounted),
		Savings:         roundTo2Decimals(input.Price - discounted),
		TaxAmount:       roundTo2Decimals(final - discounted),
		FinalPrice:      roundTo2Decimals(final),
	}
	result.Presentation = present(val, summary("Discount",
		"Discounted price: "+formatMoney(result.DiscountedPrice),
		"You save: "+formatMoney(result.Savings),
		"Tax: "+formatMoney(result.TaxAmount),
		"Final price: "+formatMoney(result.FinalPrice),
	))
	return result, nil
}

// CalculateCAGR returns the compound annual growth rate between two values.
func (s *FinanceService) CalculateCAGR(
	input domain.CAGRInput,
) (domain.CAGRResult, error) {

	val := domain.Validation{}
	advisePositive(val, "start_value", "start value", input.StartValue)
	adviseNonNegative(val, "end_value", "end value", input.EndValue)
	advisePositive(val, "years", "years", input.Years)

	cagr := finite(val, "cagr", formula.CAGR(input.StartValue, input.EndValue, input.Years))
	total := finite(val, "total_percent_change", (input.EndValue-input.StartValue)/input.StartValue*100)

	result := domain.CAGRResult{
		CAGR:         roundTo(cagr, 2),
		AbsoluteGain: roundTo2Decimals(input.EndValue - input.StartValue),
		TotalPercent: roundTo(total, 2),
	}
	result.Presentation = present(val, summary("Compound annual growth rate",
		"CAGR: "+formatPercent(result.CAGR),
		"Total change: "+formatMoney(result.AbsoluteGain)+" ("+formatPercent(result.TotalPercent)+")",
	))
	return result, nil
}

func dtiRating(ratio float64) string {
	switch {
	case ratio <= 36:
		return "healthy"
	case ratio <= 43:
		return "manageable"
	case ratio <= 50:
		return "high"
	default:
		return "critical"
	}
}

// CalculateDTI divides monthly debt payments by gross monthly income.
func (s *FinanceService) CalculateDTI(
	input domain.DTIInput,
) (domain.DTIResult, error) {

	if len(input.MonthlyDebts) > MaxDebtsPerRequest {
		return domain.DTIResult{}, fmt.Errorf("number of debts exceeds the maximum of %d", MaxDebtsPerRequest)
	}

	val := domain.Validation{}
	advisePositive(val, "gross_monthly_income", "income", input.GrossMonthlyIncome)
	adviseNonNegative(val, "housing_payment", "housing payment", input.HousingPayment)

	var debts float64
	for i, d := range input.MonthlyDebts {
		if d < 0 {
			val[fmt.Sprintf("monthly_debts[%d]", i)] = "debt payment " + msgNotNegative
		}
		debts += d
	}

	ratio := finite(val, "dti", formula.DTI(debts, input.GrossMonthlyIncome))
	result := domain.DTIResult{
		TotalDebts: roundTo2Decimals(debts),
		Ratio:      roundTo(ratio, 2),
	}
	if input.HousingPayment > 0 {
		result.FrontEnd = roundTo(finite(val, "front_end_ratio", formula.DTI(input.HousingPayment, input.GrossMonthlyIncome)), 2)
	}
	if _, undefined := val["dti"]; !undefined {
		result.Rating = dtiRating(ratio)
	}

	lines := []string{
		"Monthly debts: " + formatMoney(result.TotalDebts),
		"Debt-to-income: " + formatPercent(result.Ratio) + " (" + result.Rating + ")",
	}
	if result.FrontEnd > 0 {
		lines = append(lines, "Housing ratio: "+formatPercent(result.FrontEnd))
	}
	result.Presentation = present(val, summary("Debt-to-income ratio", lines...))
	return result, nil
}

// marginMode is one way of pricing a product. Each mode resolves the price
// from cost and its own input; every other figure derives from that price.
type marginMode interface {
	price(cost float64) float64
}

type fromPrice struct{ value float64 }

type fromMargin struct{ margin float64 }

type fromMarkup struct{ markup float64 }

func (m fromPrice) price(float64) float64       { return m.value }
func (m fromMargin) price(cost float64) float64 { return formula.PriceFromMargin(cost, m.margin) }
func (m fromMarkup) price(cost float64) float64 { return formula.PriceFromMarkup(cost, m.markup) }

func parseMarginMode(val domain.Validation, input domain.MarginInput) marginMode {
	switch input.Mode {
	case domain.MarginFromPrice:
		advisePositive(val, "price", "price", input.Price)
		return fromPrice{value: input.Price}
	case domain.MarginFromMargin:
		if input.Margin >= 100 {
			val["margin"] = "margin must be below 100%"
		}
		return fromMargin{margin: input.Margin}
	case domain.MarginFromMarkup:
		adviseNonNegative(val, "markup", "markup", input.Markup)
		return fromMarkup{markup: input.Markup}
	}
	val["mode"] = "mode must be from_price, from_margin or from_markup"
	return nil
}

// CalculateMargin prices a product in one of three explicit modes.
func (s *FinanceService) CalculateMargin(
	input domain.MarginInput,
) (domain.MarginResult, error) {

	val := domain.Validation{}
	advisePositive(val, "cost", "cost", input.Cost)

	result := domain.MarginResult{Mode: input.Mode, Cost: input.Cost}
	if mode := parseMarginMode(val, input); mode != nil {
		price := finite(val, "price", mode.price(input.Cost))
		result.Price = roundTo2Decimals(price)
		result.Profit = roundTo2Decimals(price - input.Cost)
		result.Margin = roundTo(finite(val, "margin", formula.Margin(input.Cost, price)), 2)
		result.Markup = roundTo(finite(val, "markup", formula.Markup(input.Cost, price)), 2)
	}

	result.Presentation = present(val, summary("Profit margin",
		"Price: "+formatMoney(result.Price),
		"Profit: "+formatMoney(result.Profit),
		"Margin: "+formatPercent(result.Margin),
		"Markup: "+formatPercent(result.Markup),
	))
	return result, nil
}
