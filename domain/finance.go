package domain

type DiscountInput struct {
	Price    float64 `json:"original_price"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
}

type DiscountResult struct {
	DiscountedPrice float64 `json:"discounted_price"`
	Savings         float64 `json:"savings"`
	TaxAmount       float64 `json:"tax_amount"`
	FinalPrice      float64 `json:"final_price"`

	Presentation
}

type CAGRInput struct {
	StartValue float64 `json:"start_value"`
	EndValue   float64 `json:"end_value"`
	Years      float64 `json:"years"`
}

type CAGRResult struct {
	CAGR         float64 `json:"cagr"`
	AbsoluteGain float64 `json:"absolute_change"`
	TotalPercent float64 `json:"total_percent_change"`

	Presentation
}

type DTIInput struct {
	GrossMonthlyIncome float64   `json:"gross_monthly_income"`
	MonthlyDebts       []float64 `json:"monthly_debts"`
	HousingPayment     float64   `json:"housing_payment,omitempty"`
}

type DTIResult struct {
	TotalDebts float64 `json:"total_monthly_debts"`
	Ratio      float64 `json:"dti"`
	FrontEnd   float64 `json:"front_end_ratio,omitempty"`
	Rating     string  `json:"rating"`

	Presentation
}

// Margin calculation modes. Each mode derives exactly one authoritative
// value from cost and the mode's own input.
const (
	MarginFromPrice  = "from_price"
	MarginFromMargin = "from_margin"
	MarginFromMarkup = "from_markup"
)

type MarginInput struct {
	Mode   string  `json:"mode"`
	Cost   float64 `json:"cost"`
	Price  float64 `json:"price,omitempty"`
	Margin float64 `json:"margin,omitempty"`
	Markup float64 `json:"markup,omitempty"`
}

type MarginResult struct {
	Mode   string  `json:"mode"`
	Cost   float64 `json:"cost"`
	Price  float64 `json:"price"`
	Profit float64 `json:"profit"`
	Margin float64 `json:"margin"`
	Markup float64 `json:"markup"`

	Presentation
}
