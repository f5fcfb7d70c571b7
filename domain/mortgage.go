package domain

type MortgageInput struct {
	Price             float64 `json:"price"`
	DownPayment       float64 `json:"down_payment"`
	AnnualRate        float64 `json:"annual_rate"`
	AmortizationYears int     `json:"amortization_years"`
	Frequency         string  `json:"frequency,omitempty"`
}

type MortgageResult struct {
	Frequency        string  `json:"frequency"`
	LoanToValue      float64 `json:"loan_to_value"`
	InsurancePremium float64 `json:"insurance_premium"`
	InsuranceRate    float64 `json:"insurance_rate"`
	InsuredPrincipal float64 `json:"insured_principal"`
	PeriodicRate     float64 `json:"periodic_rate"`
	EffectiveAnnual  float64 `json:"effective_annual_rate"`
	Payments         int     `json:"payments"`
	Payment          float64 `json:"payment"`
	TotalPayment     float64 `json:"total_payment"`
	TotalInterest    float64 `json:"total_interest"`

	Presentation
}

type LeaseInput struct {
	MSRP            float64 `json:"msrp"`
	NegotiatedPrice float64 `json:"negotiated_price"`
	DownPayment     float64 `json:"down_payment"`
	TradeIn         float64 `json:"trade_in"`
	ResidualPercent float64 `json:"residual_percent"`
	MoneyFactor     float64 `json:"money_factor,omitempty"`
	APR             float64 `json:"apr,omitempty"`
	TermMonths      int     `json:"term_months"`
	SalesTax        float64 `json:"sales_tax"`
}

type LeaseResult struct {
	CapitalizedCost float64 `json:"capitalized_cost"`
	ResidualValue   float64 `json:"residual_value"`
	MoneyFactor     float64 `json:"money_factor"`
	APR             float64 `json:"apr"`
	Depreciation    float64 `json:"depreciation_fee"`
	Finance         float64 `json:"finance_fee"`
	Tax             float64 `json:"tax"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	TotalCost       float64 `json:"total_cost"`

	Presentation
}
