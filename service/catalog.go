package service

// Tool describes one calculator endpoint.
type Tool struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Method   string   `json:"method"`
	Path     string   `json:"path"`
	Fields   []string `json:"fields"`
}

// Catalog lists every tool the API serves.
func Catalog() []Tool {
	tools := []Tool{
		{"Loan payment", "finance", "POST", "/loan/calculate", []string{"principal", "annual_rate", "term_months", "frequency", "origination_fee", "include_schedule"}},
		{"Canadian mortgage", "finance", "POST", "/mortgage/canada", []string{"price", "down_payment", "annual_rate", "amortization_years", "frequency"}},
		{"Lease payment", "finance", "POST", "/lease/calculate", []string{"msrp", "negotiated_price", "down_payment", "trade_in", "residual_percent", "money_factor", "apr", "term_months", "sales_tax"}},
		{"CAGR", "finance", "POST", "/finance/cagr", []string{"start_value", "end_value", "years"}},
		{"Debt-to-income", "finance", "POST", "/finance/dti", []string{"gross_monthly_income", "monthly_debts", "housing_payment"}},
		{"Profit margin", "finance", "POST", "/finance/margin", []string{"mode", "cost", "price", "margin", "markup"}},
		{"Discount", "shopping", "POST", "/shopping/discount", []string{"original_price", "discount", "tax"}},
		{"Body fat", "health", "POST", "/health/body-fat", []string{"gender", "height_cm", "neck_cm", "waist_cm", "hip_cm", "weight_kg"}},
		{"BMR and TDEE", "health", "POST", "/health/bmr", []string{"gender", "weight_kg", "height_cm", "age", "activity"}},
		{"BMI", "health", "POST", "/health/bmi", []string{"weight_kg", "height_cm"}},
		{"Fractions", "math", "POST", "/math/fraction", []string{"left", "right", "operation"}},
		{"Permutations and combinations", "math", "POST", "/math/combinatorics", []string{"n", "r"}},
		{"Statistics", "math", "POST", "/math/statistics", []string{"values", "text"}},
	}
	for _, op := range FileOperations() {
		tools = append(tools, Tool{
			Name:     "PDF " + op,
			Category: "files",
			Method:   "POST",
			Path:     "/pdf/" + op,
			Fields:   []string{"file"},
		})
	}
	return tools
}
