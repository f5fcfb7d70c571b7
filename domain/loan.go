package domain

// Validation maps an input field to an advisory message. Advisories never
// block the calculation.
type Validation map[string]string

// Presentation is shared by every calculator result: advisory messages plus a
// plain-text summary meant for the clipboard.
type Presentation struct {
	Validation Validation `json:"validation,omitempty"`
	Summary    string     `json:"summary"`
}

func (p Presentation) ClipboardText() string { return p.Summary }

type LoanInput struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annual_rate"`
	TermMonths      int     `json:"term_months"`
	Frequency       string  `json:"frequency,omitempty"`
	OriginationFee  float64 `json:"origination_fee,omitempty"`
	IncludeSchedule bool    `json:"include_schedule,omitempty"`
}

type SchedulePayment struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type LoanResult struct {
	Frequency     string            `json:"frequency"`
	Payments      int               `json:"payments"`
	Payment       float64           `json:"payment"`
	TotalPayment  float64           `json:"total_payment"`
	TotalInterest float64           `json:"total_interest"`
	FeeAmount     float64           `json:"fee_amount,omitempty"`
	TotalCost     float64           `json:"total_cost"`
	Schedule      []SchedulePayment `json:"schedule,omitempty"`

	Presentation
}
