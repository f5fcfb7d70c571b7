package service

import "time"

const (
	MaxLoanAmount        = 1_000_000_000.0 // 1 billion
	MaxInterestRate      = 1000.0          // 1000% per year
	MaxTermMonths        = 600             // 50 years
	MaxAmortizationYears = 40
	MaxLeaseMonths       = 120
	MaxDatasetSize       = 10_000
	MaxDebtsPerRequest   = 50

	// Combinatorics inputs above this are capped; 171! overflows float64.
	MaxCombinatoricsN = 170

	DefaultMaxPDFBytes      = 50 << 20
	DefaultMaxImageBytes    = 10 << 20
	DefaultProgressDuration = 2 * time.Second
	DefaultProgressSteps    = 20
)

// Advisory messages reused across calculators.
const (
	msgUndefined      = "result is undefined for the given inputs"
	msgMustBePositive = "must be greater than 0"
	msgNotNegative    = "cannot be negative"
)
