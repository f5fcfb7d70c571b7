package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/formula"
)

func TestCalculateMortgage_TwentyPercentDownHasNoInsurance(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateMortgage(domain.MortgageInput{
		Price:             500000,
		DownPayment:       100000,
		AnnualRate:        5,
		AmortizationYears: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, result.LoanToValue)
	assert.Zero(t, result.InsurancePremium)
	assert.Equal(t, 400000.0, result.InsuredPrincipal)
	assert.Equal(t, 300, result.Payments)

	want := formula.Payment(400000, formula.CanadianPeriodicRate(5, 12), 300)
	assert.Equal(t, roundTo2Decimals(want), result.Payment)
	assert.InDelta(t, 2326.42, result.Payment, 0.5)
	assert.Nil(t, result.Validation)
}

func TestCalculateMortgage_CMHCTier(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateMortgage(domain.MortgageInput{
		Price:             400000,
		DownPayment:       40000,
		AnnualRate:        4.5,
		AmortizationYears: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, 90.0, result.LoanToValue)
	assert.Equal(t, 3.10, result.InsuranceRate)
	assert.Equal(t, 11160.0, result.InsurancePremium)
	assert.Equal(t, 371160.0, result.InsuredPrincipal)
}

func TestCalculateMortgage_NotInsurable(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateMortgage(domain.MortgageInput{
		Price:             300000,
		DownPayment:       6000,
		AnnualRate:        5,
		AmortizationYears: 25,
	})
	require.NoError(t, err)
	assert.Zero(t, result.InsurancePremium)
	assert.Contains(t, result.Validation, "down_payment")
}

func TestCalculateMortgage_AcceleratedBiweeklyPaysOffSooner(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	base := domain.MortgageInput{
		Price:             500000,
		DownPayment:       100000,
		AnnualRate:        5,
		AmortizationYears: 25,
	}
	monthly, err := s.CalculateMortgage(base)
	require.NoError(t, err)

	base.Frequency = "accelerated_biweekly"
	accel, err := s.CalculateMortgage(base)
	require.NoError(t, err)

	assert.InDelta(t, monthly.Payment/2, accel.Payment, 0.01)
	assert.Less(t, accel.Payments, 25*26)
	assert.Less(t, accel.TotalInterest, monthly.TotalInterest)
}

func TestCalculateMortgage_ZeroPrice(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateMortgage(domain.MortgageInput{AnnualRate: 5, AmortizationYears: 25})
	require.NoError(t, err)
	assert.Zero(t, result.Payment)
	assert.Contains(t, result.Validation, "price")
}

func TestCalculateLease(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateLease(domain.LeaseInput{
		MSRP:            35000,
		NegotiatedPrice: 32000,
		DownPayment:     2000,
		ResidualPercent: 55,
		APR:             6,
		TermMonths:      36,
		SalesTax:        0,
	})
	require.NoError(t, err)

	// cap 30,000, residual 19,250, MF 0.0025
	assert.Equal(t, 30000.0, result.CapitalizedCost)
	assert.Equal(t, 19250.0, result.ResidualValue)
	assert.Equal(t, 0.0025, result.MoneyFactor)
	assert.Equal(t, 298.61, result.Depreciation)
	assert.Equal(t, 123.13, result.Finance)
	assert.Equal(t, 421.74, result.MonthlyPayment)
	assert.Contains(t, result.Summary, "$421.74")
}

func TestCalculateLease_ZeroTerm(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateLease(domain.LeaseInput{MSRP: 30000, ResidualPercent: 50, MoneyFactor: 0.002})
	require.NoError(t, err)
	assert.Contains(t, result.Validation, "term_months")
	assert.Contains(t, result.Validation, "depreciation_fee")
}

func TestCalculateLease_NegativeTermMatchesZero(t *testing.T) {
	s := NewLoanService(zap.NewNop())

	result, err := s.CalculateLease(domain.LeaseInput{MSRP: 30000, ResidualPercent: 50, MoneyFactor: 0.002, TermMonths: -36})
	require.NoError(t, err)
	assert.Contains(t, result.Validation, "term_months")
	assert.Zero(t, result.Depreciation)
	assert.Zero(t, result.TotalCost)
}
