package service

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"calc-api/domain"
)

func TestCalculateFraction_Operations(t *testing.T) {
	s := NewMathService(zap.NewNop())

	cases := []struct {
		op    string
		mixed string
	}{
		{"add", "1 1/4"},
		{"-", "1/4"},
		{"multiply", "3/8"},
		{"divide", "1 1/2"},
	}
	for _, tc := range cases {
		result, err := s.CalculateFraction(domain.FractionInput{
			Left:      domain.FractionOperand{Num: 3, Den: 4},
			Right:     domain.FractionOperand{Text: "1/2"},
			Operation: tc.op,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.mixed, result.Mixed, tc.op)
		assert.Nil(t, result.Validation, tc.op)
	}
}

func TestCalculateFraction_FromJSON(t *testing.T) {
	s := NewMathService(zap.NewNop())

	var input domain.FractionInput
	require.NoError(t, json.Unmarshal([]byte(`{"left":"-1 1/2","right":{"num":2,"den":-8},"operation":"+"}`), &input))

	result, err := s.CalculateFraction(input)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), result.Num)
	assert.Equal(t, int64(4), result.Den)
	assert.Equal(t, "-7/4", result.Simplified)
	assert.Equal(t, "-1 3/4", result.Mixed)
	assert.Equal(t, -1.75, result.Decimal)
}

func TestCalculateFraction_ZeroDenominator(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateFraction(domain.FractionInput{
		Left:      domain.FractionOperand{Num: 1, Den: 0},
		Right:     domain.FractionOperand{Num: 1, Den: 2},
		Operation: "add",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Validation, "left")
	assert.Equal(t, "0", result.Simplified)

	result, err = s.CalculateFraction(domain.FractionInput{
		Left:      domain.FractionOperand{Num: 1, Den: 2},
		Right:     domain.FractionOperand{Num: 0, Den: 3},
		Operation: "divide",
	})
	require.NoError(t, err)
	assert.Equal(t, "cannot divide by zero", result.Validation["right"])
}

func TestCalculateFraction_OverflowIsAdvisory(t *testing.T) {
	s := NewMathService(zap.NewNop())

	cases := []domain.FractionInput{
		{
			Left:      domain.FractionOperand{Num: 1, Den: 1 << 32},
			Right:     domain.FractionOperand{Num: 1, Den: 1 << 32},
			Operation: "multiply",
		},
		{
			Left:      domain.FractionOperand{Num: 3037000500, Den: 1},
			Right:     domain.FractionOperand{Num: 3037000500, Den: 1},
			Operation: "multiply",
		},
	}
	for _, in := range cases {
		var result domain.FractionResult
		require.NotPanics(t, func() {
			var err error
			result, err = s.CalculateFraction(in)
			require.NoError(t, err)
		})
		assert.Equal(t, int64(0), result.Num)
		assert.Equal(t, int64(1), result.Den)
		assert.Equal(t, "0", result.Mixed)
		assert.Contains(t, result.Validation, "result")
	}
}

func TestCalculateFraction_Simplify(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateFraction(domain.FractionInput{
		Left:      domain.FractionOperand{Num: 18, Den: 24},
		Operation: "simplify",
	})
	require.NoError(t, err)
	assert.Equal(t, "3/4", result.Simplified)
	assert.Nil(t, result.Validation)
}

func TestCalculateCombinatorics(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateCombinatorics(domain.CombinatoricsInput{N: 10, R: 3})
	require.NoError(t, err)
	assert.Equal(t, 720.0, result.Permutations)
	assert.Equal(t, 120.0, result.Combinations)
	assert.Contains(t, result.Summary, "C(10,3) = 120")
}

func TestCalculateCombinatorics_Caps(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateCombinatorics(domain.CombinatoricsInput{N: 500, R: 2})
	require.NoError(t, err)
	assert.InEpsilon(t, 170.0*169, result.Permutations, 1e-9)
	assert.Contains(t, result.Validation, "n")

	result, err = s.CalculateCombinatorics(domain.CombinatoricsInput{N: 3, R: 5})
	require.NoError(t, err)
	assert.Zero(t, result.Combinations)
	assert.Contains(t, result.Validation, "r")
}

func TestCalculateStatistics(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateStatistics(domain.StatisticsInput{
		Text: "10, 20, 30 40;50\n60 70 80 90 100",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result.Count)
	assert.Equal(t, 55.0, result.Mean)
	assert.Equal(t, 55.0, result.Median)
	assert.Equal(t, 90.0, result.Range)
	assert.InDelta(t, 28.72, result.PopStdDev, 0.005)
	assert.Nil(t, result.Validation)
}

func TestCalculateStatistics_Degenerate(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateStatistics(domain.StatisticsInput{Text: "abc"})
	require.NoError(t, err)
	assert.Zero(t, result.Count)
	assert.Contains(t, result.Validation, "text")
	assert.Contains(t, result.Validation, "values")

	result, err = s.CalculateStatistics(domain.StatisticsInput{Values: []float64{4}})
	require.NoError(t, err)
	assert.Zero(t, result.SampleVariance)
	assert.Contains(t, result.Validation, "sample_variance")

	_, err = s.CalculateStatistics(domain.StatisticsInput{Values: make([]float64, MaxDatasetSize+1)})
	assert.Error(t, err)
}

func TestCalculateStatistics_RejectsNonFiniteTokens(t *testing.T) {
	s := NewMathService(zap.NewNop())

	var result domain.StatisticsResult
	require.NotPanics(t, func() {
		var err error
		result, err = s.CalculateStatistics(domain.StatisticsInput{Text: "1, 2, NaN Inf -infinity"})
		require.NoError(t, err)
	})
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 1.5, result.Mean)
	assert.Contains(t, result.Validation["text"], "NaN")

	_, err := json.Marshal(result)
	assert.NoError(t, err)
}

func TestCalculateStatistics_HugeValuesStayFinite(t *testing.T) {
	s := NewMathService(zap.NewNop())

	result, err := s.CalculateStatistics(domain.StatisticsInput{Values: []float64{math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64}})
	require.NoError(t, err)
	assert.Zero(t, result.Range)
	assert.Equal(t, msgUndefined, result.Validation["range"])

	_, err = json.Marshal(result)
	assert.NoError(t, err)
	assert.NotEmpty(t, result.Summary)
}
