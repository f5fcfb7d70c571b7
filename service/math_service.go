package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"calc-api/domain"
	"calc-api/formula"
)

type MathService struct {
	logger *zap.Logger
}

func NewMathService(logger *zap.Logger) *MathService {
	return &MathService{logger: logger.Named("math")}
}

var fractionOps = map[string]string{
	"add": "add", "+": "add",
	"subtract": "subtract", "-": "subtract",
	"multiply": "multiply", "*": "multiply", "x": "multiply",
	"divide": "divide", "/": "divide",
	"simplify": "simplify",
}

func operand(val domain.Validation, field string, o domain.FractionOperand) (formula.Fraction, bool) {
	var (
		f   formula.Fraction
		err error
	)
	if o.Text != "" {
		f, err = formula.ParseFraction(o.Text)
	} else {
		f, err = formula.NewFraction(o.Num, o.Den)
	}
	if err != nil {
		val[field] = err.Error()
		return formula.Fraction{}, false
	}
	return f, true
}

// CalculateFraction performs exact rational arithmetic on two operands, or
// simplifies the left one.
func (s *MathService) CalculateFraction(
	input domain.FractionInput,
) (domain.FractionResult, error) {

	val := domain.Validation{}
	op, known := fractionOps[strings.ToLower(strings.TrimSpace(input.Operation))]
	if !known {
		val["operation"] = "operation must be add, subtract, multiply, divide or simplify"
	}

	zero := formula.Fraction{Num: 0, Den: 1}
	res := zero

	left, okLeft := operand(val, "left", input.Left)
	right, okRight := formula.Fraction{}, true
	if op != "simplify" {
		right, okRight = operand(val, "right", input.Right)
	}

	if known && okLeft && okRight {
		var err error
		switch op {
		case "add":
			res, err = left.Add(right)
		case "subtract":
			res, err = left.Sub(right)
		case "multiply":
			res, err = left.Mul(right)
		case "divide":
			res, err = left.Div(right)
		case "simplify":
			res = left
		}
		switch {
		case errors.Is(err, formula.ErrZeroDenominator):
			val["right"] = "cannot divide by zero"
		case err != nil:
			val["result"] = err.Error()
		}
		if err != nil {
			res = zero
		}
	}

	result := domain.FractionResult{
		Num:        res.Num,
		Den:        res.Den,
		Simplified: res.String(),
		Mixed:      res.MixedString(),
		Decimal:    roundTo(res.Float(), 6),
	}
	result.Presentation = present(val, summary("Fraction",
		"Result: "+result.Simplified,
		"Mixed number: "+result.Mixed,
		"Decimal: "+trimFloat(result.Decimal),
	))
	return result, nil
}

// CalculateCombinatorics returns P(n,r) and C(n,r). n above 170 is capped.
func (s *MathService) CalculateCombinatorics(
	input domain.CombinatoricsInput,
) (domain.CombinatoricsResult, error) {

	val := domain.Validation{}
	n, r := input.N, input.R
	if n < 0 {
		val["n"] = "n " + msgNotNegative
	}
	if r < 0 {
		val["r"] = "r " + msgNotNegative
	}
	if n > MaxCombinatoricsN {
		val["n"] = fmt.Sprintf("n is capped at %d", MaxCombinatoricsN)
		n = MaxCombinatoricsN
	}
	if r > n && n >= 0 {
		val["r"] = "r cannot be greater than n"
	}

	result := domain.CombinatoricsResult{
		Permutations: finite(val, "permutations", formula.Permutations(n, r)),
		Combinations: finite(val, "combinations", formula.Combinations(n, r)),
	}
	result.Presentation = present(val, summary("Permutations and combinations",
		fmt.Sprintf("P(%d,%d) = %s", n, r, formatCount(result.Permutations)),
		fmt.Sprintf("C(%d,%d) = %s", n, r, formatCount(result.Combinations)),
	))
	return result, nil
}

// parseDataset splits free text on commas, semicolons and whitespace.
// Tokens that are not numbers are returned separately.
func parseDataset(text string) (values []float64, rejected []string) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			rejected = append(rejected, f)
			continue
		}
		values = append(values, v)
	}
	return values, rejected
}

// CalculateStatistics describes a dataset.
func (s *MathService) CalculateStatistics(
	input domain.StatisticsInput,
) (domain.StatisticsResult, error) {

	val := domain.Validation{}
	values := input.Values
	if input.Text != "" {
		parsed, rejected := parseDataset(input.Text)
		values = append(values, parsed...)
		if len(rejected) > 0 {
			val["text"] = "ignored non-numeric values: " + strings.Join(rejected, ", ")
		}
	}
	if len(values) > MaxDatasetSize {
		return domain.StatisticsResult{}, fmt.Errorf("dataset exceeds the maximum of %d values", MaxDatasetSize)
	}
	if len(values) == 0 {
		val["values"] = "enter at least one number"
	}

	d := formula.Describe(values)
	stat := func(field string, v float64) float64 {
		return roundTo(finite(val, field, v), 4)
	}
	result := domain.StatisticsResult{
		Count:          d.Count,
		Sum:            stat("sum", d.Sum),
		Mean:           stat("mean", d.Mean),
		Median:         stat("median", d.Median),
		Modes:          d.Modes,
		Min:            d.Min,
		Max:            d.Max,
		Range:          stat("range", d.Range),
		PopVariance:    stat("population_variance", d.PopVariance),
		PopStdDev:      stat("population_variance", d.PopStdDev),
		SampleVariance: stat("sample_variance", d.SampleVariance),
		SampleStdDev:   stat("sample_variance", d.SampleStdDev),
	}
	if d.Count == 1 {
		val["sample_variance"] = "sample variance needs at least two values"
	}

	result.Presentation = present(val, summary("Statistics",
		fmt.Sprintf("Count: %d", result.Count),
		"Mean: "+trimFloat(result.Mean),
		"Median: "+trimFloat(result.Median),
		"Range: "+trimFloat(result.Range),
		"Standard deviation (population): "+trimFloat(result.PopStdDev),
		"Standard deviation (sample): "+trimFloat(result.SampleStdDev),
	))
	return result, nil
}
