package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FractionOperand accepts either {"num":1,"den":2} or a string like "1 1/2".
type FractionOperand struct {
	Num  int64  `json:"num"`
	Den  int64  `json:"den"`
	Text string `json:"-"`
}

func (o *FractionOperand) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &o.Text)
	}
	type plain FractionOperand
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("fraction operand: %w", err)
	}
	*o = FractionOperand(p)
	return nil
}

type FractionInput struct {
	Left      FractionOperand `json:"left"`
	Right     FractionOperand `json:"right"`
	Operation string          `json:"operation"`
}

type FractionResult struct {
	Num        int64   `json:"num"`
	Den        int64   `json:"den"`
	Simplified string  `json:"simplified"`
	Mixed      string  `json:"mixed"`
	Decimal    float64 `json:"decimal"`

	Presentation
}

type CombinatoricsInput struct {
	N int `json:"n"`
	R int `json:"r"`
}

type CombinatoricsResult struct {
	Permutations float64 `json:"permutations"`
	Combinations float64 `json:"combinations"`

	Presentation
}

// StatisticsInput takes either a numeric array or free text such as
// "1, 2 3\n4".
type StatisticsInput struct {
	Values []float64 `json:"values,omitempty"`
	Text   string    `json:"text,omitempty"`
}

type StatisticsResult struct {
	Count          int       `json:"count"`
	Sum            float64   `json:"sum"`
	Mean           float64   `json:"mean"`
	Median         float64   `json:"median"`
	Modes          []float64 `json:"modes,omitempty"`
	Min            float64   `json:"min"`
	Max            float64   `json:"max"`
	Range          float64   `json:"range"`
	PopVariance    float64   `json:"population_variance"`
	PopStdDev      float64   `json:"population_std_dev"`
	SampleVariance float64   `json:"sample_variance"`
	SampleStdDev   float64   `json:"sample_std_dev"`

	Presentation
}
