package formula

import (
	"math"
	"slices"
)

// Summary holds descriptive statistics of a dataset.
type Summary struct {
	Count          int
	Sum            float64
	Mean           float64
	Median         float64
	Modes          []float64
	Min            float64
	Max            float64
	Range          float64
	PopVariance    float64
	PopStdDev      float64
	SampleVariance float64
	SampleStdDev   float64
}

// Describe computes a Summary. An empty dataset yields the zero Summary and a
// single value has NaN sample variance.
func Describe(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)

	n := len(sorted)
	var s Summary
	s.Count = n
	for _, v := range sorted {
		s.Sum += v
	}
	s.Mean = s.Sum / float64(n)

	if n%2 == 1 {
		s.Median = sorted[n/2]
	} else {
		s.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	s.Min, s.Max = sorted[0], sorted[n-1]
	s.Range = s.Max - s.Min
	s.Modes = modes(sorted)

	var sq float64
	for _, v := range sorted {
		d := v - s.Mean
		sq += d * d
	}
	s.PopVariance = sq / float64(n)
	s.PopStdDev = math.Sqrt(s.PopVariance)
	s.SampleVariance = sq / float64(n-1)
	s.SampleStdDev = math.Sqrt(s.SampleVariance)

	return s
}

// modes returns every value with the highest frequency, or nil when all
// values occur equally often.
func modes(sorted []float64) []float64 {
	best, run := 0, 0
	var out []float64
	for i := range sorted {
		if i > 0 && sorted[i] == sorted[i-1] {
			run++
		} else {
			run = 1
		}
		switch {
		case run > best:
			best = run
			out = []float64{sorted[i]}
		case run == best:
			out = append(out, sorted[i])
		}
	}
	if len(out) == countDistinct(sorted) {
		return nil
	}
	return out
}

func countDistinct(sorted []float64) int {
	n := 0
	for i := range sorted {
		if i == 0 || sorted[i] != sorted[i-1] {
			n++
		}
	}
	return n
}
