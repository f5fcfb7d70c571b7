package formula

import "math"

// MaxFactorial is the largest n whose factorial fits in a float64.
const MaxFactorial = 170

// Factorial computes n! directly. Negative n gives NaN and n above
// MaxFactorial gives +Inf.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n > MaxFactorial {
		return math.Inf(1)
	}
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}
	return f
}

// Permutations is P(n,r) = n!/(n−r)!.
func Permutations(n, r int) float64 {
	if r < 0 || r > n {
		return 0
	}
	return Factorial(n) / Factorial(n-r)
}

// Combinations is C(n,r) = n!/(r!(n−r)!).
func Combinations(n, r int) float64 {
	if r < 0 || r > n {
		return 0
	}
	return Factorial(n) / (Factorial(r) * Factorial(n-r))
}
