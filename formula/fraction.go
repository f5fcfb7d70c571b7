package formula

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// ErrZeroDenominator is returned when a fraction would have a zero denominator.
var ErrZeroDenominator = errors.New("denominator cannot be zero")

// ErrOverflow is returned when an exact result does not fit in int64.
var ErrOverflow = errors.New("fraction is too large to represent exactly")

// Fraction is an exact rational number. The zero value is 0/0 and invalid;
// use NewFraction.
type Fraction struct {
	Num int64
	Den int64
}

// GCD is the Euclidean greatest common divisor, always non-negative.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NewFraction builds num/den in lowest terms with a positive denominator.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{Num: num, Den: den}.Simplify(), nil
}

// Simplify divides out the GCD and moves the sign to the numerator.
func (f Fraction) Simplify() Fraction {
	if f.Den == 0 {
		return f
	}
	if f.Num == 0 {
		return Fraction{Num: 0, Den: 1}
	}
	g := GCD(f.Num, f.Den)
	num, den := f.Num/g, f.Den/g
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction{Num: num, Den: den}
}

// Add, Sub, Mul and Div reduce crosswise before multiplying and fail with
// ErrOverflow when the exact result does not fit in int64.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	if f.Den == 0 || o.Den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	g := GCD(f.Den, o.Den)
	left, ok1 := mulInt64(f.Num, o.Den/g)
	right, ok2 := mulInt64(o.Num, f.Den/g)
	num, ok3 := addInt64(left, right)
	den, ok4 := mulInt64(f.Den, o.Den/g)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{Num: num, Den: den}.Simplify(), nil
}

func (f Fraction) Sub(o Fraction) (Fraction, error) {
	if o.Num == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}
	return f.Add(Fraction{Num: -o.Num, Den: o.Den})
}

func (f Fraction) Mul(o Fraction) (Fraction, error) {
	if f.Den == 0 || o.Den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	g1 := GCD(f.Num, o.Den)
	g2 := GCD(o.Num, f.Den)
	num, ok1 := mulInt64(f.Num/g1, o.Num/g2)
	den, ok2 := mulInt64(f.Den/g2, o.Den/g1)
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{Num: num, Den: den}.Simplify(), nil
}

// Div returns f ÷ o, failing when o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.Num == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return f.Mul(Fraction{Num: o.Den, Den: o.Num})
}

// mulInt64 multiplies a and b, reporting false when the product leaves
// (MinInt64, MaxInt64]. MinInt64 is excluded so results can always be negated.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(absInt64(a)), uint64(absInt64(b)))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	p := int64(lo)
	if (a < 0) != (b < 0) {
		p = -p
	}
	return p, true
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) || s == math.MinInt64 {
		return 0, false
	}
	return s, true
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Float returns the decimal value.
func (f Fraction) Float() float64 {
	return float64(f.Num) / float64(f.Den)
}

// Mixed splits an improper fraction into a whole part and a proper remainder.
// The sign is carried by the whole part, or by the numerator when whole is 0.
func (f Fraction) Mixed() (whole, num, den int64) {
	s := f.Simplify()
	if s.Den == 0 {
		return 0, 0, 0
	}
	whole = s.Num / s.Den
	num = s.Num % s.Den
	if whole != 0 && num < 0 {
		num = -num
	}
	return whole, num, s.Den
}

func (f Fraction) String() string {
	if f.Den == 1 {
		return strconv.FormatInt(f.Num, 10)
	}
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// MixedString renders f as "1 1/2", "-2 3/4", "3/4" or "5".
func (f Fraction) MixedString() string {
	whole, num, den := f.Mixed()
	switch {
	case num == 0:
		return strconv.FormatInt(whole, 10)
	case whole == 0:
		return fmt.Sprintf("%d/%d", num, den)
	default:
		return fmt.Sprintf("%d %d/%d", whole, num, den)
	}
}

// ParseFraction accepts "3/4", "-1 1/2" and plain integers. A sign may
// only lead the whole expression.
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, errors.New("empty fraction")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = strings.TrimSpace(s[1:])
	case '+':
		s = strings.TrimSpace(s[1:])
	}

	var whole int64
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
	case 2:
		w, err := parseUnsigned("whole part", parts[0])
		if err != nil {
			return Fraction{}, err
		}
		whole = w
		s = parts[1]
	default:
		return Fraction{}, fmt.Errorf("malformed fraction %q", s)
	}

	num, den := int64(0), int64(1)
	if a, b, found := strings.Cut(s, "/"); found {
		n, err := parseUnsigned("numerator", a)
		if err != nil {
			return Fraction{}, err
		}
		d, err := parseUnsigned("denominator", b)
		if err != nil {
			return Fraction{}, err
		}
		num, den = n, d
	} else {
		if len(parts) == 2 {
			return Fraction{}, fmt.Errorf("malformed fraction %q", s)
		}
		n, err := parseUnsigned("integer", s)
		if err != nil {
			return Fraction{}, err
		}
		num = n
	}

	if den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	scaled, ok1 := mulInt64(whole, den)
	num, ok2 := addInt64(num, scaled)
	if !ok1 || !ok2 {
		return Fraction{}, ErrOverflow
	}
	if neg {
		num = -num
	}
	return NewFraction(num, den)
}

// parseUnsigned reads a bare run of digits; signs are rejected.
func parseUnsigned(part, s string) (int64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", part, s, err)
	}
	return int64(v), nil
}
