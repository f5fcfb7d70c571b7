// Package formula holds the closed-form kernels behind every calculator.
//
// Functions here are pure: they never validate, clamp or round beyond what
// the formula itself requires, so invalid domains surface as NaN or ±Inf.
// Callers in package service decide how to present those.
package formula

import "math"

// PeriodicRate converts an annual percentage rate into the rate per period
// for the given number of periods per year.
func PeriodicRate(annualRate float64, periodsPerYear int) float64 {
	return annualRate / 100 / float64(periodsPerYear)
}

// Payment returns the level periodic payment that amortizes principal over n
// periods at periodic rate i. A non-positive principal or period count
// yields 0.
func Payment(principal, i float64, n int) float64 {
	if principal <= 0 || n <= 0 {
		return 0
	}
	if i == 0 {
		return principal / float64(n)
	}
	growth := math.Pow(1+i, float64(n))
	return principal * i * growth / (growth - 1)
}

// ScheduleRow is one period of an amortization schedule.
type ScheduleRow struct {
	Period    int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Schedule splits every payment into interest and principal. The last row
// pays off whatever balance remains so it always ends at zero.
func Schedule(principal, i float64, n int) []ScheduleRow {
	if principal <= 0 || n <= 0 {
		return nil
	}

	pmt := Payment(principal, i, n)
	rows := make([]ScheduleRow, 0, n)
	balance := principal

	for period := 1; period <= n; period++ {
		interest := balance * i
		toPrincipal := pmt - interest
		payment := pmt
		if period == n || toPrincipal > balance {
			toPrincipal = balance
			payment = balance + interest
		}
		balance -= toPrincipal

		rows = append(rows, ScheduleRow{
			Period:    period,
			Payment:   payment,
			Principal: toPrincipal,
			Interest:  interest,
			Balance:   math.Max(0, balance),
		})
	}

	return rows
}
