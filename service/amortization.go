package service

import "math"

// MonthlyPayment returns the fixed payment that retires principal over
// termMonths at annualRatePct. It returns NaN for a non-positive term;
// callers validate the term first.
func MonthlyPayment(principal, annualRatePct float64, termMonths int) float64 {
	if termMonths <= 0 {
		return math.NaN()
	}
	n := float64(termMonths)
	r := annualRatePct / 100 / 12
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}
