package service

import (
	"math"

	"rehab-roi/domain"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkAmount(field string, v float64, positive bool) error {
	if !finite(v) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative")
	}
	if positive && v == 0 {
		return invalid(field, "must be greater than zero")
	}
	if v > MaxPropertyAmount {
		return invalid(field, "exceeds the maximum of $%.2f", MaxPropertyAmount)
	}
	return nil
}

func checkPercent(field string, v, max float64) error {
	if !finite(v) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 || v > max {
		return invalid(field, "must be between 0 and %.0f", max)
	}
	return nil
}

// holdPeriodFor resolves the hold period, substituting the strategy default
// when months is zero.
func holdPeriodFor(strategy domain.Strategy, months int) int {
	if months > 0 {
		return months
	}
	if strategy == domain.StrategyRental {
		return DefaultRentalHoldPeriodMonths
	}
	return DefaultHoldPeriodMonths
}

// ValidateROIInput rejects inputs that would make the engine produce
// non-finite numbers and returns the input with its hold period resolved.
func ValidateROIInput(input domain.ROIInput) (domain.ROIInput, error) {
	if !input.Strategy.Valid() {
		return input, invalid("strategy", "unknown strategy %q", input.Strategy)
	}

	amounts := []struct {
		field    string
		value    float64
		positive bool
	}{
		{"purchasePrice", input.PurchasePrice, true},
		{"arv", input.ARV, true},
		{"totalRehabCost", input.TotalRehabCost, false},
		{"monthlyRent", input.MonthlyRent, false},
		{"downPayment", input.DownPayment, false},
		{"loanAmount", input.LoanAmount, false},
	}
	for _, a := range amounts {
		if err := checkAmount(a.field, a.value, a.positive); err != nil {
			return input, err
		}
	}

	percents := []struct {
		field string
		value float64
		max   float64
	}{
		{"vacancyPct", input.VacancyPct, 100},
		{"propertyManagementPct", input.PropertyManagementPct, 100},
		{"appreciationRatePct", input.AppreciationRatePct, 100},
		{"interestRatePct", input.InterestRatePct, MaxInterestRate},
	}
	for _, p := range percents {
		if err := checkPercent(p.field, p.value, p.max); err != nil {
			return input, err
		}
	}

	if input.HoldPeriodMonths < 0 || input.HoldPeriodMonths > MaxHoldPeriodMonths {
		return input, invalid("holdPeriodMonths", "must be between 1 and %d", MaxHoldPeriodMonths)
	}
	input.HoldPeriodMonths = holdPeriodFor(input.Strategy, input.HoldPeriodMonths)

	return input, nil
}
