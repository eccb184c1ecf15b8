package service

import (
	"fmt"
	"math"

	"rehab-roi/domain"
)

// RentalMonthlyNetIncome is the monthly net of a rented property after
// vacancy, management (on collected rent), maintenance, tax and insurance.
func RentalMonthlyNetIncome(rent, propertyValue, vacancyPct, mgmtPct float64) float64 {
	collected := rent * (1 - vacancyPct/100)
	management := collected * mgmtPct / 100
	maintenance := propertyValue * MaintenanceRate / 12
	tax := propertyValue * PropertyTaxRate / 12
	insurance := propertyValue * InsuranceRate / 12
	return collected - management - maintenance - tax - insurance
}

// ProjectCashFlow spreads a constant monthly net income over months.
func ProjectCashFlow(monthlyNetIncome float64, months int) domain.CashFlow {
	cumulative := make([]float64, 0, months)
	running := 0.0
	for i := 0; i < months; i++ {
		running += monthlyNetIncome
		cumulative = append(cumulative, running)
	}
	return domain.CashFlow{
		Monthly:    monthlyNetIncome,
		Annual:     monthlyNetIncome * 12,
		Cumulative: cumulative,
	}
}

// operatingIncome is the gross monthly income a strategy collects once the
// renovation is done.
func operatingIncome(input domain.ROIInput) float64 {
	switch input.Strategy {
	case domain.StrategyRental:
		return input.MonthlyRent
	case domain.StrategyAirbnb:
		return input.MonthlyRent * airbnbRentMultiplier
	}
	return 0
}

// ProjectDetailedCashFlow produces a month-by-month projection: a renovation
// phase of ceil(hold/2) months carrying the rehab spend, then an operating
// phase collecting income net of a flat expense ratio.
func ProjectDetailedCashFlow(input domain.ROIInput) ([]domain.CashFlowProjection, error) {
	input, err := ValidateROIInput(input)
	if err != nil {
		return nil, err
	}

	months := input.HoldPeriodMonths
	renovationMonths := int(math.Ceil(float64(months) / 2))
	monthlyRehab := input.TotalRehabCost / float64(renovationMonths)
	monthlyHolding := MonthlyHoldingCost(input.PurchasePrice, input.LoanAmount, input.InterestRatePct)
	income := operatingIncome(input)

	projections := make([]domain.CashFlowProjection, 0, months)
	cumulative := 0.0
	for month := 1; month <= months; month++ {
		row := domain.CashFlowProjection{Month: month}

		if month <= renovationMonths {
			row.Expenses = monthlyRehab + monthlyHolding
			row.Description = fmt.Sprintf("Renovation month %d of %d", month, renovationMonths)
		} else {
			row.Income = income
			row.Expenses = monthlyHolding + income*OperatingExpenseRatio
			if income > 0 {
				row.Description = fmt.Sprintf("Operating month %d: %s income", month-renovationMonths, input.Strategy)
			} else {
				row.Description = fmt.Sprintf("Holding month %d: listed for sale", month-renovationMonths)
			}
		}

		row.NetCashFlow = row.Income - row.Expenses
		cumulative += row.NetCashFlow
		row.CumulativeCashFlow = cumulative
		projections = append(projections, row)
	}

	return projections, nil
}

// BreakEvenMonths returns the months needed for cash flow to repay the
// investment, or nil when monthly cash flow is not positive.
func BreakEvenMonths(totalInvestment, monthlyCashFlow float64) *int {
	if monthlyCashFlow <= 0 {
		return nil
	}
	months := int(math.Ceil(totalInvestment / monthlyCashFlow))
	return &months
}
