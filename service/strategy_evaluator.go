package service

import (
	"math"

	"rehab-roi/domain"
)

const (
	wholetailPriceFactor   = 0.9
	wholetailSellingFactor = 0.5

	airbnbRentMultiplier    = 1.5
	airbnbVacancyMultiplier = 1.5
	airbnbManagementPct     = 15.0
)

// evaluation holds the figures a strategy evaluator works from and fills in.
type evaluation struct {
	holdingCosts    float64
	totalInvestment float64
	sellingCosts    float64
	netProfit       float64
	cashFlow        domain.CashFlow
}

type strategyEvaluator func(input domain.ROIInput, e *evaluation, months int)

var evaluators = map[domain.Strategy]strategyEvaluator{
	domain.StrategyFlip:      evaluateFlip,
	domain.StrategyRental:    evaluateRental,
	domain.StrategyWholetail: evaluateWholetail,
	domain.StrategyAirbnb:    evaluateAirbnb,
}

// evaluate computes the investment and net profit of a validated input held
// for months. Fractional months stretch the holding costs; income is
// projected over whole months.
func evaluate(input domain.ROIInput, months float64) evaluation {
	e := evaluation{
		holdingCosts: HoldingCosts(input.PurchasePrice, input.LoanAmount, input.InterestRatePct, months),
		sellingCosts: SellingCosts(input.ARV),
	}
	e.totalInvestment = input.PurchasePrice +
		input.TotalRehabCost +
		AcquisitionCosts(input.PurchasePrice) +
		e.holdingCosts +
		input.DownPayment

	evaluators[input.Strategy](input, &e, int(math.Ceil(months)))
	return e
}

func exitProfit(input domain.ROIInput, e *evaluation) float64 {
	return input.ARV - e.totalInvestment - e.sellingCosts
}

func lastCumulative(cf domain.CashFlow) float64 {
	if len(cf.Cumulative) == 0 {
		return 0
	}
	return cf.Cumulative[len(cf.Cumulative)-1]
}

func evaluateFlip(input domain.ROIInput, e *evaluation, _ int) {
	e.cashFlow = ProjectCashFlow(0, 0)
	e.netProfit = exitProfit(input, e)
}

// evaluateRental adds the accumulated rent to the exit profit at the end of
// the hold.
func evaluateRental(input domain.ROIInput, e *evaluation, months int) {
	monthly := RentalMonthlyNetIncome(input.MonthlyRent, input.ARV, input.VacancyPct, input.PropertyManagementPct)
	e.cashFlow = ProjectCashFlow(monthly, months)
	e.netProfit = lastCumulative(e.cashFlow) + exitProfit(input, e)
}

func evaluateWholetail(input domain.ROIInput, e *evaluation, _ int) {
	e.cashFlow = ProjectCashFlow(0, 0)
	e.netProfit = input.ARV*wholetailPriceFactor - e.totalInvestment - e.sellingCosts*wholetailSellingFactor
}

// evaluateAirbnb counts only operating cash flow; the property is not sold.
func evaluateAirbnb(input domain.ROIInput, e *evaluation, months int) {
	vacancy := math.Min(input.VacancyPct*airbnbVacancyMultiplier, 100)
	monthly := RentalMonthlyNetIncome(input.MonthlyRent*airbnbRentMultiplier, input.ARV, vacancy, airbnbManagementPct)
	e.cashFlow = ProjectCashFlow(monthly, months)
	e.netProfit = lastCumulative(e.cashFlow)
}

func roiPercentage(netProfit, totalInvestment float64) float64 {
	return netProfit / totalInvestment * 100
}

func annualizedROI(strategy domain.Strategy, roi, months float64) float64 {
	if strategy == domain.StrategyFlip {
		return roi * 12 / months
	}
	return roi / (months / 12)
}
