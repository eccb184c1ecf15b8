package service

import "rehab-roi/domain"

// CalculateROI runs the full return analysis for one input: investment and
// profit under the chosen strategy, cash flow, scenario fan-out, risk grades
// and insights.
func CalculateROI(input domain.ROIInput) (domain.ROIResult, error) {
	input, err := ValidateROIInput(input)
	if err != nil {
		return domain.ROIResult{}, err
	}

	months := float64(input.HoldPeriodMonths)
	e := evaluate(input, months)
	roi := roiPercentage(e.netProfit, e.totalInvestment)

	result := domain.ROIResult{
		TotalInvestment: e.totalInvestment,
		NetProfit:       e.netProfit,
		ROIPercentage:   roi,
		AnnualizedROI:   annualizedROI(input.Strategy, roi, months),
		CashFlow:        e.cashFlow,
		BreakEvenMonths: BreakEvenMonths(e.totalInvestment, e.cashFlow.Monthly),
		Scenarios:       GenerateScenarios(input),
	}

	if input.Strategy == domain.StrategyRental {
		capRate := e.cashFlow.Annual / e.totalInvestment * 100
		result.CapRate = &capRate
	}
	if input.DownPayment > 0 {
		coc := e.cashFlow.Annual / input.DownPayment * 100
		result.CashOnCashReturn = &coc
	}

	result.RiskFactors = AssessRisk(input, roi)
	result.Recommendations, result.Warnings = GenerateInsights(input, roi, result.RiskFactors)

	return result, nil
}
