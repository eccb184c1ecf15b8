package service

import "rehab-roi/domain"

type financingPreset struct {
	name           string
	downPaymentPct float64
	ratePct        float64
	termMonths     int
}

var financingPresets = []financingPreset{
	{name: "cash", downPaymentPct: 100, ratePct: 0, termMonths: 0},
	{name: "conventional", downPaymentPct: 20, ratePct: 7.5, termMonths: 360},
	{name: "investment_loan", downPaymentPct: 25, ratePct: 8.0, termMonths: 360},
	{name: "hard_money", downPaymentPct: 30, ratePct: 12.0, termMonths: 24},
}

// CalculateFinancingScenarios prices the purchase and rehab under each
// financing preset. ROI impact is the profit after interest relative to the
// cash put down, or to the total cost when nothing is borrowed.
func CalculateFinancingScenarios(input domain.FinancingInput) ([]domain.FinancingScenario, error) {
	if err := checkAmount("purchasePrice", input.PurchasePrice, true); err != nil {
		return nil, err
	}
	if err := checkAmount("rehabCost", input.RehabCost, false); err != nil {
		return nil, err
	}
	if err := checkAmount("arv", input.ARV, true); err != nil {
		return nil, err
	}

	totalCost := input.PurchasePrice + input.RehabCost

	scenarios := make([]domain.FinancingScenario, 0, len(financingPresets))
	for _, p := range financingPresets {
		down := totalCost * p.downPaymentPct / 100
		loan := totalCost - down

		payment, interest := 0.0, 0.0
		if loan > 0 && p.termMonths > 0 {
			payment = MonthlyPayment(loan, p.ratePct, p.termMonths)
			interest = payment*float64(p.termMonths) - loan
		}

		profit := input.ARV - totalCost - interest
		base := totalCost
		if loan > 0 {
			base = down
		}

		scenarios = append(scenarios, domain.FinancingScenario{
			Name:            p.name,
			DownPaymentPct:  p.downPaymentPct,
			InterestRatePct: p.ratePct,
			TermMonths:      p.termMonths,
			DownPayment:     down,
			LoanAmount:      loan,
			MonthlyPayment:  payment,
			TotalInterest:   interest,
			LeverageRatio:   loan / totalCost,
			ROIImpact:       profit / base * 100,
		})
	}

	return scenarios, nil
}
