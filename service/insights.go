package service

import (
	"fmt"

	"rehab-roi/domain"
)

const (
	maxFlipMonths        = 9
	lowRentToPricePct    = 1.0
	strongRentToPricePct = 2.0
	heavyRehabRatio      = 0.7
	thinEquityRatio      = 0.2
	strongEquityRatio    = 0.4
)

// GenerateInsights applies the rule set to a validated input and its ROI and
// risk grades. Recommendations and warnings are never nil.
func GenerateInsights(input domain.ROIInput, roi float64, risk domain.RiskFactors) (recommendations, warnings []string) {
	recommendations = []string{}
	warnings = []string{}

	switch {
	case roi > 25:
		recommendations = append(recommendations, fmt.Sprintf("Excellent return: %.1f%% ROI clears the 25%% target for this deal", roi))
	case roi > 15:
		recommendations = append(recommendations, fmt.Sprintf("Good return: %.1f%% ROI is solid for a %s", roi, input.Strategy))
	case roi > 8:
		recommendations = append(recommendations, fmt.Sprintf("Moderate return of %.1f%%: negotiate the purchase price or trim rehab scope to improve margins", roi))
	default:
		warnings = append(warnings, fmt.Sprintf("Low return of %.1f%% may not justify the capital and risk involved", roi))
	}

	switch input.Strategy {
	case domain.StrategyFlip:
		if input.HoldPeriodMonths > maxFlipMonths {
			warnings = append(warnings, fmt.Sprintf("A %d-month flip carries extra holding costs and market exposure; aim for %d months or less", input.HoldPeriodMonths, maxFlipMonths))
		}
	case domain.StrategyRental:
		ratio := input.MonthlyRent / input.PurchasePrice * 100
		if ratio < lowRentToPricePct {
			warnings = append(warnings, fmt.Sprintf("Rent-to-price ratio of %.2f%% is below the 1%% rule; cash flow may be thin", ratio))
		} else if ratio > strongRentToPricePct {
			recommendations = append(recommendations, fmt.Sprintf("Rent-to-price ratio of %.2f%% is above 2%%, strong rental cash flow potential", ratio))
		}
	}

	if risk.OverallRisk == domain.RiskHigh {
		warnings = append(warnings, "Overall risk is high: budget extra contingency and complete due diligence before committing")
	}

	if input.TotalRehabCost/input.PurchasePrice > heavyRehabRatio {
		warnings = append(warnings, "Rehab budget exceeds 70% of the purchase price; verify contractor bids and scope")
	}

	equity := (input.ARV - input.PurchasePrice - input.TotalRehabCost) / input.ARV
	if equity < thinEquityRatio {
		warnings = append(warnings, fmt.Sprintf("Equity position of %.0f%% of ARV leaves little margin for error", equity*100))
	} else if equity > strongEquityRatio {
		recommendations = append(recommendations, fmt.Sprintf("Strong equity position of %.0f%% of ARV", equity*100))
	}

	return recommendations, warnings
}
