package service

import "rehab-roi/domain"

var riskScores = map[domain.RiskLevel]float64{
	domain.RiskLow:    1,
	domain.RiskMedium: 2,
	domain.RiskHigh:   3,
}

var liquidityByStrategy = map[domain.Strategy]domain.RiskLevel{
	domain.StrategyFlip:      domain.RiskLow,
	domain.StrategyRental:    domain.RiskHigh,
	domain.StrategyWholetail: domain.RiskMedium,
	domain.StrategyAirbnb:    domain.RiskMedium,
}

const (
	marketRiskWeight    = 0.4
	liquidityRiskWeight = 0.3
	executionRiskWeight = 0.3
)

// AssessRisk grades market, liquidity and execution risk and combines them
// into a weighted overall grade.
func AssessRisk(input domain.ROIInput, roi float64) domain.RiskFactors {
	market := marketRisk(roi)
	liquidity := liquidityByStrategy[input.Strategy]
	execution := executionRisk(input.TotalRehabCost / input.PurchasePrice)

	score := riskScores[market]*marketRiskWeight +
		riskScores[liquidity]*liquidityRiskWeight +
		riskScores[execution]*executionRiskWeight

	return domain.RiskFactors{
		MarketRisk:    market,
		LiquidityRisk: liquidity,
		ExecutionRisk: execution,
		OverallRisk:   overallRisk(score),
	}
}

func marketRisk(roi float64) domain.RiskLevel {
	switch {
	case roi < 10:
		return domain.RiskHigh
	case roi < 20:
		return domain.RiskMedium
	}
	return domain.RiskLow
}

func executionRisk(rehabRatio float64) domain.RiskLevel {
	switch {
	case rehabRatio > 0.5:
		return domain.RiskHigh
	case rehabRatio > 0.25:
		return domain.RiskMedium
	}
	return domain.RiskLow
}

func overallRisk(score float64) domain.RiskLevel {
	switch {
	case score <= 1.5:
		return domain.RiskLow
	case score <= 2.5:
		return domain.RiskMedium
	}
	return domain.RiskHigh
}
