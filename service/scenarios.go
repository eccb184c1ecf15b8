package service

import "rehab-roi/domain"

type scenarioPreset struct {
	arvFactor      float64
	rehabFactor    float64
	timelineFactor float64
	probability    float64
}

var (
	conservativePreset = scenarioPreset{arvFactor: 0.9, rehabFactor: 1.2, timelineFactor: 1.3, probability: 0.2}
	realisticPreset    = scenarioPreset{arvFactor: 1.0, rehabFactor: 1.0, timelineFactor: 1.0, probability: 0.6}
	optimisticPreset   = scenarioPreset{arvFactor: 1.1, rehabFactor: 0.9, timelineFactor: 0.8, probability: 0.2}
)

// GenerateScenarios fans a validated input out into conservative, realistic
// and optimistic cases. Each case is re-evaluated with its adjusted ARV,
// rehab cost and timeline.
func GenerateScenarios(input domain.ROIInput) domain.Scenarios {
	return domain.Scenarios{
		Conservative: buildScenario(input, conservativePreset),
		Realistic:    buildScenario(input, realisticPreset),
		Optimistic:   buildScenario(input, optimisticPreset),
	}
}

func buildScenario(input domain.ROIInput, p scenarioPreset) domain.ROIScenario {
	adjusted := input
	adjusted.ARV = input.ARV * p.arvFactor
	adjusted.TotalRehabCost = input.TotalRehabCost * p.rehabFactor
	timeline := float64(input.HoldPeriodMonths) * p.timelineFactor

	e := evaluate(adjusted, timeline)

	return domain.ROIScenario{
		ARV:            adjusted.ARV,
		RehabCost:      adjusted.TotalRehabCost,
		TimelineMonths: timeline,
		HoldingCosts:   e.holdingCosts,
		NetProfit:      e.netProfit,
		ROIPercentage:  roiPercentage(e.netProfit, e.totalInvestment),
		Probability:    p.probability,
	}
}
