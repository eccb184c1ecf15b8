package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rehab-roi/domain"
)

// categoryMultipliers weights each renovation category's ROI impact by how
// much it matters to a strategy. Unknown categories weigh 1.0.
var categoryMultipliers = map[domain.Strategy]map[string]float64{
	domain.StrategyFlip: {
		"kitchen":     1.2,
		"bathroom":    1.15,
		"exterior":    1.3,
		"flooring":    1.1,
		"paint":       1.2,
		"landscaping": 1.15,
		"systems":     0.9,
	},
	domain.StrategyRental: {
		"kitchen":     1.0,
		"bathroom":    1.0,
		"exterior":    0.9,
		"flooring":    1.1,
		"paint":       1.0,
		"landscaping": 0.8,
		"systems":     1.2,
	},
	domain.StrategyWholetail: {
		"kitchen":     0.9,
		"bathroom":    0.9,
		"exterior":    1.2,
		"flooring":    1.0,
		"paint":       1.25,
		"landscaping": 1.1,
		"systems":     0.8,
	},
	domain.StrategyAirbnb: {
		"kitchen":     1.15,
		"bathroom":    1.2,
		"exterior":    1.0,
		"flooring":    1.05,
		"paint":       1.1,
		"landscaping": 1.1,
		"systems":     1.0,
	},
}

func categoryMultiplier(strategy domain.Strategy, category string) float64 {
	if m, ok := categoryMultipliers[strategy][strings.ToLower(category)]; ok {
		return m
	}
	return 1.0
}

// OptimizeRehabBudget ranks items by strategy-adjusted ROI per dollar and
// accepts them in order until the next one would overrun the budget. This
// is a greedy pass, not an exact knapsack: a smaller item ranked after the
// stopping point is never considered.
func OptimizeRehabBudget(input domain.BudgetInput) (domain.BudgetResult, error) {
	if err := checkAmount("totalBudget", input.TotalBudget, true); err != nil {
		return domain.BudgetResult{}, err
	}
	if !input.Strategy.Valid() {
		return domain.BudgetResult{}, invalid("strategy", "unknown strategy %q", input.Strategy)
	}
	if len(input.Items) > MaxBudgetItems {
		return domain.BudgetResult{}, invalid("items", "at most %d items are allowed", MaxBudgetItems)
	}

	ranked := make([]domain.RankedItem, 0, len(input.Items))
	for i, item := range input.Items {
		if err := checkAmount(fmt.Sprintf("items[%d].cost", i), item.Cost, true); err != nil {
			return domain.BudgetResult{}, err
		}
		if !finite(item.ROIImpact) {
			return domain.BudgetResult{}, invalid(fmt.Sprintf("items[%d].roiImpact", i), "must be a finite number")
		}

		multiplier := categoryMultiplier(input.Strategy, item.Category)
		adjusted := item.ROIImpact * multiplier
		ranked = append(ranked, domain.RankedItem{
			RenovationItem:     item,
			Multiplier:         multiplier,
			AdjustedROI:        adjusted,
			AdjustedEfficiency: adjusted / item.Cost,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedEfficiency > ranked[j].AdjustedEfficiency
	})

	budget := decimal.NewFromFloat(input.TotalBudget)
	running := decimal.Zero
	expected := 0.0
	selected := []domain.RankedItem{}
	for _, item := range ranked {
		next := running.Add(decimal.NewFromFloat(item.Cost))
		if next.GreaterThan(budget) {
			break
		}
		running = next
		expected += item.AdjustedROI
		selected = append(selected, item)
	}

	utilization := running.Div(budget).Mul(decimal.NewFromInt(100))

	return domain.BudgetResult{
		RecommendedItems:  selected,
		TotalCost:         running.InexactFloat64(),
		ExpectedROI:       expected,
		BudgetUtilization: utilization.Round(2).InexactFloat64(),
	}, nil
}
