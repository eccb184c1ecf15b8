package domain

// RenovationItem is a candidate line item for the rehab budget.
type RenovationItem struct {
	Category  string  `json:"category"`
	Cost      float64 `json:"cost"`
	ROIImpact float64 `json:"roiImpact"`
}

type BudgetInput struct {
	TotalBudget float64          `json:"totalBudget"`
	Items       []RenovationItem `json:"items"`
	Strategy    Strategy         `json:"strategy"`
}

// RankedItem is a selected item with its strategy-adjusted figures.
type RankedItem struct {
	RenovationItem
	Multiplier         float64 `json:"multiplier"`
	AdjustedROI        float64 `json:"adjustedROI"`
	AdjustedEfficiency float64 `json:"adjustedEfficiency"`
}

type BudgetResult struct {
	RecommendedItems  []RankedItem `json:"recommendedItems"`
	TotalCost         float64      `json:"totalCost"`
	ExpectedROI       float64      `json:"expectedROI"`
	BudgetUtilization float64      `json:"budgetUtilization"`
}
