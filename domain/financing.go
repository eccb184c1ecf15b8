package domain

type FinancingInput struct {
	PurchasePrice float64 `json:"purchasePrice"`
	RehabCost     float64 `json:"rehabCost"`
	ARV           float64 `json:"arv"`
}

// FinancingScenario is the outcome of one financing preset.
type FinancingScenario struct {
	Name            string  `json:"name"`
	DownPaymentPct  float64 `json:"downPaymentPct"`
	InterestRatePct float64 `json:"interestRatePct"`
	TermMonths      int     `json:"termMonths"`
	DownPayment     float64 `json:"downPayment"`
	LoanAmount      float64 `json:"loanAmount"`
	MonthlyPayment  float64 `json:"monthlyPayment"`
	TotalInterest   float64 `json:"totalInterest"`
	LeverageRatio   float64 `json:"leverageRatio"`
	ROIImpact       float64 `json:"roiImpact"`
}
