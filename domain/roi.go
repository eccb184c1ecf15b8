package domain

import "slices"

// Strategy is the exit plan a project is evaluated under.
type Strategy string

const (
	StrategyFlip      Strategy = "flip"
	StrategyRental    Strategy = "rental"
	StrategyWholetail Strategy = "wholetail"
	StrategyAirbnb    Strategy = "airbnb"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyFlip, StrategyRental, StrategyWholetail, StrategyAirbnb}

// Valid reports whether s is one of the supported strategies.
func (s Strategy) Valid() bool {
	return slices.Contains(Strategies, s)
}

// ROIInput is the financial profile of a property and its renovation.
// Percentages are expressed as whole numbers (5 means 5%).
type ROIInput struct {
	PurchasePrice         float64  `json:"purchasePrice"`
	ARV                   float64  `json:"arv"`
	TotalRehabCost        float64  `json:"totalRehabCost"`
	Strategy              Strategy `json:"strategy"`
	HoldPeriodMonths      int      `json:"holdPeriodMonths"` // 0 = strategy default
	MonthlyRent           float64  `json:"monthlyRent"`
	VacancyPct            float64  `json:"vacancyPct"`
	PropertyManagementPct float64  `json:"propertyManagementPct"`
	AppreciationRatePct   float64  `json:"appreciationRatePct"`
	DownPayment           float64  `json:"downPayment"`
	LoanAmount            float64  `json:"loanAmount"`
	InterestRatePct       float64  `json:"interestRatePct"`
}

// DefaultROIInput returns an input carrying the default assumptions. Decoding
// JSON on top of it keeps the defaults for every absent field.
func DefaultROIInput() ROIInput {
	return ROIInput{
		Strategy:              StrategyFlip,
		VacancyPct:            5,
		PropertyManagementPct: 8,
		InterestRatePct:       7,
	}
}

// CashFlow summarizes a constant monthly net income over a hold period.
type CashFlow struct {
	Monthly    float64   `json:"monthly"`
	Annual     float64   `json:"annual"`
	Cumulative []float64 `json:"cumulative"`
}

// ROIScenario is one point of the conservative/realistic/optimistic fan-out.
type ROIScenario struct {
	ARV            float64 `json:"arv"`
	RehabCost      float64 `json:"rehabCost"`
	TimelineMonths float64 `json:"timelineMonths"`
	HoldingCosts   float64 `json:"holdingCosts"`
	NetProfit      float64 `json:"netProfit"`
	ROIPercentage  float64 `json:"roiPercentage"`
	Probability    float64 `json:"probability"`
}

type Scenarios struct {
	Conservative ROIScenario `json:"conservative"`
	Realistic    ROIScenario `json:"realistic"`
	Optimistic   ROIScenario `json:"optimistic"`
}

// RiskLevel is a qualitative risk grade.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type RiskFactors struct {
	MarketRisk    RiskLevel `json:"marketRisk"`
	LiquidityRisk RiskLevel `json:"liquidityRisk"`
	ExecutionRisk RiskLevel `json:"executionRisk"`
	OverallRisk   RiskLevel `json:"overallRisk"`
}

// ROIResult is the full return analysis for one ROIInput.
type ROIResult struct {
	TotalInvestment  float64     `json:"totalInvestment"`
	NetProfit        float64     `json:"netProfit"`
	ROIPercentage    float64     `json:"roiPercentage"`
	AnnualizedROI    float64     `json:"annualizedROI"`
	CashFlow         CashFlow    `json:"cashFlow"`
	CapRate          *float64    `json:"capRate,omitempty"`
	CashOnCashReturn *float64    `json:"cashOnCashReturn,omitempty"`
	BreakEvenMonths  *int        `json:"breakEvenMonths,omitempty"` // nil when cash flow is not positive
	Scenarios        Scenarios   `json:"scenarios"`
	RiskFactors      RiskFactors `json:"riskFactors"`
	Recommendations  []string    `json:"recommendations"`
	Warnings         []string    `json:"warnings"`
}

// CashFlowProjection is one month of a detailed projection.
type CashFlowProjection struct {
	Month              int     `json:"month"`
	Income             float64 `json:"income"`
	Expenses           float64 `json:"expenses"`
	NetCashFlow        float64 `json:"netCashFlow"`
	CumulativeCashFlow float64 `json:"cumulativeCashFlow"`
	Description        string  `json:"description"`
}

type StrategyComparisonEntry struct {
	Strategy       Strategy  `json:"strategy"`
	ROI            float64   `json:"roi"`
	Risk           RiskLevel `json:"risk"`
	TimelineMonths int       `json:"timelineMonths"`
	CashRequired   float64   `json:"cashRequired"`
	Pros           []string  `json:"pros"`
	Cons           []string  `json:"cons"`
}

type StrategyComparison struct {
	Strategies     []StrategyComparisonEntry `json:"strategies"`
	Recommendation string                    `json:"recommendation"`
}
