package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"rehab-roi/domain"
)

const roiTemplate = `
ROI Analysis
============
Total investment:   {{money .TotalInvestment}}
Net profit:         {{money .NetProfit}}
ROI:                {{pct .ROIPercentage}}
Annualized ROI:     {{pct .AnnualizedROI}}
Monthly cash flow:  {{money .CashFlow.Monthly}}
{{- if .CapRate}}
Cap rate:           {{pct (float .CapRate)}}{{end}}
{{- if .CashOnCashReturn}}
Cash-on-cash:       {{pct (float .CashOnCashReturn)}}{{end}}
{{- if .BreakEvenMonths}}
Break-even:         {{int .BreakEvenMonths}} months{{end}}

Scenarios
{{separator}}
{{row "Scenario" "ARV" "Rehab" "Months" "Net profit" "ROI" "Prob."}}
{{separator}}
{{with .Scenarios}}{{scenario "conservative" .Conservative}}
{{scenario "realistic" .Realistic}}
{{scenario "optimistic" .Optimistic}}{{end}}
{{separator}}

Risk: market={{.RiskFactors.MarketRisk}} liquidity={{.RiskFactors.LiquidityRisk}} execution={{.RiskFactors.ExecutionRisk}} overall={{.RiskFactors.OverallRisk}}
{{range .Recommendations}}
  + {{.}}{{end}}{{range .Warnings}}
  ! {{.}}{{end}}
`

const compareTemplate = `
Strategy Comparison
{{separator}}
{{row "Strategy" "Annual ROI" "Risk" "Months" "Cash req." "" ""}}
{{separator}}
{{range .Strategies}}{{row (str .Strategy) (pct .ROI) (str .Risk) (printf "%d" .TimelineMonths) (money .CashRequired) "" ""}}
{{end}}{{separator}}
{{.Recommendation}}
`

const cashFlowTemplate = `
Cash Flow Projection
{{separator}}
{{row "Month" "Income" "Expenses" "Net" "Cumulative" "" ""}}
{{separator}}
{{range .}}{{row (printf "%d" .Month) (money .Income) (money .Expenses) (money .NetCashFlow) (money .CumulativeCashFlow) "" ""}}  {{.Description}}
{{end}}{{separator}}
`

const budgetTemplate = `
Rehab Budget Allocation
{{separator}}
{{row "Category" "Cost" "ROI impact" "Multiplier" "Adj. ROI" "" ""}}
{{separator}}
{{range .RecommendedItems}}{{row .Category (money .Cost) (printf "%.2f" .ROIImpact) (printf "%.2fx" .Multiplier) (printf "%.2f" .AdjustedROI) "" ""}}
{{end}}{{separator}}
Total cost:   {{money .TotalCost}}
Expected ROI: {{printf "%.2f" .ExpectedROI}}
Utilization:  {{pct .BudgetUtilization}}
`

const financingTemplate = `
Financing Scenarios
{{separator}}
{{row "Scenario" "Down" "Loan" "Payment" "Interest" "Leverage" "ROI impact"}}
{{separator}}
{{range .}}{{row .Name (money .DownPayment) (money .LoanAmount) (money .MonthlyPayment) (money .TotalInterest) (printf "%.2f" .LeverageRatio) (pct .ROIImpact)}}
{{end}}{{separator}}
`

var reportTemplates = map[string]string{
	"roi":       roiTemplate,
	"compare":   compareTemplate,
	"cashflow":  cashFlowTemplate,
	"budget":    budgetTemplate,
	"financing": financingTemplate,
}

const columnWidth = 14

type reporter struct {
	writer io.Writer
}

func newReporter(w io.Writer) *reporter {
	return &reporter{writer: w}
}

func (r *reporter) write(result any, name string, rawJSON bool) error {
	if rawJSON {
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	tmpl, err := template.New(name).Funcs(reportFuncs()).Parse(reportTemplates[name])
	if err != nil {
		return fmt.Errorf("failed to parse %s report: %w", name, err)
	}
	return tmpl.Execute(r.writer, result)
}

func reportFuncs() template.FuncMap {
	row := func(cols ...string) string {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, fmt.Sprintf(" %-*s ", columnWidth, c))
		}
		return "|" + strings.Join(cells, "|") + "|"
	}
	money := func(v float64) string { return fmt.Sprintf("$%.2f", v) }
	pct := func(v float64) string { return fmt.Sprintf("%.2f%%", v) }

	return template.FuncMap{
		"money": money,
		"pct":   pct,
		"row":   row,
		"str":   func(v any) string { return fmt.Sprint(v) },
		"float": func(p *float64) float64 { return *p },
		"int":   func(p *int) int { return *p },
		"separator": func() string {
			return "+" + strings.Repeat(strings.Repeat("-", columnWidth+2)+"+", 7)
		},
		"scenario": func(name string, sc domain.ROIScenario) string {
			return row(name, money(sc.ARV), money(sc.RehabCost), fmt.Sprintf("%.1f", sc.TimelineMonths),
				money(sc.NetProfit), pct(sc.ROIPercentage), fmt.Sprintf("%.0f%%", sc.Probability*100))
		},
	}
}
