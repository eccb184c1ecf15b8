package service

// Fixed-percentage cost heuristics. They approximate typical closing, carrying
// and selling costs and are not sourced from market data.

// AcquisitionCosts estimates closing costs on purchase.
func AcquisitionCosts(purchasePrice float64) float64 {
	return purchasePrice * AcquisitionCostRate
}

// MonthlyHoldingCost is the carrying cost of one month: property tax and
// insurance accruals, utilities and the loan payment on a 30-year term.
func MonthlyHoldingCost(purchasePrice, loanAmount, ratePct float64) float64 {
	tax := purchasePrice * PropertyTaxRate / 12
	insurance := purchasePrice * InsuranceRate / 12

	loanPayment := 0.0
	if loanAmount > 0 {
		loanPayment = MonthlyPayment(loanAmount, ratePct, HoldingLoanTermMos)
	}
	return tax + insurance + MonthlyUtilities + loanPayment
}

// HoldingCosts is the carrying cost over months (which may be fractional for
// stretched scenario timelines).
func HoldingCosts(purchasePrice, loanAmount, ratePct, months float64) float64 {
	return MonthlyHoldingCost(purchasePrice, loanAmount, ratePct) * months
}

// SellingCosts estimates commissions and closing costs on sale.
func SellingCosts(arv float64) float64 {
	return arv * SellingCostRate
}
