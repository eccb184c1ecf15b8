package service

const (
	MaxLoanAmount       = 1_000_000_000.0 // 1 billón
	MaxPropertyAmount   = 1_000_000_000.0
	MaxInterestRate     = 100.0 // % anual
	MaxTermMonths       = 600   // 50 años
	MinTermMonths       = 1
	MaxHoldPeriodMonths = 360
	MaxBudgetItems      = 200

	DefaultHoldPeriodMonths       = 6
	DefaultRentalHoldPeriodMonths = 12

	// Heurísticas de costos (aproximaciones, no datos de mercado)
	AcquisitionCostRate = 0.03
	PropertyTaxRate     = 0.012 // anual sobre el precio
	InsuranceRate       = 0.003 // anual sobre el precio
	MaintenanceRate     = 0.01  // anual sobre el valor
	MonthlyUtilities    = 150.0
	SellingCostRate     = 0.08
	HoldingLoanTermMos  = 360

	OperatingExpenseRatio = 0.30
)
