package service

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehab-roi/domain"
)

func flipInput() domain.ROIInput {
	input := domain.DefaultROIInput()
	input.PurchasePrice = 200000
	input.ARV = 280000
	input.TotalRehabCost = 40000
	input.Strategy = domain.StrategyFlip
	input.HoldPeriodMonths = 6
	return input
}

func rentalInput() domain.ROIInput {
	input := domain.DefaultROIInput()
	input.PurchasePrice = 150000
	input.ARV = 200000
	input.TotalRehabCost = 20000
	input.Strategy = domain.StrategyRental
	input.MonthlyRent = 2000
	return input
}

func TestCalculateROI_Flip(t *testing.T) {
	result, err := CalculateROI(flipInput())
	require.NoError(t, err)

	assert.InDelta(t, 248400, result.TotalInvestment, 1e-6)
	assert.InDelta(t, 9200, result.NetProfit, 1e-6)
	assert.InDelta(t, 3.7037, result.ROIPercentage, 1e-4)
	assert.InDelta(t, 7.4074, result.AnnualizedROI, 1e-4)

	assert.Zero(t, result.CashFlow.Monthly)
	assert.Zero(t, result.CashFlow.Annual)
	assert.Empty(t, result.CashFlow.Cumulative)
	assert.Nil(t, result.CapRate)
	assert.Nil(t, result.CashOnCashReturn)
	assert.Nil(t, result.BreakEvenMonths)

	assert.Equal(t, domain.RiskFactors{
		MarketRisk:    domain.RiskHigh,
		LiquidityRisk: domain.RiskLow,
		ExecutionRisk: domain.RiskLow,
		OverallRisk:   domain.RiskMedium,
	}, result.RiskFactors)

	assert.Empty(t, result.Recommendations)
	assert.Len(t, result.Warnings, 2)
}

func TestCalculateROI_FlipFormulas(t *testing.T) {
	cases := []domain.ROIInput{flipInput()}

	loaded := flipInput()
	loaded.LoanAmount = 150000
	loaded.DownPayment = 50000
	loaded.HoldPeriodMonths = 4
	cases = append(cases, loaded)

	cheap := flipInput()
	cheap.PurchasePrice = 90000
	cheap.TotalRehabCost = 0
	cheap.HoldPeriodMonths = 1
	cases = append(cases, cheap)

	for _, input := range cases {
		result, err := CalculateROI(input)
		require.NoError(t, err)

		expectedProfit := input.ARV - result.TotalInvestment - SellingCosts(input.ARV)
		expectedROI := expectedProfit / result.TotalInvestment * 100

		assert.InDelta(t, expectedProfit, result.NetProfit, 1e-6)
		assert.InDelta(t, expectedROI, result.ROIPercentage, 1e-9)
		assert.InDelta(t, expectedROI*12/float64(input.HoldPeriodMonths), result.AnnualizedROI, 1e-9)
		assert.GreaterOrEqual(t, result.TotalInvestment, input.PurchasePrice+input.TotalRehabCost)
	}
}

func TestCalculateROI_Rental(t *testing.T) {
	result, err := CalculateROI(rentalInput())
	require.NoError(t, err)

	assert.InDelta(t, 178550, result.TotalInvestment, 1e-6)
	assert.InDelta(t, 1331.3333, result.CashFlow.Monthly, 1e-4)
	assert.Len(t, result.CashFlow.Cumulative, 12)
	assert.InDelta(t, 15976, result.CashFlow.Cumulative[11], 1e-6)
	assert.InDelta(t, 21426, result.NetProfit, 1e-6)
	assert.InDelta(t, 12.0, result.ROIPercentage, 1e-9)
	assert.InDelta(t, 12.0, result.AnnualizedROI, 1e-9)

	require.NotNil(t, result.CapRate)
	assert.InDelta(t, 8.9476, *result.CapRate, 1e-4)
	require.NotNil(t, result.BreakEvenMonths)
	assert.Equal(t, 135, *result.BreakEvenMonths)

	assert.Equal(t, domain.RiskMedium, result.RiskFactors.MarketRisk)
	assert.Equal(t, domain.RiskHigh, result.RiskFactors.LiquidityRisk)
	assert.Equal(t, domain.RiskMedium, result.RiskFactors.OverallRisk)
}

func TestCalculateROI_Airbnb(t *testing.T) {
	input := rentalInput()
	input.Strategy = domain.StrategyAirbnb
	input.HoldPeriodMonths = 6

	result, err := CalculateROI(input)
	require.NoError(t, err)

	assert.InDelta(t, 1942.0833, result.CashFlow.Monthly, 1e-4)
	assert.InDelta(t, 11652.5, result.NetProfit, 1e-6)
	assert.Nil(t, result.CapRate)
}

func TestCalculateROI_Wholetail(t *testing.T) {
	input := flipInput()
	input.Strategy = domain.StrategyWholetail
	input.HoldPeriodMonths = 3

	result, err := CalculateROI(input)
	require.NoError(t, err)

	assert.InDelta(t, 247200, result.TotalInvestment, 1e-6)
	assert.InDelta(t, -6400, result.NetProfit, 1e-6)
	assert.Empty(t, result.CashFlow.Cumulative)
}

func TestCalculateROI_CashOnCashOnlyWithDownPayment(t *testing.T) {
	input := rentalInput()
	input.DownPayment = 40000

	result, err := CalculateROI(input)
	require.NoError(t, err)

	require.NotNil(t, result.CashOnCashReturn)
	assert.InDelta(t, result.CashFlow.Annual/40000*100, *result.CashOnCashReturn, 1e-9)
}

func TestCalculateROI_RentalDefaultsToTwelveMonths(t *testing.T) {
	input := rentalInput()
	input.HoldPeriodMonths = 0

	result, err := CalculateROI(input)
	require.NoError(t, err)
	assert.Len(t, result.CashFlow.Cumulative, 12)

	flip := flipInput()
	flip.HoldPeriodMonths = 0
	result, err = CalculateROI(flip)
	require.NoError(t, err)
	assert.InDelta(t, 9200, result.NetProfit, 1e-6)
}

func TestCalculateROI_Scenarios(t *testing.T) {
	inputs := []domain.ROIInput{flipInput(), rentalInput()}
	for _, input := range inputs {
		result, err := CalculateROI(input)
		require.NoError(t, err)

		s := result.Scenarios
		assert.InDelta(t, 1.0, s.Conservative.Probability+s.Realistic.Probability+s.Optimistic.Probability, 1e-12)
		assert.InDelta(t, result.NetProfit, s.Realistic.NetProfit, 1e-6)
		assert.InDelta(t, result.ROIPercentage, s.Realistic.ROIPercentage, 1e-9)
		assert.Less(t, s.Conservative.NetProfit, s.Realistic.NetProfit)
		assert.Greater(t, s.Optimistic.NetProfit, s.Realistic.NetProfit)
	}

	result, err := CalculateROI(flipInput())
	require.NoError(t, err)
	c := result.Scenarios.Conservative
	assert.InDelta(t, 252000, c.ARV, 1e-6)
	assert.InDelta(t, 48000, c.RehabCost, 1e-6)
	assert.InDelta(t, 7.8, c.TimelineMonths, 1e-9)
	assert.InDelta(t, 3120, c.HoldingCosts, 1e-6)

	o := result.Scenarios.Optimistic
	assert.InDelta(t, 308000, o.ARV, 1e-6)
	assert.InDelta(t, 36000, o.RehabCost, 1e-6)
	assert.InDelta(t, 4.8, o.TimelineMonths, 1e-9)
}

func TestBreakEvenMonths(t *testing.T) {
	months := BreakEvenMonths(50000, 500)
	require.NotNil(t, months)
	assert.Equal(t, 100, *months)

	assert.Nil(t, BreakEvenMonths(50000, 0))
	assert.Nil(t, BreakEvenMonths(50000, -250))
}

func TestValidateROIInput(t *testing.T) {
	cases := map[string]struct {
		mutate func(*domain.ROIInput)
		field  string
	}{
		"negative price":   {func(in *domain.ROIInput) { in.PurchasePrice = -1 }, "purchasePrice"},
		"zero price":       {func(in *domain.ROIInput) { in.PurchasePrice = 0 }, "purchasePrice"},
		"zero arv":         {func(in *domain.ROIInput) { in.ARV = 0 }, "arv"},
		"nan rent":         {func(in *domain.ROIInput) { in.MonthlyRent = math.NaN() }, "monthlyRent"},
		"infinite rehab":   {func(in *domain.ROIInput) { in.TotalRehabCost = math.Inf(1) }, "totalRehabCost"},
		"negative hold":    {func(in *domain.ROIInput) { in.HoldPeriodMonths = -1 }, "holdPeriodMonths"},
		"vacancy over 100": {func(in *domain.ROIInput) { in.VacancyPct = 120 }, "vacancyPct"},
		"unknown strategy": {func(in *domain.ROIInput) { in.Strategy = "brrrr" }, "strategy"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			input := flipInput()
			tc.mutate(&input)

			_, err := CalculateROI(input)

			var invalidInput *InvalidInputError
			require.True(t, errors.As(err, &invalidInput), "expected InvalidInputError, got %v", err)
			assert.Equal(t, tc.field, invalidInput.Field)
		})
	}
}
