package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rehab-roi/domain"
)

func TestRentalMonthlyNetIncome(t *testing.T) {
	// 2000 cobrado al 95%, 8% de administración, 2.5% anual sobre 200k
	got := RentalMonthlyNetIncome(2000, 200000, 5, 8)
	assert.InDelta(t, 1331.3333, got, 1e-4)
}

func TestProjectCashFlow(t *testing.T) {
	cf := ProjectCashFlow(250, 4)

	assert.Equal(t, 250.0, cf.Monthly)
	assert.Equal(t, 3000.0, cf.Annual)
	assert.Equal(t, []float64{250, 500, 750, 1000}, cf.Cumulative)

	empty := ProjectCashFlow(0, 0)
	assert.NotNil(t, empty.Cumulative)
	assert.Empty(t, empty.Cumulative)
}

func TestProjectDetailedCashFlow_Rental(t *testing.T) {
	rows, err := ProjectDetailedCashFlow(rentalInput())
	require.NoError(t, err)
	require.Len(t, rows, 12)

	holding := 337.5
	first := rows[0]
	assert.Equal(t, 1, first.Month)
	assert.Zero(t, first.Income)
	assert.InDelta(t, 20000.0/6+holding, first.Expenses, 1e-9)
	assert.Equal(t, "Renovation month 1 of 6", first.Description)

	operating := rows[6]
	assert.Equal(t, 7, operating.Month)
	assert.Equal(t, 2000.0, operating.Income)
	assert.InDelta(t, holding+600, operating.Expenses, 1e-9)
	assert.Equal(t, "Operating month 1: rental income", operating.Description)

	running := 0.0
	for _, row := range rows {
		assert.InDelta(t, row.Income-row.Expenses, row.NetCashFlow, 1e-9)
		running += row.NetCashFlow
		assert.InDelta(t, running, row.CumulativeCashFlow, 1e-9)
	}
}

func TestProjectDetailedCashFlow_FlipHasNoIncome(t *testing.T) {
	rows, err := ProjectDetailedCashFlow(flipInput())
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, "Renovation month 3 of 3", rows[2].Description)
	assert.Equal(t, "Holding month 1: listed for sale", rows[3].Description)
	for _, row := range rows {
		assert.Zero(t, row.Income)
		assert.Negative(t, row.NetCashFlow)
	}
	assert.InDelta(t, -(40000 + 6*400.0), rows[5].CumulativeCashFlow, 1e-9)
}

func TestProjectDetailedCashFlow_OddHoldRoundsRenovationUp(t *testing.T) {
	input := flipInput()
	input.HoldPeriodMonths = 1

	rows, err := ProjectDetailedCashFlow(input)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Renovation month 1 of 1", rows[0].Description)
	assert.InDelta(t, 40400, rows[0].Expenses, 1e-9)
}

func TestProjectDetailedCashFlow_RejectsInvalidInput(t *testing.T) {
	input := rentalInput()
	input.ARV = 0

	_, err := ProjectDetailedCashFlow(input)

	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Equal(t, "arv", invalidInput.Field)
}

func TestProjectDetailedCashFlow_AirbnbIncome(t *testing.T) {
	input := rentalInput()
	input.Strategy = domain.StrategyAirbnb
	input.HoldPeriodMonths = 4

	rows, err := ProjectDetailedCashFlow(input)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, 3000.0, rows[2].Income)
	assert.Equal(t, "Operating month 2: airbnb income", rows[3].Description)
}
