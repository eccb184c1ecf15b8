package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_MatchesAnnuityFormula(t *testing.T) {
	r := 0.06 / 12
	expected := 200000 * r / (1 - math.Pow(1+r, -360))

	got := MonthlyPayment(200000, 6, 360)

	assert.InDelta(t, expected, got, 1e-6)
	assert.InDelta(t, 1199.10, got, 0.01)
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 100.0, MonthlyPayment(1200, 0, 12))
}

func TestMonthlyPayment_ZeroTermIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(MonthlyPayment(1000, 0, 0)))
	assert.True(t, math.IsNaN(MonthlyPayment(1000, 5, 0)))
}

func TestCostModel(t *testing.T) {
	assert.InDelta(t, 6000, AcquisitionCosts(200000), 1e-9)
	assert.InDelta(t, 22400, SellingCosts(280000), 1e-9)

	// 200 impuesto + 50 seguro + 150 servicios
	assert.InDelta(t, 400, MonthlyHoldingCost(200000, 0, 7), 1e-9)
	assert.InDelta(t, 2400, HoldingCosts(200000, 0, 7, 6), 1e-9)
	assert.InDelta(t, 3120, HoldingCosts(200000, 0, 7, 7.8), 1e-9)

	withLoan := MonthlyHoldingCost(200000, 100000, 7)
	assert.InDelta(t, 400+665.30, withLoan, 0.01)
}
