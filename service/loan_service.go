package service

import (
	"context"

	"github.com/shopspring/decimal"

	"rehab-roi/domain"
	"rehab-roi/repository"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

type LoanService struct {
	cache repository.CacheRepository
}

// NewLoanService creates a new LoanService backed by the given cache.
func NewLoanService(cache repository.CacheRepository) *LoanService {
	return &LoanService{cache: cache}
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {

	// Validar entrada
	if err := checkAmount("amount", input.Amount, true); err != nil {
		return domain.LoanResult{}, err
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, invalid("amount", "exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if err := checkPercent("interestRate", input.InterestRate, MaxInterestRate); err != nil {
		return domain.LoanResult{}, err
	}
	if input.TermMonths < MinTermMonths || input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, invalid("termMonths", "must be between %d and %d", MinTermMonths, MaxTermMonths)
	}

	return cached(ctx, s.cache, "loan", input, func() (domain.LoanResult, error) {
		payment := MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
		total := payment * float64(input.TermMonths)

		return domain.LoanResult{
			MonthlyPayment: roundTo2Decimals(payment),
			TotalPayment:   roundTo2Decimals(total),
			TotalInterest:  roundTo2Decimals(total - input.Amount),
		}, nil
	})
}
