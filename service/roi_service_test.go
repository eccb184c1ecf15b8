package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rehab-roi/domain"
	"rehab-roi/repository"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestROIService_CalculateROI_CachesResult(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewROIService(cache, nil)

	first, err := svc.CalculateROI(context.Background(), flipInput())
	require.NoError(t, err)
	assert.Len(t, cache.Data, 1)

	for key := range cache.Data {
		assert.Contains(t, key, "roi:")
	}

	second, err := svc.CalculateROI(context.Background(), flipInput())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, cache.Data, 1)
}

func TestROIService_ServesCacheHit(t *testing.T) {
	cache := new(mockCache)
	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).
		Return(`{"netProfit":42,"recommendations":[],"warnings":[]}`, true)

	svc := NewROIService(cache, nil)
	result, err := svc.CalculateROI(context.Background(), flipInput())

	require.NoError(t, err)
	assert.Equal(t, 42.0, result.NetProfit)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestROIService_CacheWriteFailureIsNotFatal(t *testing.T) {
	cache := new(mockCache)
	cache.On("Get", mock.Anything, mock.Anything).Return("", false)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := NewROIService(cache, nil)
	result, err := svc.CalculateROI(context.Background(), flipInput())

	require.NoError(t, err)
	assert.InDelta(t, 9200, result.NetProfit, 1e-6)
	cache.AssertExpectations(t)
}

func TestROIService_InvalidInputIsNotCached(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewROIService(cache, nil)

	input := flipInput()
	input.ARV = 0
	_, err := svc.CalculateROI(context.Background(), input)

	var invalidInput *InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Empty(t, cache.Data)
}

func TestROIService_CompareStrategiesUsesOwnKey(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewROIService(cache, nil)

	_, err := svc.CalculateROI(context.Background(), flipInput())
	require.NoError(t, err)
	_, err = svc.CompareStrategies(context.Background(), flipInput())
	require.NoError(t, err)

	assert.Len(t, cache.Data, 2)
}

func TestROIService_AnalyzeProject(t *testing.T) {
	projects := repository.NewProjectRepositoryMemory()
	id := projects.Add(flipInput())
	svc := NewROIService(repository.NewMemoryCache(0), projects)

	result, err := svc.AnalyzeProject(context.Background(), id)
	require.NoError(t, err)
	assert.InDelta(t, 9200, result.NetProfit, 1e-6)

	_, err = svc.AnalyzeProject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProjectNotFound)
}

func TestROIService_EquivalentInputsShareCacheEntry(t *testing.T) {
	cache := repository.NewMemoryCache(0)
	svc := NewROIService(cache, nil)

	implicit := flipInput()
	implicit.HoldPeriodMonths = 0
	explicit := flipInput()
	explicit.HoldPeriodMonths = DefaultHoldPeriodMonths

	first, err := svc.CalculateROI(context.Background(), implicit)
	require.NoError(t, err)
	second, err := svc.CalculateROI(context.Background(), explicit)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, cache.Data, 1)

	_, err = svc.CompareStrategies(context.Background(), implicit)
	require.NoError(t, err)
	_, err = svc.CompareStrategies(context.Background(), explicit)
	require.NoError(t, err)
	assert.Len(t, cache.Data, 2)
}

func TestROIService_AnalyzeProjectWithCorruptRecord(t *testing.T) {
	projects := repository.NewProjectRepositoryMemory()
	corrupt := flipInput()
	corrupt.Strategy = "brrrr"
	id := projects.Add(corrupt)
	svc := NewROIService(repository.NewMemoryCache(0), projects)

	_, err := svc.AnalyzeProject(context.Background(), id)

	require.ErrorIs(t, err, ErrInvalidProject)
	var invalidInput *InvalidInputError
	assert.False(t, errors.As(err, &invalidInput))
	assert.Contains(t, err.Error(), id.String())
}

func TestROIService_AnalyzeProjectWithoutRepository(t *testing.T) {
	svc := NewROIService(nil, nil)

	_, err := svc.AnalyzeProject(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestROIService_PassThroughOperations(t *testing.T) {
	svc := NewROIService(nil, nil)
	ctx := context.Background()

	rows, err := svc.ProjectDetailedCashFlow(ctx, rentalInput())
	require.NoError(t, err)
	assert.Len(t, rows, 12)

	budget, err := svc.OptimizeRehabBudget(ctx, domain.BudgetInput{
		TotalBudget: 1000,
		Strategy:    domain.StrategyFlip,
		Items:       []domain.RenovationItem{{Category: "paint", Cost: 800, ROIImpact: 5}},
	})
	require.NoError(t, err)
	assert.Len(t, budget.RecommendedItems, 1)

	scenarios, err := svc.CalculateFinancingScenarios(ctx, domain.FinancingInput{PurchasePrice: 100000, ARV: 150000})
	require.NoError(t, err)
	assert.Len(t, scenarios, 4)
}
