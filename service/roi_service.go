package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rehab-roi/domain"
	"rehab-roi/repository"
)

// ROIService exposes the return engine to the transport layers, memoizing
// full analyses and resolving stored projects.
type ROIService struct {
	cache    repository.CacheRepository
	projects repository.ProjectRepository
}

func NewROIService(cache repository.CacheRepository, projects repository.ProjectRepository) *ROIService {
	return &ROIService{cache: cache, projects: projects}
}

// ErrInvalidProject marks a stored project whose record fails validation.
var ErrInvalidProject = errors.New("stored project is invalid")

// CalculateROI keys the cache on the resolved input, so an omitted hold
// period and its explicit default share one entry.
func (s *ROIService) CalculateROI(ctx context.Context, input domain.ROIInput) (domain.ROIResult, error) {
	resolved, err := ValidateROIInput(input)
	if err != nil {
		return domain.ROIResult{}, err
	}
	return cached(ctx, s.cache, "roi", resolved, func() (domain.ROIResult, error) {
		return CalculateROI(resolved)
	})
}

func (s *ROIService) CompareStrategies(ctx context.Context, input domain.ROIInput) (domain.StrategyComparison, error) {
	resolved, err := ValidateROIInput(input)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	return cached(ctx, s.cache, "compare", resolved, func() (domain.StrategyComparison, error) {
		return CompareStrategies(ctx, resolved)
	})
}

func (s *ROIService) ProjectDetailedCashFlow(_ context.Context, input domain.ROIInput) ([]domain.CashFlowProjection, error) {
	return ProjectDetailedCashFlow(input)
}

func (s *ROIService) OptimizeRehabBudget(_ context.Context, input domain.BudgetInput) (domain.BudgetResult, error) {
	return OptimizeRehabBudget(input)
}

func (s *ROIService) CalculateFinancingScenarios(_ context.Context, input domain.FinancingInput) ([]domain.FinancingScenario, error) {
	return CalculateFinancingScenarios(input)
}

// AnalyzeProject loads a stored project and runs the full analysis on it.
func (s *ROIService) AnalyzeProject(ctx context.Context, id uuid.UUID) (domain.ROIResult, error) {
	if s.projects == nil {
		return domain.ROIResult{}, fmt.Errorf("no project repository configured")
	}

	input, err := s.projects.GetProjectInput(ctx, id)
	if err != nil {
		return domain.ROIResult{}, err
	}

	logger := zerolog.Ctx(ctx).With().Str("project_id", id.String()).Logger()

	// Un registro corrupto es un fallo del servidor, no de la petición
	if _, err := ValidateROIInput(input); err != nil {
		logger.Error().Err(err).Msg("stored project failed validation")
		return domain.ROIResult{}, fmt.Errorf("%w: project %s: %s", ErrInvalidProject, id, err.Error())
	}

	logger.Debug().
		Str("strategy", string(input.Strategy)).
		Msg("analyzing stored project")

	return s.CalculateROI(ctx, input)
}
