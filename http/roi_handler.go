package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rehab-roi/domain"
)

// Engine is the return engine as seen by the HTTP layer.
type Engine interface {
	CalculateROI(ctx context.Context, input domain.ROIInput) (domain.ROIResult, error)
	CompareStrategies(ctx context.Context, input domain.ROIInput) (domain.StrategyComparison, error)
	ProjectDetailedCashFlow(ctx context.Context, input domain.ROIInput) ([]domain.CashFlowProjection, error)
	OptimizeRehabBudget(ctx context.Context, input domain.BudgetInput) (domain.BudgetResult, error)
	CalculateFinancingScenarios(ctx context.Context, input domain.FinancingInput) ([]domain.FinancingScenario, error)
	AnalyzeProject(ctx context.Context, id uuid.UUID) (domain.ROIResult, error)
}

type ROIHandler struct {
	engine Engine
}

func NewROIHandler(engine Engine) *ROIHandler {
	return &ROIHandler{engine: engine}
}

// decodeROIInput decodes on top of the default assumptions so absent
// optional fields keep their defaults.
func decodeROIInput(w http.ResponseWriter, r *http.Request) (domain.ROIInput, bool) {
	input := domain.DefaultROIInput()
	ok := decodeJSON(w, r, &input)
	return input, ok
}

func (h *ROIHandler) CalculateROI(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeROIInput(w, r)
	if !ok {
		return
	}

	result, err := h.engine.CalculateROI(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ROIHandler) CompareStrategies(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeROIInput(w, r)
	if !ok {
		return
	}

	result, err := h.engine.CompareStrategies(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ROIHandler) ProjectCashFlow(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeROIInput(w, r)
	if !ok {
		return
	}

	result, err := h.engine.ProjectDetailedCashFlow(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ROIHandler) OptimizeBudget(w http.ResponseWriter, r *http.Request) {
	var input domain.BudgetInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.engine.OptimizeRehabBudget(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ROIHandler) FinancingScenarios(w http.ResponseWriter, r *http.Request) {
	var input domain.FinancingInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.engine.CalculateFinancingScenarios(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ROIHandler) AnalyzeProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	result, err := h.engine.AnalyzeProject(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "rehab-roi",
	})
}
