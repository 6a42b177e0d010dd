package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayto/budgetledger/internal/adapter/http/dto"
	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
)

// BudgetQueryService is the slice of QueryUseCase the handler needs.
type BudgetQueryService interface {
	GetBudget(ctx context.Context, id string) (*domain.Budget, []*domain.BudgetItem, error)
	GetStats(ctx context.Context, budgetID string) (*usecase.ModificationStats, error)
}

// ConsistencyService runs budget conservation checks.
type ConsistencyService interface {
	CheckBudget(ctx context.Context, budgetID string) (*usecase.BudgetConsistencyResult, error)
}

// BudgetHandler handles budget-related HTTP requests.
type BudgetHandler struct {
	queryUC       BudgetQueryService
	consistencyUC ConsistencyService
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(queryUC BudgetQueryService, consistencyUC ConsistencyService) *BudgetHandler {
	return &BudgetHandler{
		queryUC:       queryUC,
		consistencyUC: consistencyUC,
	}
}

// Get retrieves a budget with its items.
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing budget ID", "")
		return
	}

	budget, items, err := h.queryUC.GetBudget(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get budget", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BudgetDetailResponse{
		Budget: dto.BudgetFromDomain(budget),
		Items:  dto.BudgetItemsFromDomain(items),
	})
}

// Stats returns modification statistics for a budget.
func (h *BudgetHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing budget ID", "")
		return
	}

	stats, err := h.queryUC.GetStats(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get stats", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.StatsFromUseCase(id, stats))
}

// Consistency runs the conservation checks for a budget.
func (h *BudgetHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing budget ID", "")
		return
	}

	result, err := h.consistencyUC.CheckBudget(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to check budget consistency", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromUseCase(result))
}
