package usecase

import (
	"context"
	"encoding/json"

	"github.com/ayto/budgetledger/internal/domain"
)

// QueryUseCase exposes read-only views over the modification ledger.
type QueryUseCase struct {
	budgetRepo BudgetRepository
	itemRepo   BudgetItemRepository
	modRepo    ModificationRepository
	cache      Cache
}

// NewQueryUseCase creates a new QueryUseCase.
func NewQueryUseCase(
	budgetRepo BudgetRepository,
	itemRepo BudgetItemRepository,
	modRepo ModificationRepository,
	cache Cache,
) *QueryUseCase {
	return &QueryUseCase{
		budgetRepo: budgetRepo,
		itemRepo:   itemRepo,
		modRepo:    modRepo,
		cache:      cache,
	}
}

// ModificationDetail is a modification with its related entities resolved.
type ModificationDetail struct {
	Modification *domain.BudgetModification
	Budget       *domain.Budget
	FromItem     *domain.BudgetItem
	ToItem       *domain.BudgetItem
}

// GetModification retrieves a modification with resolved budget and items.
func (uc *QueryUseCase) GetModification(ctx context.Context, id string) (*ModificationDetail, error) {
	mod, err := uc.modRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.GetByID(ctx, mod.BudgetID)
	if err != nil {
		return nil, err
	}

	detail := &ModificationDetail{
		Modification: mod,
		Budget:       budget,
	}

	if mod.FromItemID != nil {
		detail.FromItem, err = uc.itemRepo.GetByID(ctx, *mod.FromItemID)
		if err != nil {
			return nil, err
		}
	}

	if mod.ToItemID != nil {
		detail.ToItem, err = uc.itemRepo.GetByID(ctx, *mod.ToItemID)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

// ListModificationsInput represents input for listing modifications.
type ListModificationsInput struct {
	BudgetID string
	Status   *domain.ModificationStatus
	Type     *domain.ModificationType
	Limit    int
	Offset   int
}

// ListModifications lists a budget's modifications, newest first.
func (uc *QueryUseCase) ListModifications(ctx context.Context, input ListModificationsInput) ([]*domain.BudgetModification, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.modRepo.ListByBudget(ctx, input.BudgetID, ModificationFilter{
		Status: input.Status,
		Type:   input.Type,
		Limit:  limit,
		Offset: offset,
	})
}

// GetStats computes counts by status and type plus the approved amount sum
// for a budget. Results are cached briefly; mutations invalidate the key.
func (uc *QueryUseCase) GetStats(ctx context.Context, budgetID string) (*ModificationStats, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, statsCacheKey(budgetID)); err == nil && cached != "" {
			var stats ModificationStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	// Ensure the budget exists so a bogus ID is NotFound, not empty stats.
	if _, err := uc.budgetRepo.GetByID(ctx, budgetID); err != nil {
		return nil, err
	}

	stats, err := uc.modRepo.StatsByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, statsCacheKey(budgetID), string(encoded), StatsCacheTTL)
		}
	}

	return stats, nil
}

// GetBudget retrieves a budget with its items.
func (uc *QueryUseCase) GetBudget(ctx context.Context, id string) (*domain.Budget, []*domain.BudgetItem, error) {
	budget, err := uc.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := uc.itemRepo.ListByBudget(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return budget, items, nil
}
