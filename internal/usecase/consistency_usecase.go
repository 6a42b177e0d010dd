package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInconsistentLedger is returned when a budget's item allocations do
	// not reconcile with its approved modifications.
	ErrInconsistentLedger = errors.New("budget ledger is inconsistent")
)

// ConsistencyUseCase verifies the conservation invariants of a budget:
// the sum of item allocations must equal the base allocation plus approved
// item-level credits minus approved item-level reductions (transfers net to
// zero), and every item must hold 0 <= available <= allocated.
type ConsistencyUseCase struct {
	budgetRepo BudgetRepository
	itemRepo   BudgetItemRepository
	modRepo    ModificationRepository
}

// NewConsistencyUseCase creates a new ConsistencyUseCase.
func NewConsistencyUseCase(
	budgetRepo BudgetRepository,
	itemRepo BudgetItemRepository,
	modRepo ModificationRepository,
) *ConsistencyUseCase {
	return &ConsistencyUseCase{
		budgetRepo: budgetRepo,
		itemRepo:   itemRepo,
		modRepo:    modRepo,
	}
}

// BudgetConsistencyResult is the outcome of a consistency check.
type BudgetConsistencyResult struct {
	BudgetID          string
	AllocatedSum      decimal.Decimal
	ExpectedAllocated decimal.Decimal
	Difference        decimal.Decimal
	InvalidItemIDs    []string
	IsConsistent      bool
	CheckedAt         time.Time
}

// CheckBudget verifies a budget's conservation invariants.
func (uc *ConsistencyUseCase) CheckBudget(ctx context.Context, budgetID string) (*BudgetConsistencyResult, error) {
	budget, err := uc.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.ListByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	credits, reductions, err := uc.modRepo.SumApprovedItemEffects(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	result := &BudgetConsistencyResult{
		BudgetID:  budgetID,
		CheckedAt: time.Now().UTC(),
	}

	allocatedSum := decimal.Zero
	for _, item := range items {
		allocatedSum = allocatedSum.Add(item.AllocatedAmount)

		if item.AvailableAmount.IsNegative() || item.AvailableAmount.GreaterThan(item.AllocatedAmount) {
			result.InvalidItemIDs = append(result.InvalidItemIDs, item.ID)
		}
	}

	result.AllocatedSum = allocatedSum
	result.ExpectedAllocated = budget.BaseAllocated.Add(credits).Sub(reductions)
	result.Difference = allocatedSum.Sub(result.ExpectedAllocated)
	result.IsConsistent = result.Difference.IsZero() && len(result.InvalidItemIDs) == 0

	return result, nil
}
