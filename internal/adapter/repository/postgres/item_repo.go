package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/infrastructure/postgres/generated"
	"github.com/ayto/budgetledger/internal/usecase"
)

// BudgetItemRepository implements usecase.BudgetItemRepository.
type BudgetItemRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBudgetItemRepository creates a new BudgetItemRepository.
func NewBudgetItemRepository(pool *pgxpool.Pool) *BudgetItemRepository {
	return &BudgetItemRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByID retrieves a budget item by ID.
func (r *BudgetItemRepository) GetByID(ctx context.Context, id string) (*domain.BudgetItem, error) {
	row, err := r.queries.GetBudgetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}

		return nil, err
	}

	return rowToBudgetItem(row), nil
}

// GetByIDsForUpdate retrieves multiple budget items with FOR UPDATE locks.
// Rows come back ordered by ID so concurrent approvals always lock in the
// same order.
func (r *BudgetItemRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.BudgetItem, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.GetBudgetItemsByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.BudgetItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToBudgetItem(row))
	}

	return items, nil
}

// UpdateAmounts updates the allocated and available amounts of a budget item.
func (r *BudgetItemRepository) UpdateAmounts(ctx context.Context, tx usecase.Transaction, id string, allocated, available decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateBudgetItemAmounts(ctx, generated.UpdateBudgetItemAmountsParams{
		ID:              id,
		AllocatedAmount: decimalToNumeric(allocated),
		AvailableAmount: decimalToNumeric(available),
		UpdatedAt:       timeToPgTimestamptz(updatedAt),
	})
}

// ListByBudget lists all items of a budget ordered by code.
func (r *BudgetItemRepository) ListByBudget(ctx context.Context, budgetID string) ([]*domain.BudgetItem, error) {
	rows, err := r.queries.ListBudgetItemsByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.BudgetItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToBudgetItem(row))
	}

	return items, nil
}

func rowToBudgetItem(row generated.BudgetItem) *domain.BudgetItem {
	return &domain.BudgetItem{
		ID:              row.ID,
		BudgetID:        row.BudgetID,
		Code:            row.Code,
		Name:            row.Name,
		AllocatedAmount: numericToDecimal(row.AllocatedAmount),
		CommittedAmount: numericToDecimal(row.CommittedAmount),
		AccruedAmount:   numericToDecimal(row.AccruedAmount),
		PaidAmount:      numericToDecimal(row.PaidAmount),
		AvailableAmount: numericToDecimal(row.AvailableAmount),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
