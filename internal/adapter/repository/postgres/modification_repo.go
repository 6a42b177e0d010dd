package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/infrastructure/postgres/generated"
	"github.com/ayto/budgetledger/internal/usecase"
)

// ModificationRepository implements usecase.ModificationRepository.
type ModificationRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewModificationRepository creates a new ModificationRepository.
func NewModificationRepository(pool *pgxpool.Pool) *ModificationRepository {
	return &ModificationRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a new modification inside the given transaction.
func (r *ModificationRepository) Create(ctx context.Context, tx usecase.Transaction, mod *domain.BudgetModification) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateModification(ctx, generated.CreateModificationParams{
		ID:            mod.ID,
		BudgetID:      mod.BudgetID,
		Type:          string(mod.Type),
		Reference:     mod.Reference,
		Description:   mod.Description,
		Amount:        decimalToNumeric(mod.Amount),
		Justification: mod.Justification,
		Status:        string(mod.Status),
		FromItemID:    stringPtrToPgText(mod.FromItemID),
		ToItemID:      stringPtrToPgText(mod.ToItemID),
		ApprovedBy:    stringPtrToPgText(mod.ApprovedBy),
		ApprovedAt:    timePtrToPgTimestamptz(mod.ApprovedAt),
		Notes:         stringPtrToPgText(mod.Notes),
		CreatedAt:     timeToPgTimestamptz(mod.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(mod.UpdatedAt),
	})

	return err
}

// GetByID retrieves a modification by ID.
func (r *ModificationRepository) GetByID(ctx context.Context, id string) (*domain.BudgetModification, error) {
	row, err := r.queries.GetModificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModificationNotFound
		}

		return nil, err
	}

	return rowToModification(row), nil
}

// GetByIDForUpdate retrieves a modification by ID with a FOR UPDATE lock.
func (r *ModificationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BudgetModification, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetModificationByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModificationNotFound
		}

		return nil, err
	}

	return rowToModification(row), nil
}

// UpdateStatus persists the resolution fields of a modification.
func (r *ModificationRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, mod *domain.BudgetModification) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateModificationStatus(ctx, generated.UpdateModificationStatusParams{
		ID:         mod.ID,
		Status:     string(mod.Status),
		ApprovedBy: stringPtrToPgText(mod.ApprovedBy),
		ApprovedAt: timePtrToPgTimestamptz(mod.ApprovedAt),
		Notes:      stringPtrToPgText(mod.Notes),
		UpdatedAt:  timeToPgTimestamptz(mod.UpdatedAt),
	})
}

// ListByBudget lists modifications of a budget, newest first.
func (r *ModificationRepository) ListByBudget(ctx context.Context, budgetID string, filter usecase.ModificationFilter) ([]*domain.BudgetModification, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var status, typ pgtype.Text
	if filter.Status != nil {
		status = pgtype.Text{String: string(*filter.Status), Valid: true}
	}
	if filter.Type != nil {
		typ = pgtype.Text{String: string(*filter.Type), Valid: true}
	}

	rows, err := r.queries.ListModificationsByBudget(ctx, generated.ListModificationsByBudgetParams{
		BudgetID: budgetID,
		Status:   status,
		Type:     typ,
		Limit:    int32(limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	mods := make([]*domain.BudgetModification, 0, len(rows))
	for _, row := range rows {
		mods = append(mods, rowToModification(row))
	}

	return mods, nil
}

// StatsByBudget aggregates the modifications of a budget.
func (r *ModificationRepository) StatsByBudget(ctx context.Context, budgetID string) (*usecase.ModificationStats, error) {
	row, err := r.queries.GetModificationStats(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	byType, err := r.queries.CountModificationsByType(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	stats := &usecase.ModificationStats{
		Total:               row.Total,
		Pending:             row.Pending,
		Approved:            row.Approved,
		Rejected:            row.Rejected,
		ByType:              make(map[domain.ModificationType]int64, len(byType)),
		TotalApprovedAmount: numericToDecimal(row.TotalApprovedAmount),
	}
	for _, tc := range byType {
		stats.ByType[domain.ModificationType(tc.Type)] = tc.Count
	}

	return stats, nil
}

// SumApprovedItemEffects sums approved additional credits and item-backed
// reductions for a budget, used by the consistency check.
func (r *ModificationRepository) SumApprovedItemEffects(ctx context.Context, budgetID string) (decimal.Decimal, decimal.Decimal, error) {
	row, err := r.queries.SumApprovedItemEffects(ctx, budgetID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(row.Credits), numericToDecimal(row.Reductions), nil
}

func rowToModification(row generated.BudgetModification) *domain.BudgetModification {
	return &domain.BudgetModification{
		ID:            row.ID,
		BudgetID:      row.BudgetID,
		Type:          domain.ModificationType(row.Type),
		Reference:     row.Reference,
		Description:   row.Description,
		Amount:        numericToDecimal(row.Amount),
		Justification: row.Justification,
		Status:        domain.ModificationStatus(row.Status),
		FromItemID:    pgTextToStringPtr(row.FromItemID),
		ToItemID:      pgTextToStringPtr(row.ToItemID),
		ApprovedBy:    pgTextToStringPtr(row.ApprovedBy),
		ApprovedAt:    pgTimestamptzToTimePtr(row.ApprovedAt),
		Notes:         pgTextToStringPtr(row.Notes),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
