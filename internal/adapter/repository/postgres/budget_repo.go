package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/infrastructure/postgres/generated"
	"github.com/ayto/budgetledger/internal/usecase"
)

// BudgetRepository implements usecase.BudgetRepository.
type BudgetRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByID retrieves a budget by ID.
func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	row, err := r.queries.GetBudgetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}

		return nil, err
	}

	return rowToBudget(row), nil
}

// GetByIDForUpdate retrieves a budget by ID with a FOR UPDATE lock.
func (r *BudgetRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Budget, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetBudgetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}

		return nil, err
	}

	return rowToBudget(row), nil
}

// UpdateTotalAmount updates the running total of a budget.
func (r *BudgetRepository) UpdateTotalAmount(ctx context.Context, tx usecase.Transaction, id string, total decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateBudgetTotal(ctx, generated.UpdateBudgetTotalParams{
		ID:          id,
		TotalAmount: decimalToNumeric(total),
		UpdatedAt:   timeToPgTimestamptz(updatedAt),
	})
}

func rowToBudget(row generated.Budget) *domain.Budget {
	return &domain.Budget{
		ID:              row.ID,
		FiscalYear:      int(row.FiscalYear),
		TotalAmount:     numericToDecimal(row.TotalAmount),
		BaseAllocated:   numericToDecimal(row.BaseAllocated),
		EstimatedIncome: numericToDecimal(row.EstimatedIncome),
		Status:          domain.BudgetStatus(row.Status),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String

	return &s
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func pgTimestamptzToTimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}

	t := ts.Time

	return &t
}
