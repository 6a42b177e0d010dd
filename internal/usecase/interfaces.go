package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
)

// BudgetRepository defines data access for budgets. Budgets are created by
// the out-of-scope budgeting workflow; this service only reads them and
// adjusts the running total.
type BudgetRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Budget, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Budget, error)
	UpdateTotalAmount(ctx context.Context, tx Transaction, id string, total decimal.Decimal, updatedAt time.Time) error
}

// BudgetItemRepository defines data access for budget items.
type BudgetItemRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BudgetItem, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.BudgetItem, error)
	UpdateAmounts(ctx context.Context, tx Transaction, id string, allocated, available decimal.Decimal, updatedAt time.Time) error
	ListByBudget(ctx context.Context, budgetID string) ([]*domain.BudgetItem, error)
}

// ModificationFilter narrows modification listings.
type ModificationFilter struct {
	Status *domain.ModificationStatus
	Type   *domain.ModificationType
	Limit  int
	Offset int
}

// ModificationStats aggregates a budget's modifications.
type ModificationStats struct {
	Total               int64                            `json:"total"`
	Pending             int64                            `json:"pending"`
	Approved            int64                            `json:"approved"`
	Rejected            int64                            `json:"rejected"`
	ByType              map[domain.ModificationType]int64 `json:"by_type"`
	TotalApprovedAmount decimal.Decimal                  `json:"total_approved_amount"`
}

// ModificationRepository defines data access for budget modifications.
type ModificationRepository interface {
	Create(ctx context.Context, tx Transaction, mod *domain.BudgetModification) error
	GetByID(ctx context.Context, id string) (*domain.BudgetModification, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.BudgetModification, error)
	UpdateStatus(ctx context.Context, tx Transaction, mod *domain.BudgetModification) error
	ListByBudget(ctx context.Context, budgetID string, filter ModificationFilter) ([]*domain.BudgetModification, error)
	StatsByBudget(ctx context.Context, budgetID string) (*ModificationStats, error)
	SumApprovedItemEffects(ctx context.Context, budgetID string) (credits, reductions decimal.Decimal, err error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
	GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient store failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
