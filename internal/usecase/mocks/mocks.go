package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
)

// MockBudgetRepository is a mock implementation of BudgetRepository.
type MockBudgetRepository struct {
	mu      sync.RWMutex
	budgets map[string]*domain.Budget

	GetByIDFunc           func(ctx context.Context, id string) (*domain.Budget, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Budget, error)
	UpdateTotalAmountFunc func(ctx context.Context, tx usecase.Transaction, id string, total decimal.Decimal, updatedAt time.Time) error
}

func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		budgets: make(map[string]*domain.Budget),
	}
}

func (m *MockBudgetRepository) Seed(budget *domain.Budget) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.budgets[budget.ID] = budget
}

func (m *MockBudgetRepository) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.budgets[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBudgetNotFound
}

func (m *MockBudgetRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Budget, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockBudgetRepository) UpdateTotalAmount(ctx context.Context, tx usecase.Transaction, id string, total decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateTotalAmountFunc != nil {
		return m.UpdateTotalAmountFunc(ctx, tx, id, total, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.budgets[id]; ok {
		b.TotalAmount = total
		b.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrBudgetNotFound
}

// MockBudgetItemRepository is a mock implementation of BudgetItemRepository.
type MockBudgetItemRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.BudgetItem

	GetByIDFunc           func(ctx context.Context, id string) (*domain.BudgetItem, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.BudgetItem, error)
	UpdateAmountsFunc     func(ctx context.Context, tx usecase.Transaction, id string, allocated, available decimal.Decimal, updatedAt time.Time) error
	ListByBudgetFunc      func(ctx context.Context, budgetID string) ([]*domain.BudgetItem, error)
}

func NewMockBudgetItemRepository() *MockBudgetItemRepository {
	return &MockBudgetItemRepository{
		items: make(map[string]*domain.BudgetItem),
	}
}

func (m *MockBudgetItemRepository) Seed(item *domain.BudgetItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = item
}

func (m *MockBudgetItemRepository) GetByID(ctx context.Context, id string) (*domain.BudgetItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if item, ok := m.items[id]; ok {
		return item, nil
	}
	return nil, domain.ErrItemNotFound
}

func (m *MockBudgetItemRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.BudgetItem, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]*domain.BudgetItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *MockBudgetItemRepository) UpdateAmounts(ctx context.Context, tx usecase.Transaction, id string, allocated, available decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateAmountsFunc != nil {
		return m.UpdateAmountsFunc(ctx, tx, id, allocated, available, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.items[id]; ok {
		item.AllocatedAmount = allocated
		item.AvailableAmount = available
		item.UpdatedAt = updatedAt
		return nil
	}
	return domain.ErrItemNotFound
}

func (m *MockBudgetItemRepository) ListByBudget(ctx context.Context, budgetID string) ([]*domain.BudgetItem, error) {
	if m.ListByBudgetFunc != nil {
		return m.ListByBudgetFunc(ctx, budgetID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var items []*domain.BudgetItem
	for _, item := range m.items {
		if item.BudgetID == budgetID {
			items = append(items, item)
		}
	}
	return items, nil
}

// MockModificationRepository is a mock implementation of ModificationRepository.
type MockModificationRepository struct {
	mu   sync.RWMutex
	mods map[string]*domain.BudgetModification

	CreateFunc                 func(ctx context.Context, tx usecase.Transaction, mod *domain.BudgetModification) error
	GetByIDFunc                func(ctx context.Context, id string) (*domain.BudgetModification, error)
	GetByIDForUpdateFunc       func(ctx context.Context, tx usecase.Transaction, id string) (*domain.BudgetModification, error)
	UpdateStatusFunc           func(ctx context.Context, tx usecase.Transaction, mod *domain.BudgetModification) error
	ListByBudgetFunc           func(ctx context.Context, budgetID string, filter usecase.ModificationFilter) ([]*domain.BudgetModification, error)
	StatsByBudgetFunc          func(ctx context.Context, budgetID string) (*usecase.ModificationStats, error)
	SumApprovedItemEffectsFunc func(ctx context.Context, budgetID string) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockModificationRepository() *MockModificationRepository {
	return &MockModificationRepository{
		mods: make(map[string]*domain.BudgetModification),
	}
}

func (m *MockModificationRepository) Seed(mod *domain.BudgetModification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mods[mod.ID] = mod
}

func (m *MockModificationRepository) Create(ctx context.Context, tx usecase.Transaction, mod *domain.BudgetModification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, mod)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mods[mod.ID] = mod
	return nil
}

func (m *MockModificationRepository) GetByID(ctx context.Context, id string) (*domain.BudgetModification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mod, ok := m.mods[id]; ok {
		return mod, nil
	}
	return nil, domain.ErrModificationNotFound
}

func (m *MockModificationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.BudgetModification, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockModificationRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, mod *domain.BudgetModification) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, mod)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mods[mod.ID] = mod
	return nil
}

func (m *MockModificationRepository) ListByBudget(ctx context.Context, budgetID string, filter usecase.ModificationFilter) ([]*domain.BudgetModification, error) {
	if m.ListByBudgetFunc != nil {
		return m.ListByBudgetFunc(ctx, budgetID, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var mods []*domain.BudgetModification
	for _, mod := range m.mods {
		if mod.BudgetID != budgetID {
			continue
		}
		if filter.Status != nil && mod.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && mod.Type != *filter.Type {
			continue
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

func (m *MockModificationRepository) StatsByBudget(ctx context.Context, budgetID string) (*usecase.ModificationStats, error) {
	if m.StatsByBudgetFunc != nil {
		return m.StatsByBudgetFunc(ctx, budgetID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	stats := &usecase.ModificationStats{
		ByType:              make(map[domain.ModificationType]int64),
		TotalApprovedAmount: decimal.Zero,
	}
	for _, mod := range m.mods {
		if mod.BudgetID != budgetID {
			continue
		}
		stats.Total++
		stats.ByType[mod.Type]++
		switch mod.Status {
		case domain.ModificationStatusPending:
			stats.Pending++
		case domain.ModificationStatusApproved:
			stats.Approved++
			stats.TotalApprovedAmount = stats.TotalApprovedAmount.Add(mod.Amount)
		case domain.ModificationStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

func (m *MockModificationRepository) SumApprovedItemEffects(ctx context.Context, budgetID string) (decimal.Decimal, decimal.Decimal, error) {
	if m.SumApprovedItemEffectsFunc != nil {
		return m.SumApprovedItemEffectsFunc(ctx, budgetID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	credits, reductions := decimal.Zero, decimal.Zero
	for _, mod := range m.mods {
		if mod.BudgetID != budgetID || mod.Status != domain.ModificationStatusApproved {
			continue
		}
		switch mod.Type {
		case domain.ModificationTypeCreditoAdicional:
			if mod.ToItemID != nil {
				credits = credits.Add(mod.Amount)
			}
		case domain.ModificationTypeReduccion:
			if mod.FromItemID != nil {
				reductions = reductions.Add(mod.Amount)
			}
		}
	}
	return credits, reductions, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var unpublished []*domain.OutboxEvent
	for _, event := range m.events {
		if !event.Published {
			unpublished = append(unpublished, event)
		}
		if len(unpublished) >= limit {
			break
		}
	}
	return unpublished, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, event := range m.events {
		if event.ID == id {
			event.Published = true
			event.PublishedAt = &publishedAt
			return nil
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	return nil
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	logs []*domain.AuditLog

	CreateFunc   func(ctx context.Context, log *domain.AuditLog) error
	CreateTxFunc func(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.AuditLog(nil), m.logs...)
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, log)
	}
	return m.Create(ctx, log)
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	return m.Logs(), nil
}

func (m *MockAuditRepository) GetByResourceID(ctx context.Context, resourceType, resourceID string) ([]*domain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var logs []*domain.AuditLog
	for _, log := range m.logs {
		if log.ResourceType == resourceType && log.ResourceID == resourceID {
			logs = append(logs, log)
		}
	}
	return logs, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.RolledBack = true
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%03d", m.counter)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		values: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
