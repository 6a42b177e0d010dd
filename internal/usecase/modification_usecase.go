package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/infrastructure/metrics"
)

// ModificationUseCase mediates all changes to budget items through the
// modification workflow. Approvals re-read every touched row inside one
// transaction so that concurrent approvals drawing on the same item
// serialize on the row lock and the second one observes the first one's
// decrement before its own sufficiency check.
type ModificationUseCase struct {
	txManager  TransactionManager
	budgetRepo BudgetRepository
	itemRepo   BudgetItemRepository
	modRepo    ModificationRepository
	outboxRepo OutboxRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	retrier    Retrier
	cache      Cache
	metrics    *metrics.Metrics
}

// NewModificationUseCase creates a new ModificationUseCase.
func NewModificationUseCase(
	txManager TransactionManager,
	budgetRepo BudgetRepository,
	itemRepo BudgetItemRepository,
	modRepo ModificationRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	metrics *metrics.Metrics,
) *ModificationUseCase {
	return &ModificationUseCase{
		txManager:  txManager,
		budgetRepo: budgetRepo,
		itemRepo:   itemRepo,
		modRepo:    modRepo,
		outboxRepo: outboxRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		retrier:    retrier,
		cache:      cache,
		metrics:    metrics,
	}
}

// CreateModificationInput represents a modification request.
type CreateModificationInput struct {
	BudgetID      string
	Type          domain.ModificationType
	Amount        decimal.Decimal
	Reference     string
	Description   string
	Justification string
	FromItemID    *string
	ToItemID      *string
	ActorID       string
}

// CreateModification validates and persists a PENDING modification.
// Admissibility is checked here for early feedback and re-checked against
// locked rows when the modification is approved.
func (uc *ModificationUseCase) CreateModification(ctx context.Context, input CreateModificationInput) (*domain.BudgetModification, error) {
	if err := domain.ValidateReference(input.Reference); err != nil {
		return nil, err
	}
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	mod := &domain.BudgetModification{
		ID:            uc.idGen.Generate(),
		BudgetID:      input.BudgetID,
		Type:          input.Type,
		Reference:     input.Reference,
		Description:   input.Description,
		Amount:        input.Amount,
		Justification: input.Justification,
		Status:        domain.ModificationStatusPending,
		FromItemID:    input.FromItemID,
		ToItemID:      input.ToItemID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := mod.Validate(); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.GetByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	fromItem, toItem, err := uc.resolveItems(ctx, mod)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateModification(mod, budget, fromItem, toItem); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.modRepo.Create(txCtx, tx, mod); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   mod.ID,
		AggregateType: domain.AggregateTypeModification,
		EventType:     domain.EventTypeModificationCreated,
		Payload: map[string]any{
			"modification_id": mod.ID,
			"budget_id":       mod.BudgetID,
			"type":            string(mod.Type),
			"reference":       mod.Reference,
			"amount":          mod.Amount.String(),
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      input.ActorID,
			Action:       string(domain.AuditActionModificationCreate),
			ResourceType: "modification",
			ResourceID:   mod.ID,
			AfterState:   domain.MarshalState(mod),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    now,
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
	}

	if uc.metrics != nil {
		uc.metrics.ModificationsCreated.WithLabelValues(string(mod.Type)).Inc()
	}

	uc.invalidateStats(ctx, mod.BudgetID)

	return mod, nil
}

// ApproveModification transitions a PENDING modification to APPROVED and
// applies its ledger deltas atomically. Transient deadlock or serialization
// failures are retried; business failures are returned as-is and the caller
// decides.
func (uc *ModificationUseCase) ApproveModification(ctx context.Context, id, actorID string) (*domain.BudgetModification, error) {
	start := time.Now()

	var mod *domain.BudgetModification
	err := uc.retry(ctx, func() error {
		var opErr error
		mod, opErr = uc.approveOnce(ctx, id, actorID)
		return opErr
	})
	if err != nil {
		if uc.metrics != nil && errors.Is(err, domain.ErrInsufficientFunds) {
			uc.metrics.InsufficientFunds.Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ModificationsApproved.WithLabelValues(string(mod.Type)).Inc()
		uc.metrics.ApprovalDuration.Observe(time.Since(start).Seconds())
	}

	uc.invalidateStats(ctx, mod.BudgetID)

	return mod, nil
}

func (uc *ModificationUseCase) approveOnce(ctx context.Context, id, actorID string) (*domain.BudgetModification, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// Lock the modification row first: at most one of approve/reject on the
	// same record can get past this point.
	mod, err := uc.modRepo.GetByIDForUpdate(txCtx, tx, id)
	if err != nil {
		return nil, err
	}

	if mod.Status != domain.ModificationStatusPending {
		return nil, domain.ErrInvalidState
	}

	budget, err := uc.budgetRepo.GetByIDForUpdate(txCtx, tx, mod.BudgetID)
	if err != nil {
		return nil, err
	}

	fromItem, toItem, err := uc.lockItems(txCtx, tx, mod)
	if err != nil {
		return nil, err
	}

	// Re-validate against the freshly locked state. A concurrent approval may
	// have consumed the funds since this record was created.
	if err := domain.ValidateModification(mod, budget, fromItem, toItem); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := mod.Approve(actorID, now); err != nil {
		return nil, err
	}

	if err := uc.modRepo.UpdateStatus(txCtx, tx, mod); err != nil {
		return nil, err
	}

	if err := uc.applyDeltas(txCtx, tx, mod, budget, fromItem, toItem, now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   mod.ID,
		AggregateType: domain.AggregateTypeModification,
		EventType:     domain.EventTypeModificationApproved,
		Payload: map[string]any{
			"modification_id": mod.ID,
			"budget_id":       mod.BudgetID,
			"type":            string(mod.Type),
			"amount":          mod.Amount.String(),
			"approved_by":     actorID,
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      actorID,
			Action:       string(domain.AuditActionModificationApprove),
			ResourceType: "modification",
			ResourceID:   mod.ID,
			AfterState:   domain.MarshalState(mod),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    now,
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
	}

	return mod, nil
}

// RejectModification transitions a PENDING modification to REJECTED. No
// numeric field on any budget or item changes.
func (uc *ModificationUseCase) RejectModification(ctx context.Context, id, actorID, reason string) (*domain.BudgetModification, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	mod, err := uc.modRepo.GetByIDForUpdate(txCtx, tx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := mod.Reject(actorID, reason, now); err != nil {
		return nil, err
	}

	if err := uc.modRepo.UpdateStatus(txCtx, tx, mod); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   mod.ID,
		AggregateType: domain.AggregateTypeModification,
		EventType:     domain.EventTypeModificationRejected,
		Payload: map[string]any{
			"modification_id": mod.ID,
			"budget_id":       mod.BudgetID,
			"rejected_by":     actorID,
			"reason":          reason,
		},
		CreatedAt: now,
		Published: false,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			ActorID:      actorID,
			Action:       string(domain.AuditActionModificationReject),
			ResourceType: "modification",
			ResourceID:   mod.ID,
			AfterState:   domain.MarshalState(mod),
			Status:       string(domain.AuditStatusSuccess),
			CreatedAt:    now,
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreFailure, err)
	}

	if uc.metrics != nil {
		uc.metrics.ModificationsRejected.WithLabelValues(string(mod.Type)).Inc()
	}

	uc.invalidateStats(ctx, mod.BudgetID)

	return mod, nil
}

// applyDeltas applies the type-specific ledger effect. The switch is
// exhaustive over the closed ModificationType set.
func (uc *ModificationUseCase) applyDeltas(
	ctx context.Context,
	tx Transaction,
	mod *domain.BudgetModification,
	budget *domain.Budget,
	fromItem, toItem *domain.BudgetItem,
	now time.Time,
) error {
	switch mod.Type {
	case domain.ModificationTypeTraspaso:
		// Conservation: both item deltas, budget total unchanged.
		allocated, available := fromItem.ApplyDecrease(mod.Amount)
		if err := uc.itemRepo.UpdateAmounts(ctx, tx, fromItem.ID, allocated, available, now); err != nil {
			return err
		}

		allocated, available = toItem.ApplyIncrease(mod.Amount)
		return uc.itemRepo.UpdateAmounts(ctx, tx, toItem.ID, allocated, available, now)

	case domain.ModificationTypeCreditoAdicional:
		if toItem != nil {
			allocated, available := toItem.ApplyIncrease(mod.Amount)
			if err := uc.itemRepo.UpdateAmounts(ctx, tx, toItem.ID, allocated, available, now); err != nil {
				return err
			}
		}

		return uc.budgetRepo.UpdateTotalAmount(ctx, tx, budget.ID, budget.ApplyCredit(mod.Amount), now)

	case domain.ModificationTypeReduccion:
		if fromItem != nil {
			allocated, available := fromItem.ApplyDecrease(mod.Amount)
			if err := uc.itemRepo.UpdateAmounts(ctx, tx, fromItem.ID, allocated, available, now); err != nil {
				return err
			}
		}

		return uc.budgetRepo.UpdateTotalAmount(ctx, tx, budget.ID, budget.ApplyReduction(mod.Amount), now)

	case domain.ModificationTypeRectificacion:
		// Record-only: the observed behavior applies no numeric delta.
		return nil

	default:
		return domain.ErrInvalidType
	}
}

// lockItems locks the modification's referenced items FOR UPDATE, in sorted
// ID order to prevent deadlocks between overlapping approvals.
func (uc *ModificationUseCase) lockItems(ctx context.Context, tx Transaction, mod *domain.BudgetModification) (fromItem, toItem *domain.BudgetItem, err error) {
	ids := collectItemIDs(mod)
	if len(ids) == 0 {
		return nil, nil, nil
	}

	sort.Strings(ids)

	items, err := uc.itemRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, nil, err
	}

	itemMap := make(map[string]*domain.BudgetItem, len(items))
	for _, item := range items {
		itemMap[item.ID] = item
	}

	if mod.FromItemID != nil {
		fromItem = itemMap[*mod.FromItemID]
		if fromItem == nil {
			return nil, nil, domain.ErrItemNotFound
		}
	}

	if mod.ToItemID != nil {
		toItem = itemMap[*mod.ToItemID]
		if toItem == nil {
			return nil, nil, domain.ErrItemNotFound
		}
	}

	return fromItem, toItem, nil
}

// resolveItems reads the referenced items without locks, for creation-time
// admissibility checks.
func (uc *ModificationUseCase) resolveItems(ctx context.Context, mod *domain.BudgetModification) (fromItem, toItem *domain.BudgetItem, err error) {
	if mod.FromItemID != nil {
		fromItem, err = uc.itemRepo.GetByID(ctx, *mod.FromItemID)
		if err != nil {
			return nil, nil, err
		}
	}

	if mod.ToItemID != nil {
		toItem, err = uc.itemRepo.GetByID(ctx, *mod.ToItemID)
		if err != nil {
			return nil, nil, err
		}
	}

	return fromItem, toItem, nil
}

func (uc *ModificationUseCase) retry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *ModificationUseCase) invalidateStats(ctx context.Context, budgetID string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, statsCacheKey(budgetID))
}

func collectItemIDs(mod *domain.BudgetModification) []string {
	seen := make(map[string]bool)

	var ids []string
	if mod.FromItemID != nil && !seen[*mod.FromItemID] {
		seen[*mod.FromItemID] = true
		ids = append(ids, *mod.FromItemID)
	}
	if mod.ToItemID != nil && !seen[*mod.ToItemID] {
		seen[*mod.ToItemID] = true
		ids = append(ids, *mod.ToItemID)
	}

	return ids
}
