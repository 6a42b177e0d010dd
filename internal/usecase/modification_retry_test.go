package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
	"github.com/ayto/budgetledger/internal/usecase/mocks"
)

func TestModificationUseCase_ApproveRetriesTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	budgetRepo := mocks.NewMockBudgetRepository()
	itemRepo := mocks.NewMockBudgetItemRepository()
	modRepo := mocks.NewMockModificationRepository()
	txMgr := mocks.NewMockTransactionManager()

	budgetRepo.Seed(activeBudget("bud-1"))
	itemRepo.Seed(seedItem("item-a", "bud-1", 100, 100))
	modRepo.Seed(&domain.BudgetModification{
		ID:       "mod-1",
		BudgetID: "bud-1",
		Type:     domain.ModificationTypeCreditoAdicional,
		Amount:   decimal.NewFromInt(200),
		Status:   domain.ModificationStatusPending,
		ToItemID: stringPtr("item-a"),
	})

	// First transaction begin fails transiently; the retrier runs the
	// operation again and the second attempt succeeds.
	transient := errors.New("deadlock detected")
	attempts := 0
	txMgr.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		attempts++
		if attempts == 1 {
			return nil, transient
		}
		return &mocks.MockTransaction{}, nil
	}

	retrier := mocks.NewMockRetrier(ctrl)
	retrier.EXPECT().Retry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func() error) error {
			for i := 0; i < 3; i++ {
				if err := fn(); err == nil || !errors.Is(err, transient) {
					return err
				}
			}
			return transient
		},
	)

	uc := usecase.NewModificationUseCase(
		txMgr, budgetRepo, itemRepo, modRepo,
		mocks.NewMockOutboxRepository(), mocks.NewMockAuditRepository(),
		mocks.NewMockIDGenerator(), retrier, mocks.NewMockCache(), nil,
	)

	mod, err := uc.ApproveModification(context.Background(), "mod-1", "interventor-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mod.Status != domain.ModificationStatusApproved {
		t.Errorf("expected status APPROVED, got %s", mod.Status)
	}
	if attempts != 2 {
		t.Errorf("expected 2 begin attempts, got %d", attempts)
	}
}

func TestModificationUseCase_BusinessErrorsAreNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	budgetRepo := mocks.NewMockBudgetRepository()
	itemRepo := mocks.NewMockBudgetItemRepository()
	modRepo := mocks.NewMockModificationRepository()
	txMgr := mocks.NewMockTransactionManager()

	budgetRepo.Seed(activeBudget("bud-1"))
	itemRepo.Seed(seedItem("item-a", "bud-1", 100, 10))
	itemRepo.Seed(seedItem("item-c", "bud-1", 50, 50))
	modRepo.Seed(&domain.BudgetModification{
		ID:         "mod-1",
		BudgetID:   "bud-1",
		Type:       domain.ModificationTypeTraspaso,
		Amount:     decimal.NewFromInt(30),
		Status:     domain.ModificationStatusPending,
		FromItemID: stringPtr("item-a"),
		ToItemID:   stringPtr("item-c"),
	})

	calls := 0
	retrier := mocks.NewMockRetrier(ctrl)
	retrier.EXPECT().Retry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func() error) error {
			calls++
			return fn()
		},
	)

	uc := usecase.NewModificationUseCase(
		txMgr, budgetRepo, itemRepo, modRepo,
		mocks.NewMockOutboxRepository(), mocks.NewMockAuditRepository(),
		mocks.NewMockIDGenerator(), retrier, mocks.NewMockCache(), nil,
	)

	_, err := uc.ApproveModification(context.Background(), "mod-1", "interventor-1")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single retrier invocation, got %d", calls)
	}
}
