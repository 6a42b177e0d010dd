package integration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ayto/budgetledger/internal/domain"
	"github.com/ayto/budgetledger/internal/usecase"
	"github.com/ayto/budgetledger/tests/testutil"
)

func TestConcurrentApprovals(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	testDB := testutil.NewTestDB(t)
	defer testDB.Cleanup()

	s := newStack(testDB.Pool)

	t.Run("concurrent approvals never overdraw the source item", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		// 10 pending transfers of 100 each against a source holding 500:
		// exactly 5 can be approved, the rest must fail on funds.
		budget := testDB.CreateTestBudget(ctx, 2026, decimal.NewFromInt(10000))
		from := testDB.CreateTestItem(ctx, budget.ID, "165.22100", decimal.NewFromInt(500))
		to := testDB.CreateTestItem(ctx, budget.ID, "171.61900", decimal.NewFromInt(1000))

		numMods := 10
		modIDs := make([]string, 0, numMods)

		for i := range numMods {
			mod, err := s.modUC.CreateModification(ctx, usecase.CreateModificationInput{
				BudgetID:      budget.ID,
				Type:          domain.ModificationTypeTraspaso,
				Amount:        decimal.NewFromInt(100),
				Reference:     fmt.Sprintf("MOD-2026-%03d", i+1),
				Description:   "Traspaso concurrente",
				Justification: "Prueba de carga",
				FromItemID:    &from.ID,
				ToItemID:      &to.ID,
				ActorID:       "operator-1",
			})
			if err != nil {
				t.Fatalf("failed to create modification %d: %v", i, err)
			}
			modIDs = append(modIDs, mod.ID)
		}

		var (
			wg                sync.WaitGroup
			approvedCount     atomic.Int32
			insufficientCount atomic.Int32
		)

		wg.Add(numMods)
		for _, id := range modIDs {
			go func() {
				defer wg.Done()

				_, err := s.modUC.ApproveModification(ctx, id, "interventor-1")
				switch {
				case err == nil:
					approvedCount.Add(1)
				case errors.Is(err, domain.ErrInsufficientFunds):
					insufficientCount.Add(1)
				default:
					t.Errorf("unexpected approval error: %v", err)
				}
			}()
		}
		wg.Wait()

		if approvedCount.Load() != 5 {
			t.Errorf("expected exactly 5 approvals, got %d (insufficient: %d)",
				approvedCount.Load(), insufficientCount.Load())
		}

		fromAfter, err := s.itemRepo.GetByID(ctx, from.ID)
		if err != nil {
			t.Fatalf("failed to read source item: %v", err)
		}
		if fromAfter.AvailableAmount.IsNegative() {
			t.Errorf("source item overdrawn: available %s", fromAfter.AvailableAmount)
		}
		if !fromAfter.AllocatedAmount.Equal(decimal.Zero) {
			t.Errorf("expected source fully drained, allocated %s", fromAfter.AllocatedAmount)
		}

		toAfter, _ := s.itemRepo.GetByID(ctx, to.ID)
		if !toAfter.AllocatedAmount.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected destination allocated 1500, got %s", toAfter.AllocatedAmount)
		}
	})

	t.Run("opposing transfers between two items conserve the total", func(t *testing.T) {
		testDB.TruncateAll(ctx)

		budget := testDB.CreateTestBudget(ctx, 2026, decimal.NewFromInt(10000))
		a := testDB.CreateTestItem(ctx, budget.ID, "165.22100", decimal.NewFromInt(3000))
		b := testDB.CreateTestItem(ctx, budget.ID, "171.61900", decimal.NewFromInt(3000))

		numPairs := 20
		modIDs := make([]string, 0, numPairs*2)

		for i := range numPairs {
			forward, err := s.modUC.CreateModification(ctx, usecase.CreateModificationInput{
				BudgetID:      budget.ID,
				Type:          domain.ModificationTypeTraspaso,
				Amount:        decimal.NewFromInt(50),
				Reference:     fmt.Sprintf("MOD-AB-%03d", i+1),
				Description:   "Traspaso ida",
				Justification: "Prueba",
				FromItemID:    &a.ID,
				ToItemID:      &b.ID,
				ActorID:       "operator-1",
			})
			if err != nil {
				t.Fatalf("failed to create forward modification: %v", err)
			}

			backward, err := s.modUC.CreateModification(ctx, usecase.CreateModificationInput{
				BudgetID:      budget.ID,
				Type:          domain.ModificationTypeTraspaso,
				Amount:        decimal.NewFromInt(50),
				Reference:     fmt.Sprintf("MOD-BA-%03d", i+1),
				Description:   "Traspaso vuelta",
				Justification: "Prueba",
				FromItemID:    &b.ID,
				ToItemID:      &a.ID,
				ActorID:       "operator-1",
			})
			if err != nil {
				t.Fatalf("failed to create backward modification: %v", err)
			}

			modIDs = append(modIDs, forward.ID, backward.ID)
		}

		// Opposing directions force lock contention on both items; sorted
		// lock order plus the retrier should resolve every approval.
		var wg sync.WaitGroup
		wg.Add(len(modIDs))
		for _, id := range modIDs {
			go func() {
				defer wg.Done()
				if _, err := s.modUC.ApproveModification(ctx, id, "interventor-1"); err != nil {
					t.Errorf("approval failed: %v", err)
				}
			}()
		}
		wg.Wait()

		aAfter, _ := s.itemRepo.GetByID(ctx, a.ID)
		bAfter, _ := s.itemRepo.GetByID(ctx, b.ID)

		sum := aAfter.AllocatedAmount.Add(bAfter.AllocatedAmount)
		if !sum.Equal(decimal.NewFromInt(6000)) {
			t.Errorf("expected item allocations to sum 6000, got %s", sum)
		}
		if !aAfter.AllocatedAmount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected symmetric transfers to net to zero, item A at %s", aAfter.AllocatedAmount)
		}
	})
}
