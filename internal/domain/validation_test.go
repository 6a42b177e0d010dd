package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateReference(t *testing.T) {
	if err := ValidateReference("MOD-2026-0042"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateReference("   "); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference for blank reference, got %v", err)
	}

	long := strings.Repeat("X", MaxReferenceLength+1)
	if err := ValidateReference(long); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference for long reference, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"valid", decimal.NewFromInt(100), nil},
		{"minimum", decimal.RequireFromString("0.01"), nil},
		{"zero", decimal.Zero, ErrInvalidAmount},
		{"below minimum", decimal.RequireFromString("0.001"), ErrAmountTooSmall},
		{"above maximum", decimal.RequireFromString("1000000001"), ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateFiscalYear(t *testing.T) {
	if err := ValidateFiscalYear(2026); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateFiscalYear(1815); !errors.Is(err, ErrInvalidFiscalYear) {
		t.Errorf("expected ErrInvalidFiscalYear, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults 50/0, got %d/%d", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("expected limit capped at 1000, got %d", limit)
	}
}
