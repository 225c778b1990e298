package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/storage/memory"
)

func TestCreditService(t *testing.T) {
	ctx := context.Background()

	newMemberWithCredits := func(t *testing.T, credits int) (*CreditService, *MemberService) {
		t.Helper()
		store := memory.New()
		members := NewMemberService(store, testEmailPattern, testPhonePattern)
		if _, err := members.Create(ctx, "M1", "Alice", "alice@example.com", "123", credits); err != nil {
			t.Fatalf("create member: %v", err)
		}
		return NewCreditService(store), members
	}

	t.Run("add and deduct", func(t *testing.T) {
		credits, members := newMemberWithCredits(t, 100)

		if err := credits.AddCredits(ctx, "M1", 25); err != nil {
			t.Fatalf("AddCredits failed: %v", err)
		}
		if err := credits.DeductCredits(ctx, "M1", 40); err != nil {
			t.Fatalf("DeductCredits failed: %v", err)
		}
		m, _ := members.Get(ctx, "M1")
		if m.Credits != 85 {
			t.Errorf("credits = %d, want 85", m.Credits)
		}
	})

	t.Run("negative amounts leave balance unchanged", func(t *testing.T) {
		credits, members := newMemberWithCredits(t, 100)

		if err := credits.AddCredits(ctx, "M1", -5); !errors.Is(err, models.ErrNegativeAmount) {
			t.Errorf("AddCredits error = %v, want ErrNegativeAmount", err)
		}
		if err := credits.DeductCredits(ctx, "M1", -5); !errors.Is(err, models.ErrNegativeAmount) {
			t.Errorf("DeductCredits error = %v, want ErrNegativeAmount", err)
		}
		m, _ := members.Get(ctx, "M1")
		if m.Credits != 100 {
			t.Errorf("credits = %d, want 100", m.Credits)
		}
	})

	t.Run("deduct may drive balance negative", func(t *testing.T) {
		credits, members := newMemberWithCredits(t, 30)

		if err := credits.DeductCredits(ctx, "M1", 50); err != nil {
			t.Fatalf("DeductCredits failed: %v", err)
		}
		m, _ := members.Get(ctx, "M1")
		if m.Credits != -20 {
			t.Errorf("credits = %d, want -20", m.Credits)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		credits, _ := newMemberWithCredits(t, 0)

		if err := credits.AddCredits(ctx, "M9", 10); !errors.Is(err, models.ErrMemberNotFound) {
			t.Errorf("AddCredits error = %v, want ErrMemberNotFound", err)
		}
		if err := credits.DeductCredits(ctx, "M9", 10); !errors.Is(err, models.ErrMemberNotFound) {
			t.Errorf("DeductCredits error = %v, want ErrMemberNotFound", err)
		}
	})
}
