package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/storage"
)

// CreditService handles the credit operations for members.
type CreditService struct {
	members storage.MemberStore
}

// NewCreditService creates a CreditService over the given member store.
func NewCreditService(members storage.MemberStore) *CreditService {
	return &CreditService{members: members}
}

// AddCredits adds a non-negative amount to a member's balance.
func (s *CreditService) AddCredits(ctx context.Context, memberID string, amount int) error {
	if amount < 0 {
		return models.ErrNegativeAmount
	}
	if err := s.members.AdjustCredits(ctx, memberID, amount); err != nil {
		return fmt.Errorf("failed to add credits: %w", err)
	}
	slog.Info("Credits added", "member_id", memberID, "amount", amount)
	return nil
}

// DeductCredits subtracts a non-negative amount from a member's balance.
// There is no balance floor: the amount is validated but the resulting
// balance may go negative. Call sites that need a floor (contract creation)
// check the member's funds before calling.
func (s *CreditService) DeductCredits(ctx context.Context, memberID string, amount int) error {
	if amount < 0 {
		return models.ErrNegativeAmount
	}
	if err := s.members.AdjustCredits(ctx, memberID, -amount); err != nil {
		return fmt.Errorf("failed to deduct credits: %w", err)
	}
	slog.Info("Credits deducted", "member_id", memberID, "amount", amount)
	return nil
}
