package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/storage"
)

// ContractService manages borrowing contracts and drives settlement.
type ContractService struct {
	contracts storage.ContractStore
	items     storage.ItemStore
	members   storage.MemberStore
	credits   *CreditService

	// current is the injected "today". AdvanceTime settles against
	// current+days but does not move it; there is no real clock here.
	current time.Time
}

// NewContractService creates a ContractService with the given backends and
// the caller-supplied current date.
func NewContractService(contracts storage.ContractStore, items storage.ItemStore,
	members storage.MemberStore, credits *CreditService, current time.Time) *ContractService {
	return &ContractService{
		contracts: contracts,
		items:     items,
		members:   members,
		credits:   credits,
		current:   current,
	}
}

// CurrentDate returns the injected current date.
func (s *ContractService) CurrentDate() time.Time {
	return s.current
}

// SetCurrentDate replaces the injected current date.
func (s *ContractService) SetCurrentDate(t time.Time) {
	s.current = t
}

// Create validates and inserts a new contract:
// the item and borrower must exist, the borrower must be able to cover the
// item's cost, the date range must be valid, and the contract must not
// conflict with any existing contract. Any failure leaves the store unchanged.
func (s *ContractService) Create(ctx context.Context, id, itemID, borrowerID string, startDate, endDate time.Time) (models.Contract, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return models.Contract{}, err
	}

	borrower, err := s.members.GetMember(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, models.ErrMemberNotFound) {
			return models.Contract{}, models.ErrBorrowerNotFound
		}
		return models.Contract{}, err
	}

	if borrower.Credits < item.Cost {
		return models.Contract{}, models.ErrInsufficientCredits
	}

	contract, err := models.NewContract(id, item, borrower, startDate, endDate)
	if err != nil {
		return models.Contract{}, err
	}

	// O(n) scan over every stored contract; the corpus is small.
	existing, err := s.contracts.ListContracts(ctx)
	if err != nil {
		return models.Contract{}, fmt.Errorf("failed to list contracts: %w", err)
	}
	for _, other := range existing {
		if other.ConflictsWith(contract) {
			return models.Contract{}, models.ErrConflictingContract
		}
	}

	if err := s.contracts.AddContract(ctx, contract); err != nil {
		return models.Contract{}, fmt.Errorf("failed to add contract: %w", err)
	}

	slog.Info("Contract created",
		"contract_id", contract.ID,
		"item_id", contract.ItemID,
		"borrower_id", contract.BorrowerID,
		"start_date", contract.StartDate.Format("2006-01-02"),
		"end_date", contract.EndDate.Format("2006-01-02"),
	)
	return contract, nil
}

// Delete removes a contract by ID.
func (s *ContractService) Delete(ctx context.Context, id string) error {
	if _, err := s.contracts.GetContract(ctx, id); err != nil {
		return err
	}
	if err := s.contracts.DeleteContract(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	slog.Info("Contract deleted", "contract_id", id)
	return nil
}

// Get retrieves a contract by ID.
func (s *ContractService) Get(ctx context.Context, id string) (models.Contract, error) {
	return s.contracts.GetContract(ctx, id)
}

// List returns all contracts in insertion order.
func (s *ContractService) List(ctx context.Context) ([]models.Contract, error) {
	return s.contracts.ListContracts(ctx)
}

// AdvanceTime settles all contracts that have expired as of the current date
// plus the given number of days: each still-active contract whose end date
// has passed is deactivated and its borrower is charged the item cost
// captured at creation. A failure settling one contract is logged and does
// not stop the remaining contracts from settling. Already-inactive contracts
// are untouched, so repeating the call never charges twice.
//
// Returns the computed settlement date.
func (s *ContractService) AdvanceTime(ctx context.Context, days int) (time.Time, error) {
	newDate := s.current.AddDate(0, 0, days)

	contracts, err := s.contracts.ListContracts(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to list contracts: %w", err)
	}

	settled := 0
	for _, contract := range contracts {
		if !contract.Active || !contract.EndDate.Before(newDate) {
			continue
		}

		if err := s.contracts.SetContractActive(ctx, contract.ID, false); err != nil {
			slog.Error("Failed to deactivate contract", "contract_id", contract.ID, "error", err)
			continue
		}
		if err := s.credits.DeductCredits(ctx, contract.BorrowerID, contract.ItemCost); err != nil {
			slog.Warn("Failed to charge borrower",
				"contract_id", contract.ID,
				"borrower_id", contract.BorrowerID,
				"amount", contract.ItemCost,
				"error", err,
			)
			continue
		}
		settled++
	}

	slog.Info("Time advanced", "days", days, "new_date", newDate.Format("2006-01-02"), "settled", settled)
	return newDate, nil
}
