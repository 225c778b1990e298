package memory

import (
	"context"

	"github.com/mnordli/stufflend/internal/models"
)

// AddContract inserts a contract after checking ID uniqueness.
func (s *Store) AddContract(_ context.Context, contract models.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contracts[contract.ID]; ok {
		return models.ErrDuplicateID
	}

	s.contracts[contract.ID] = contract
	s.contractOrder = append(s.contractOrder, contract.ID)
	s.contractsByBorrower[contract.BorrowerID] = append(s.contractsByBorrower[contract.BorrowerID], contract.ID)
	return nil
}

// DeleteContract removes a contract by ID; absent contracts are a no-op.
func (s *Store) DeleteContract(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract, ok := s.contracts[id]
	if !ok {
		return nil
	}
	delete(s.contracts, id)
	s.contractOrder = removeID(s.contractOrder, id)
	s.contractsByBorrower[contract.BorrowerID] = removeID(s.contractsByBorrower[contract.BorrowerID], id)
	return nil
}

// GetContract retrieves a contract snapshot by ID.
func (s *Store) GetContract(_ context.Context, id string) (models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract, ok := s.contracts[id]
	if !ok {
		return models.Contract{}, models.ErrContractNotFound
	}
	return contract, nil
}

// ListContracts returns snapshots of all contracts in insertion order.
func (s *Store) ListContracts(_ context.Context) ([]models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contracts := make([]models.Contract, 0, len(s.contractOrder))
	for _, id := range s.contractOrder {
		contracts = append(contracts, s.contracts[id])
	}
	return contracts, nil
}

// ListContractsByBorrower returns the contracts borrowed by the given member.
func (s *Store) ListContractsByBorrower(_ context.Context, borrowerID string) ([]models.Contract, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.contractsByBorrower[borrowerID]
	contracts := make([]models.Contract, 0, len(ids))
	for _, id := range ids {
		contracts = append(contracts, s.contracts[id])
	}
	return contracts, nil
}

// SetContractActive flips the active flag of a stored contract.
func (s *Store) SetContractActive(_ context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contract, ok := s.contracts[id]
	if !ok {
		return models.ErrContractNotFound
	}
	contract.Active = active
	s.contracts[id] = contract
	return nil
}

// CancelContractsForItem deactivates every active contract on the given item.
func (s *Store) CancelContractsForItem(_ context.Context, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	canceled := 0
	for _, id := range s.contractOrder {
		contract := s.contracts[id]
		if contract.ItemID == itemID && contract.Active {
			contract.Active = false
			s.contracts[id] = contract
			canceled++
		}
	}
	return canceled, nil
}
