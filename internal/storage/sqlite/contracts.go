package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mnordli/stufflend/internal/models"
)

// AddContract inserts a contract after checking ID uniqueness.
func (s *Store) AddContract(ctx context.Context, contract models.Contract) error {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contracts WHERE id = ?", contract.ID,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check contract id: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicateID
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contracts (id, item_id, item_cost, borrower_id, start_date, end_date, active) VALUES (?, ?, ?, ?, ?, ?, ?)",
		contract.ID, contract.ItemID, contract.ItemCost, contract.BorrowerID,
		formatDate(contract.StartDate), formatDate(contract.EndDate), contract.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %w", err)
	}
	return nil
}

// DeleteContract removes a contract by ID; absent contracts are a no-op.
func (s *Store) DeleteContract(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM contracts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	return nil
}

func scanContract(scan func(dest ...any) error) (models.Contract, error) {
	var contract models.Contract
	var start, end string
	if err := scan(&contract.ID, &contract.ItemID, &contract.ItemCost,
		&contract.BorrowerID, &start, &end, &contract.Active); err != nil {
		return models.Contract{}, err
	}

	var err error
	if contract.StartDate, err = parseDate(start); err != nil {
		return models.Contract{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	if contract.EndDate, err = parseDate(end); err != nil {
		return models.Contract{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	return contract, nil
}

// GetContract retrieves a contract by ID.
func (s *Store) GetContract(ctx context.Context, id string) (models.Contract, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, item_id, item_cost, borrower_id, start_date, end_date, active FROM contracts WHERE id = ?", id)
	contract, err := scanContract(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contract{}, models.ErrContractNotFound
	}
	if err != nil {
		return models.Contract{}, fmt.Errorf("failed to scan contract: %w", err)
	}
	return contract, nil
}

func (s *Store) listContracts(ctx context.Context, query string, args ...any) ([]models.Contract, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		contract, err := scanContract(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

// ListContracts returns all contracts in insertion order.
func (s *Store) ListContracts(ctx context.Context) ([]models.Contract, error) {
	return s.listContracts(ctx,
		"SELECT id, item_id, item_cost, borrower_id, start_date, end_date, active FROM contracts ORDER BY rowid")
}

// ListContractsByBorrower returns the contracts borrowed by the given member.
func (s *Store) ListContractsByBorrower(ctx context.Context, borrowerID string) ([]models.Contract, error) {
	return s.listContracts(ctx,
		"SELECT id, item_id, item_cost, borrower_id, start_date, end_date, active FROM contracts WHERE borrower_id = ? ORDER BY rowid",
		borrowerID)
}

// SetContractActive flips the active flag of a stored contract.
func (s *Store) SetContractActive(ctx context.Context, id string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contracts SET active = ? WHERE id = ?", active, id)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	if affected == 0 {
		return models.ErrContractNotFound
	}
	return nil
}

// CancelContractsForItem deactivates every active contract on the given item.
func (s *Store) CancelContractsForItem(ctx context.Context, itemID string) (int, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contracts SET active = 0 WHERE item_id = ? AND active = 1", itemID)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel contracts: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to cancel contracts: %w", err)
	}
	return int(affected), nil
}
