package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mnordli/stufflend/internal/models"
)

// AddItem inserts an item after checking ID uniqueness.
func (s *Store) AddItem(ctx context.Context, item models.Item) error {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE id = ?", item.ID,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check item id: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicateID
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO items (id, name, cost, owner_id) VALUES (?, ?, ?, ?)",
		item.ID, item.Name, item.Cost, item.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// DeleteItem removes an item by ID; absent items are a no-op.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// GetItem retrieves an item by ID.
func (s *Store) GetItem(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, cost, owner_id FROM items WHERE id = ?", id,
	).Scan(&item.ID, &item.Name, &item.Cost, &item.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to scan item: %w", err)
	}
	return item, nil
}

func (s *Store) listItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Cost, &item.OwnerID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListItems returns all items in insertion order.
func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.listItems(ctx,
		"SELECT id, name, cost, owner_id FROM items ORDER BY rowid")
}

// ListItemsByOwner returns the items owned by the given member.
func (s *Store) ListItemsByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	return s.listItems(ctx,
		"SELECT id, name, cost, owner_id FROM items WHERE owner_id = ? ORDER BY rowid", ownerID)
}

// ItemExists reports whether an item with the given ID is stored.
func (s *Store) ItemExists(ctx context.Context, id string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE id = ?", id,
	).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check item: %w", err)
	}
	return n > 0, nil
}

// UpdateItem replaces a stored item.
func (s *Store) UpdateItem(ctx context.Context, item models.Item) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = ?, cost = ?, owner_id = ? WHERE id = ?",
		item.Name, item.Cost, item.OwnerID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}
	return nil
}
