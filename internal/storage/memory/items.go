package memory

import (
	"context"

	"github.com/mnordli/stufflend/internal/models"
)

// AddItem inserts an item after checking ID uniqueness.
func (s *Store) AddItem(_ context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; ok {
		return models.ErrDuplicateID
	}

	s.items[item.ID] = item
	s.itemOrder = append(s.itemOrder, item.ID)
	s.itemsByOwner[item.OwnerID] = append(s.itemsByOwner[item.OwnerID], item.ID)
	return nil
}

// DeleteItem removes an item by ID; absent items are a no-op.
func (s *Store) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil
	}
	delete(s.items, id)
	s.itemOrder = removeID(s.itemOrder, id)
	s.itemsByOwner[item.OwnerID] = removeID(s.itemsByOwner[item.OwnerID], id)
	return nil
}

// GetItem retrieves an item snapshot by ID.
func (s *Store) GetItem(_ context.Context, id string) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

// ListItems returns snapshots of all items in insertion order.
func (s *Store) ListItems(_ context.Context) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.Item, 0, len(s.itemOrder))
	for _, id := range s.itemOrder {
		items = append(items, s.items[id])
	}
	return items, nil
}

// ListItemsByOwner returns the items owned by the given member.
func (s *Store) ListItemsByOwner(_ context.Context, ownerID string) ([]models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.itemsByOwner[ownerID]
	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.items[id])
	}
	return items, nil
}

// ItemExists reports whether an item with the given ID is stored.
func (s *Store) ItemExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.items[id]
	return ok, nil
}

// UpdateItem replaces a stored item, moving the owner index entry if
// ownership changed.
func (s *Store) UpdateItem(_ context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.items[item.ID]
	if !ok {
		return models.ErrItemNotFound
	}
	if previous.OwnerID != item.OwnerID {
		s.itemsByOwner[previous.OwnerID] = removeID(s.itemsByOwner[previous.OwnerID], item.ID)
		s.itemsByOwner[item.OwnerID] = append(s.itemsByOwner[item.OwnerID], item.ID)
	}

	s.items[item.ID] = item
	return nil
}
