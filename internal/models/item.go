package models

import "github.com/google/uuid"

// Item represents a rentable asset owned by exactly one member.
type Item struct {
	// ID is the unique identifier for the item (UUID format, generated).
	ID string

	// Name is the display name of the item.
	Name string

	// Cost is the rental cost in credits, charged to the borrower when a
	// contract on this item is settled. Never negative.
	Cost int

	// OwnerID is the ID of the member who owns the item. Ownership is
	// re-assignable through ItemService.TransferOwner.
	OwnerID string
}

// NewItem validates the cost, generates a fresh ID, and returns an Item
// owned by the given member.
func NewItem(ownerID, name string, cost int) (Item, error) {
	if cost < 0 {
		return Item{}, ErrNegativeCost
	}

	return Item{
		ID:      uuid.New().String(),
		Name:    name,
		Cost:    cost,
		OwnerID: ownerID,
	}, nil
}
