package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/storage"
)

// ItemService manages items and their ownership.
type ItemService struct {
	items     storage.ItemStore
	members   storage.MemberStore
	contracts storage.ContractStore
}

// NewItemService creates an ItemService with the given storage backends.
// The contract store is needed so item deletion can cancel open contracts.
func NewItemService(items storage.ItemStore, members storage.MemberStore, contracts storage.ContractStore) *ItemService {
	return &ItemService{
		items:     items,
		members:   members,
		contracts: contracts,
	}
}

// Create constructs an item owned by the given member and inserts it.
// The owner must be a registered member.
func (s *ItemService) Create(ctx context.Context, ownerID, name string, cost int) (models.Item, error) {
	if _, err := s.members.GetMember(ctx, ownerID); err != nil {
		return models.Item{}, err
	}

	item, err := models.NewItem(ownerID, name, cost)
	if err != nil {
		return models.Item{}, err
	}

	if err := s.items.AddItem(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("failed to add item: %w", err)
	}

	slog.Info("Item created", "item_id", item.ID, "owner_id", ownerID, "cost", cost)
	return item, nil
}

// Delete removes an item, first deactivating every active contract that
// references it so no open contract dangles on a removed item.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if _, err := s.items.GetItem(ctx, id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return nil
		}
		return err
	}

	canceled, err := s.contracts.CancelContractsForItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel contracts: %w", err)
	}
	if err := s.items.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	slog.Info("Item deleted", "item_id", id, "contracts_canceled", canceled)
	return nil
}

// Get retrieves an item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (models.Item, error) {
	return s.items.GetItem(ctx, id)
}

// List returns all items in insertion order.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.items.ListItems(ctx)
}

// ListByOwner returns the items owned by the given member.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	return s.items.ListItemsByOwner(ctx, ownerID)
}

// UpdateCost changes an item's rental cost. Existing contracts keep the cost
// snapshot taken when they were created.
func (s *ItemService) UpdateCost(ctx context.Context, id string, cost int) error {
	if cost < 0 {
		return models.ErrNegativeCost
	}
	item, err := s.items.GetItem(ctx, id)
	if err != nil {
		return err
	}
	item.Cost = cost
	return s.items.UpdateItem(ctx, item)
}

// TransferOwner re-assigns an item to a different registered member.
func (s *ItemService) TransferOwner(ctx context.Context, id, newOwnerID string) error {
	if _, err := s.members.GetMember(ctx, newOwnerID); err != nil {
		return err
	}
	item, err := s.items.GetItem(ctx, id)
	if err != nil {
		return err
	}
	item.OwnerID = newOwnerID
	if err := s.items.UpdateItem(ctx, item); err != nil {
		return err
	}
	slog.Info("Item ownership transferred", "item_id", id, "owner_id", newOwnerID)
	return nil
}
