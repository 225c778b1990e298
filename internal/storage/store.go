// Package storage provides abstractions for the domain data stores.
package storage

import (
	"context"

	"github.com/mnordli/stufflend/internal/models"
)

// MemberStore defines the repository interface for members.
// Listing preserves insertion order; every returned entity is a detached
// snapshot, so mutating it does not touch stored state.
type MemberStore interface {
	// AddMember inserts a new member. It fails with models.ErrDuplicateID,
	// models.ErrDuplicateEmail, or models.ErrDuplicatePhone if any existing
	// member collides on that field; nothing is inserted on failure.
	AddMember(ctx context.Context, member models.Member) error

	// DeleteMember removes the member with the given ID. Deleting an absent
	// member is a no-op.
	DeleteMember(ctx context.Context, id string) error

	// GetMember retrieves a member by ID.
	// Returns models.ErrMemberNotFound if no member matches.
	GetMember(ctx context.Context, id string) (models.Member, error)

	// GetMemberByEmail retrieves the single member with the given email.
	// Returns models.ErrMemberNotFound if no member matches.
	GetMemberByEmail(ctx context.Context, email string) (models.Member, error)

	// GetMemberByPhone retrieves the single member with the given phone number.
	// Returns models.ErrMemberNotFound if no member matches.
	GetMemberByPhone(ctx context.Context, phone string) (models.Member, error)

	// ListMembers returns a snapshot of all members in insertion order.
	ListMembers(ctx context.Context) ([]models.Member, error)

	// MemberExists reports whether a member with the given ID is stored.
	MemberExists(ctx context.Context, id string) (bool, error)

	// UpdateMember replaces the stored member identified by member.ID.
	// Email and phone uniqueness against the other members still hold.
	// Returns models.ErrMemberNotFound if no member matches.
	UpdateMember(ctx context.Context, member models.Member) error

	// AdjustCredits applies a signed delta to a member's credit balance.
	// The balance may go negative; transfer amounts are validated in the
	// service layer, not here.
	AdjustCredits(ctx context.Context, id string, delta int) error
}

// ItemStore defines the repository interface for items.
type ItemStore interface {
	// AddItem inserts a new item. Fails with models.ErrDuplicateID if an
	// item with the same ID is already stored.
	AddItem(ctx context.Context, item models.Item) error

	// DeleteItem removes the item with the given ID. Deleting an absent
	// item is a no-op.
	DeleteItem(ctx context.Context, id string) error

	// GetItem retrieves an item by ID.
	// Returns models.ErrItemNotFound if no item matches.
	GetItem(ctx context.Context, id string) (models.Item, error)

	// ListItems returns a snapshot of all items in insertion order.
	ListItems(ctx context.Context) ([]models.Item, error)

	// ListItemsByOwner returns the items owned by the given member,
	// in insertion order.
	ListItemsByOwner(ctx context.Context, ownerID string) ([]models.Item, error)

	// ItemExists reports whether an item with the given ID is stored.
	ItemExists(ctx context.Context, id string) (bool, error)

	// UpdateItem replaces the stored item identified by item.ID.
	// Returns models.ErrItemNotFound if no item matches.
	UpdateItem(ctx context.Context, item models.Item) error
}

// ContractStore defines the repository interface for contracts.
type ContractStore interface {
	// AddContract inserts a new contract. Fails with models.ErrDuplicateID
	// if a contract with the same ID is already stored.
	AddContract(ctx context.Context, contract models.Contract) error

	// DeleteContract removes the contract with the given ID. Deleting an
	// absent contract is a no-op.
	DeleteContract(ctx context.Context, id string) error

	// GetContract retrieves a contract by ID.
	// Returns models.ErrContractNotFound if no contract matches.
	GetContract(ctx context.Context, id string) (models.Contract, error)

	// ListContracts returns a snapshot of all contracts in insertion order.
	ListContracts(ctx context.Context) ([]models.Contract, error)

	// ListContractsByBorrower returns the contracts borrowed by the given
	// member, in insertion order.
	ListContractsByBorrower(ctx context.Context, borrowerID string) ([]models.Contract, error)

	// SetContractActive flips the active flag of the contract with the
	// given ID. Returns models.ErrContractNotFound if no contract matches.
	SetContractActive(ctx context.Context, id string, active bool) error

	// CancelContractsForItem deactivates every active contract referencing
	// the given item and returns how many were deactivated. Contracts are
	// not deleted, so the history of a removed item stays visible.
	CancelContractsForItem(ctx context.Context, itemID string) (int, error)
}

// Store combines the three repositories. This abstraction allows swapping
// backends (in-memory, SQLite) without changing the service layer.
type Store interface {
	MemberStore
	ItemStore
	ContractStore

	// Close releases any resources held by the store.
	Close() error
}
