// Package memory provides the canonical in-memory implementation of the
// storage.Store interface. Entities are held as values keyed by ID, with
// side slices preserving insertion order and index maps linking members to
// the items they own and the contracts they borrow under.
//
// The store is meant for a single logical caller; the mutex only makes the
// uniqueness-check-then-insert sequences one critical section each, so a
// concurrent wrapper stays sound.
package memory

import (
	"sync"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store with plain maps and slices.
type Store struct {
	mu sync.Mutex

	members     map[string]models.Member
	memberOrder []string

	items        map[string]models.Item
	itemOrder    []string
	itemsByOwner map[string][]string

	contracts           map[string]models.Contract
	contractOrder       []string
	contractsByBorrower map[string][]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		members:             make(map[string]models.Member),
		items:               make(map[string]models.Item),
		itemsByOwner:        make(map[string][]string),
		contracts:           make(map[string]models.Contract),
		contractsByBorrower: make(map[string][]string),
	}
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}

// removeID deletes the first occurrence of id from order, keeping the
// remaining elements in place.
func removeID(order []string, id string) []string {
	for i, existing := range order {
		if existing == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
