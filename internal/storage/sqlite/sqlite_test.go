package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mnordli/stufflend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New()
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSQLiteMemberStore(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		store := newTestStore(t)
		member := models.Member{ID: "M1", Name: "Alice", Email: "a@example.com", Phone: "111", Credits: 100}
		if err := store.AddMember(ctx, member); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}

		got, err := store.GetMember(ctx, "M1")
		if err != nil {
			t.Fatalf("GetMember failed: %v", err)
		}
		if got != member {
			t.Errorf("GetMember = %+v, want %+v", got, member)
		}

		got, err = store.GetMemberByEmail(ctx, "a@example.com")
		if err != nil || got.ID != "M1" {
			t.Errorf("GetMemberByEmail = %+v, %v", got, err)
		}
		got, err = store.GetMemberByPhone(ctx, "111")
		if err != nil || got.ID != "M1" {
			t.Errorf("GetMemberByPhone = %+v, %v", got, err)
		}
	})

	t.Run("duplicates map to field-specific errors", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.AddMember(ctx, models.Member{ID: "M1", Email: "a@example.com", Phone: "111"}); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}

		if err := store.AddMember(ctx, models.Member{ID: "M1", Email: "b@example.com", Phone: "222"}); !errors.Is(err, models.ErrDuplicateID) {
			t.Errorf("duplicate id error = %v, want ErrDuplicateID", err)
		}
		if err := store.AddMember(ctx, models.Member{ID: "M2", Email: "a@example.com", Phone: "222"}); !errors.Is(err, models.ErrDuplicateEmail) {
			t.Errorf("duplicate email error = %v, want ErrDuplicateEmail", err)
		}
		if err := store.AddMember(ctx, models.Member{ID: "M2", Email: "b@example.com", Phone: "111"}); !errors.Is(err, models.ErrDuplicatePhone) {
			t.Errorf("duplicate phone error = %v, want ErrDuplicatePhone", err)
		}

		members, err := store.ListMembers(ctx)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 {
			t.Errorf("stored members = %d, want 1", len(members))
		}
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		store := newTestStore(t)
		ids := []string{"M3", "M1", "M2"}
		for i, id := range ids {
			member := models.Member{ID: id, Email: id + "@example.com", Phone: string(rune('1' + i))}
			if err := store.AddMember(ctx, member); err != nil {
				t.Fatalf("AddMember(%s) failed: %v", id, err)
			}
		}

		members, err := store.ListMembers(ctx)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		for i, id := range ids {
			if members[i].ID != id {
				t.Fatalf("members[%d].ID = %s, want %s", i, members[i].ID, id)
			}
		}
	})

	t.Run("adjust credits can go negative", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.AddMember(ctx, models.Member{ID: "M1", Email: "a@example.com", Phone: "111", Credits: 10}); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		if err := store.AdjustCredits(ctx, "M1", -30); err != nil {
			t.Fatalf("AdjustCredits failed: %v", err)
		}
		member, _ := store.GetMember(ctx, "M1")
		if member.Credits != -20 {
			t.Errorf("credits = %d, want -20", member.Credits)
		}
		if err := store.AdjustCredits(ctx, "missing", 1); !errors.Is(err, models.ErrMemberNotFound) {
			t.Errorf("AdjustCredits error = %v, want ErrMemberNotFound", err)
		}
	})
}

func TestSQLiteItemStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item := models.Item{ID: "I1", Name: "Drill", Cost: 50, OwnerID: "M1"}
	if err := store.AddItem(ctx, item); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if err := store.AddItem(ctx, item); !errors.Is(err, models.ErrDuplicateID) {
		t.Errorf("duplicate item error = %v, want ErrDuplicateID", err)
	}

	got, err := store.GetItem(ctx, "I1")
	if err != nil || got != item {
		t.Errorf("GetItem = %+v, %v", got, err)
	}

	if err := store.AddItem(ctx, models.Item{ID: "I2", Name: "Saw", Cost: 20, OwnerID: "M2"}); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	owned, err := store.ListItemsByOwner(ctx, "M1")
	if err != nil || len(owned) != 1 || owned[0].ID != "I1" {
		t.Errorf("ListItemsByOwner = %+v, %v", owned, err)
	}

	item.Cost = 75
	if err := store.UpdateItem(ctx, item); err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	got, _ = store.GetItem(ctx, "I1")
	if got.Cost != 75 {
		t.Errorf("cost after update = %d, want 75", got.Cost)
	}

	if err := store.DeleteItem(ctx, "I1"); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := store.GetItem(ctx, "I1"); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("GetItem after delete error = %v, want ErrItemNotFound", err)
	}
}

func TestSQLiteContractStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	contract := models.Contract{
		ID:         "C1",
		ItemID:     "I1",
		ItemCost:   50,
		BorrowerID: "M2",
		StartDate:  date(2024, 1, 5),
		EndDate:    date(2024, 1, 7),
		Active:     true,
	}
	if err := store.AddContract(ctx, contract); err != nil {
		t.Fatalf("AddContract failed: %v", err)
	}
	if err := store.AddContract(ctx, contract); !errors.Is(err, models.ErrDuplicateID) {
		t.Errorf("duplicate contract error = %v, want ErrDuplicateID", err)
	}

	got, err := store.GetContract(ctx, "C1")
	if err != nil {
		t.Fatalf("GetContract failed: %v", err)
	}
	if !got.StartDate.Equal(contract.StartDate) || !got.EndDate.Equal(contract.EndDate) {
		t.Errorf("dates not preserved: %+v", got)
	}
	if got.ItemCost != 50 || !got.Active {
		t.Errorf("GetContract = %+v", got)
	}

	if err := store.SetContractActive(ctx, "C1", false); err != nil {
		t.Fatalf("SetContractActive failed: %v", err)
	}
	got, _ = store.GetContract(ctx, "C1")
	if got.Active {
		t.Error("contract still active")
	}
	if err := store.SetContractActive(ctx, "missing", false); !errors.Is(err, models.ErrContractNotFound) {
		t.Errorf("SetContractActive error = %v, want ErrContractNotFound", err)
	}

	// Cancel touches only active contracts on the item.
	store.AddContract(ctx, models.Contract{ID: "C2", ItemID: "I1", BorrowerID: "M2",
		StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 3), Active: true})
	store.AddContract(ctx, models.Contract{ID: "C3", ItemID: "I9", BorrowerID: "M2",
		StartDate: date(2024, 2, 1), EndDate: date(2024, 2, 3), Active: true})

	canceled, err := store.CancelContractsForItem(ctx, "I1")
	if err != nil {
		t.Fatalf("CancelContractsForItem failed: %v", err)
	}
	if canceled != 1 {
		t.Errorf("canceled = %d, want 1", canceled)
	}
	c3, _ := store.GetContract(ctx, "C3")
	if !c3.Active {
		t.Error("contract on another item was canceled")
	}
}
