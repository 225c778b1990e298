package models

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewItem(t *testing.T) {
	item, err := NewItem("M1", "Drill", 50)
	if err != nil {
		t.Fatalf("NewItem failed: %v", err)
	}
	if item.ID == "" {
		t.Error("expected a generated item ID")
	}
	if item.OwnerID != "M1" || item.Cost != 50 {
		t.Errorf("unexpected item: %+v", item)
	}

	other, err := NewItem("M1", "Drill", 50)
	if err != nil {
		t.Fatalf("NewItem failed: %v", err)
	}
	if other.ID == item.ID {
		t.Error("expected distinct generated IDs")
	}

	if _, err := NewItem("M1", "Drill", -1); !errors.Is(err, ErrNegativeCost) {
		t.Errorf("NewItem error = %v, want ErrNegativeCost", err)
	}
}

func TestNewContract(t *testing.T) {
	item := Item{ID: "I1", Name: "Drill", Cost: 50, OwnerID: "M1"}
	borrower := Member{ID: "M2", Credits: 100}

	contract, err := NewContract("C1", item, borrower, date(2024, 1, 5), date(2024, 1, 7))
	if err != nil {
		t.Fatalf("NewContract failed: %v", err)
	}
	if !contract.Active {
		t.Error("expected new contract to be active")
	}
	if contract.ItemID != "I1" || contract.BorrowerID != "M2" {
		t.Errorf("unexpected contract: %+v", contract)
	}
	if contract.ItemCost != 50 {
		t.Errorf("item cost snapshot = %d, want 50", contract.ItemCost)
	}

	// Single-day contracts are fine; only end before start is invalid.
	if _, err := NewContract("C2", item, borrower, date(2024, 1, 5), date(2024, 1, 5)); err != nil {
		t.Errorf("single-day contract failed: %v", err)
	}
	if _, err := NewContract("C3", item, borrower, date(2024, 1, 7), date(2024, 1, 5)); !errors.Is(err, ErrInvalidEndDate) {
		t.Errorf("NewContract error = %v, want ErrInvalidEndDate", err)
	}
}

func TestConflictsWith(t *testing.T) {
	contract := func(itemID string, start, end time.Time, active bool) Contract {
		return Contract{ID: "X", ItemID: itemID, StartDate: start, EndDate: end, Active: active}
	}

	tests := []struct {
		name string
		a, b Contract
		want bool
	}{
		{
			name: "overlapping ranges on same item conflict",
			a:    contract("I1", date(2024, 1, 1), date(2024, 1, 10), true),
			b:    contract("I1", date(2024, 1, 5), date(2024, 1, 15), true),
			want: true,
		},
		{
			name: "touching boundary dates conflict",
			a:    contract("I1", date(2024, 1, 1), date(2024, 1, 10), true),
			b:    contract("I1", date(2024, 1, 10), date(2024, 1, 20), true),
			want: true,
		},
		{
			name: "adjacent ranges do not conflict",
			a:    contract("I1", date(2024, 1, 1), date(2024, 1, 9), true),
			b:    contract("I1", date(2024, 1, 10), date(2024, 1, 20), true),
			want: false,
		},
		{
			name: "containment conflicts",
			a:    contract("I1", date(2024, 1, 1), date(2024, 1, 31), true),
			b:    contract("I1", date(2024, 1, 10), date(2024, 1, 12), true),
			want: true,
		},
		{
			name: "different items never conflict",
			a:    contract("I1", date(2024, 1, 1), date(2024, 1, 10), true),
			b:    contract("I2", date(2024, 1, 1), date(2024, 1, 10), true),
			want: false,
		},
		{
			name: "inactive contract never conflicts",
			a:    contract("I1", date(2024, 1, 1), date(2024, 1, 10), false),
			b:    contract("I1", date(2024, 1, 1), date(2024, 1, 10), true),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ConflictsWith(tt.b); got != tt.want {
				t.Errorf("a.ConflictsWith(b) = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.ConflictsWith(tt.a); got != tt.want {
				t.Errorf("b.ConflictsWith(a) = %v, want %v", got, tt.want)
			}
		})
	}
}
