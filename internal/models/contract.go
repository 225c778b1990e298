package models

import "time"

// Contract represents a time-bounded borrowing agreement between a borrower
// and an item. Dates carry date-only semantics; both endpoints are inclusive.
type Contract struct {
	// ID is the unique identifier for the contract, chosen by the caller.
	ID string

	// ItemID is the ID of the borrowed item.
	ItemID string

	// ItemCost is the item's rental cost captured at contract creation.
	// Settlement charges this snapshot, so later cost updates on the item
	// do not change what an existing contract costs.
	ItemCost int

	// BorrowerID is the ID of the member borrowing the item.
	BorrowerID string

	// StartDate is the first day of the borrowing period.
	StartDate time.Time

	// EndDate is the last day of the borrowing period. Never before StartDate.
	EndDate time.Time

	// Active reports whether the contract is still open. Contracts are
	// created active and deactivated exactly once, either by settlement
	// when their end date has passed or by cascade when their item is
	// deleted. There is no way back to active.
	Active bool
}

// NewContract validates the date range and returns an active Contract
// binding the borrower to the item for the given period.
func NewContract(id string, item Item, borrower Member, startDate, endDate time.Time) (Contract, error) {
	if endDate.Before(startDate) {
		return Contract{}, ErrInvalidEndDate
	}

	return Contract{
		ID:         id,
		ItemID:     item.ID,
		ItemCost:   item.Cost,
		BorrowerID: borrower.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Active:     true,
	}, nil
}

// ConflictsWith reports whether this contract conflicts with another:
// both reference the same item, both are active, and their date ranges
// overlap. Ranges are closed intervals, so touching boundary dates count
// as overlapping.
func (c Contract) ConflictsWith(other Contract) bool {
	return c.ItemID == other.ItemID &&
		c.Active && other.Active &&
		!(c.EndDate.Before(other.StartDate) || c.StartDate.After(other.EndDate))
}
