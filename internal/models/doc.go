// Package models defines the core domain entities for stufflend.
//
// # Entities
//
//   - Member: a participant who can own items and borrow items from others
//   - Item: a rentable asset with an owner and a cost
//   - Contract: a time-bounded borrowing agreement between a borrower and an item
//
// Credits are the currency members pay each other for borrowed item usage.
//
// # Design Principles
//
//  1. **Value semantics**: entities are plain value structs; the storage layer
//     owns the canonical copies and hands out snapshots, so callers can never
//     corrupt stored state through a returned entity.
//  2. **Avoid circular references**: relationships use ID strings
//     (Item.OwnerID, Contract.ItemID/BorrowerID) instead of pointers.
//  3. **Validate on construction**: constructors reject invalid values with
//     the sentinel errors in errors.go; a constructed entity always satisfies
//     its invariants.
package models
