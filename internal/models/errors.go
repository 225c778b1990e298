package models

import "errors"

// Validation and lookup failures shared across the storage and service layers.
// Every failure aborts the single operation that raised it and leaves stored
// state unchanged; callers match with errors.Is and decide how to recover.
var (
	// ErrDuplicateID is returned when an entity with the same ID already exists.
	ErrDuplicateID = errors.New("id already exists")

	// ErrDuplicateEmail is returned when a member with the same email already exists.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicatePhone is returned when a member with the same phone number already exists.
	ErrDuplicatePhone = errors.New("phone number already exists")

	// ErrNegativeCredits is returned when a member is constructed with a negative balance.
	ErrNegativeCredits = errors.New("credits must not be negative")

	// ErrNegativeAmount is returned when a credit transfer is attempted with a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNegativeCost is returned when an item cost is set to a negative value.
	ErrNegativeCost = errors.New("cost must not be negative")

	// ErrInvalidEndDate is returned when a contract's end date precedes its start date.
	ErrInvalidEndDate = errors.New("end date precedes start date")

	// ErrInvalidEmailFormat is returned when an email does not match the configured pattern.
	ErrInvalidEmailFormat = errors.New("invalid email format")

	// ErrInvalidPhoneNumber is returned when a phone number does not match the configured pattern.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	// ErrMemberNotFound is returned when a member lookup finds no match.
	ErrMemberNotFound = errors.New("member not found")

	// ErrItemNotFound is returned when an item lookup finds no match.
	ErrItemNotFound = errors.New("item not found")

	// ErrBorrowerNotFound is returned when the borrower of a new contract does not exist.
	ErrBorrowerNotFound = errors.New("borrower not found")

	// ErrContractNotFound is returned when a contract lookup finds no match.
	ErrContractNotFound = errors.New("contract not found")

	// ErrInsufficientCredits is returned when a borrower cannot cover an item's cost.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrConflictingContract is returned when a new contract overlaps an active
	// contract on the same item.
	ErrConflictingContract = errors.New("conflicting contract")
)
