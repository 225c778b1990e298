package models

import "regexp"

// Member represents a participant in the lending economy.
type Member struct {
	// ID is the unique identifier for the member, chosen by the caller.
	// It is never changed after construction.
	ID string

	// Name is the display name of the member.
	Name string

	// Email is the member's email address (unique across all members).
	Email string

	// Phone is the member's phone number (unique across all members).
	Phone string

	// Credits is the member's currency balance. Construction requires a
	// non-negative balance; settlement deductions may later drive it below
	// zero (see CreditService.DeductCredits).
	Credits int
}

// NewMember validates the given fields and returns a Member.
// The email and phone patterns are injected by the caller so the accepted
// formats stay configurable; they must match the full value.
func NewMember(id, name, email, phone string, credits int, emailPattern, phonePattern *regexp.Regexp) (Member, error) {
	if credits < 0 {
		return Member{}, ErrNegativeCredits
	}
	if err := ValidateEmail(email, emailPattern); err != nil {
		return Member{}, err
	}
	if err := ValidatePhone(phone, phonePattern); err != nil {
		return Member{}, err
	}

	return Member{
		ID:      id,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Credits: credits,
	}, nil
}

// ValidateEmail checks an email address against the injected pattern.
func ValidateEmail(email string, pattern *regexp.Regexp) error {
	if email == "" || !pattern.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidatePhone checks a phone number against the injected pattern.
func ValidatePhone(phone string, pattern *regexp.Regexp) error {
	if phone == "" || !pattern.MatchString(phone) {
		return ErrInvalidPhoneNumber
	}
	return nil
}
