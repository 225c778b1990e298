package models

import (
	"errors"
	"regexp"
	"testing"
)

var (
	testEmailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)
	testPhonePattern = regexp.MustCompile(`^\d+$`)
)

func TestNewMember(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		phone   string
		credits int
		wantErr error
	}{
		{
			name:    "valid member",
			email:   "alice@example.com",
			phone:   "1234567890",
			credits: 100,
		},
		{
			name:    "zero credits is valid",
			email:   "bob@example.com",
			phone:   "0987654321",
			credits: 0,
		},
		{
			name:    "negative credits rejected",
			email:   "carol@example.com",
			phone:   "1112223334",
			credits: -1,
			wantErr: ErrNegativeCredits,
		},
		{
			name:    "malformed email rejected",
			email:   "not-an-email",
			phone:   "1234567890",
			credits: 10,
			wantErr: ErrInvalidEmailFormat,
		},
		{
			name:    "empty email rejected",
			email:   "",
			phone:   "1234567890",
			credits: 10,
			wantErr: ErrInvalidEmailFormat,
		},
		{
			name:    "phone with letters rejected",
			email:   "dave@example.com",
			phone:   "12ab34",
			credits: 10,
			wantErr: ErrInvalidPhoneNumber,
		},
		{
			name:    "empty phone rejected",
			email:   "dave@example.com",
			phone:   "",
			credits: 10,
			wantErr: ErrInvalidPhoneNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, err := NewMember("M1", "Test Member", tt.email, tt.phone, tt.credits,
				testEmailPattern, testPhonePattern)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewMember error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMember failed: %v", err)
			}
			if member.ID != "M1" || member.Email != tt.email || member.Phone != tt.phone {
				t.Errorf("unexpected member: %+v", member)
			}
			if member.Credits != tt.credits {
				t.Errorf("credits = %d, want %d", member.Credits, tt.credits)
			}
		})
	}
}

func TestNewMemberCustomPatterns(t *testing.T) {
	// The accepted formats come from the injected patterns, not the model.
	strictPhone := regexp.MustCompile(`^\d{3}-\d{4}$`)

	if _, err := NewMember("M1", "T", "t@example.com", "555-0123", 0, testEmailPattern, strictPhone); err != nil {
		t.Fatalf("NewMember with matching custom pattern failed: %v", err)
	}
	if _, err := NewMember("M1", "T", "t@example.com", "5550123", 0, testEmailPattern, strictPhone); !errors.Is(err, ErrInvalidPhoneNumber) {
		t.Fatalf("NewMember error = %v, want ErrInvalidPhoneNumber", err)
	}
}
