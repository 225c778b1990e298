// Package service implements the domain operations on top of the storage
// layer: member and item management, contract creation with conflict
// detection, credit transfer, and time-advance settlement.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/storage"
)

// MemberService manages member accounts.
type MemberService struct {
	store        storage.MemberStore
	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
}

// NewMemberService creates a MemberService with the given storage backend and
// validation patterns. The patterns are supplied by the caller so the accepted
// email and phone formats stay configurable.
func NewMemberService(store storage.MemberStore, emailPattern, phonePattern *regexp.Regexp) *MemberService {
	return &MemberService{
		store:        store,
		emailPattern: emailPattern,
		phonePattern: phonePattern,
	}
}

// Create validates the fields, constructs a member, and inserts it.
func (s *MemberService) Create(ctx context.Context, id, name, email, phone string, credits int) (models.Member, error) {
	member, err := models.NewMember(id, name, email, phone, credits, s.emailPattern, s.phonePattern)
	if err != nil {
		return models.Member{}, err
	}

	if err := s.store.AddMember(ctx, member); err != nil {
		return models.Member{}, fmt.Errorf("failed to add member: %w", err)
	}

	slog.Info("Member created", "member_id", member.ID, "credits", member.Credits)
	return member, nil
}

// Delete removes a member by ID. The member's items and contracts are left in
// place; only an explicit item deletion cascades.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteMember(ctx, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	slog.Info("Member deleted", "member_id", id)
	return nil
}

// Get retrieves a member by ID.
func (s *MemberService) Get(ctx context.Context, id string) (models.Member, error) {
	return s.store.GetMember(ctx, id)
}

// FindByEmail retrieves the member with the given email.
func (s *MemberService) FindByEmail(ctx context.Context, email string) (models.Member, error) {
	return s.store.GetMemberByEmail(ctx, email)
}

// FindByPhone retrieves the member with the given phone number.
func (s *MemberService) FindByPhone(ctx context.Context, phone string) (models.Member, error) {
	return s.store.GetMemberByPhone(ctx, phone)
}

// List returns all members in insertion order.
func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	return s.store.ListMembers(ctx)
}

// Exists reports whether a member with the given ID is registered.
func (s *MemberService) Exists(ctx context.Context, id string) (bool, error) {
	return s.store.MemberExists(ctx, id)
}

// UpdateName changes a member's display name.
func (s *MemberService) UpdateName(ctx context.Context, id, name string) error {
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		return err
	}
	member.Name = name
	return s.store.UpdateMember(ctx, member)
}

// UpdateEmail changes a member's email after validating the format.
// Uniqueness against other members is enforced by the store.
func (s *MemberService) UpdateEmail(ctx context.Context, id, email string) error {
	if err := models.ValidateEmail(email, s.emailPattern); err != nil {
		return err
	}
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		return err
	}
	member.Email = email
	return s.store.UpdateMember(ctx, member)
}

// UpdatePhone changes a member's phone number after validating the format.
func (s *MemberService) UpdatePhone(ctx context.Context, id, phone string) error {
	if err := models.ValidatePhone(phone, s.phonePattern); err != nil {
		return err
	}
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		return err
	}
	member.Phone = phone
	return s.store.UpdateMember(ctx, member)
}
