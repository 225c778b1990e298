package memory

import (
	"context"

	"github.com/mnordli/stufflend/internal/models"
)

// AddMember inserts a member after checking ID, email, and phone uniqueness.
func (s *Store) AddMember(_ context.Context, member models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; ok {
		return models.ErrDuplicateID
	}
	for _, id := range s.memberOrder {
		existing := s.members[id]
		if existing.Email == member.Email {
			return models.ErrDuplicateEmail
		}
		if existing.Phone == member.Phone {
			return models.ErrDuplicatePhone
		}
	}

	s.members[member.ID] = member
	s.memberOrder = append(s.memberOrder, member.ID)
	return nil
}

// DeleteMember removes a member by ID; absent members are a no-op.
func (s *Store) DeleteMember(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return nil
	}
	delete(s.members, id)
	s.memberOrder = removeID(s.memberOrder, id)
	return nil
}

// GetMember retrieves a member snapshot by ID.
func (s *Store) GetMember(_ context.Context, id string) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return models.Member{}, models.ErrMemberNotFound
	}
	return member, nil
}

// GetMemberByEmail retrieves the member with the given email.
func (s *Store) GetMemberByEmail(_ context.Context, email string) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.memberOrder {
		if member := s.members[id]; member.Email == email {
			return member, nil
		}
	}
	return models.Member{}, models.ErrMemberNotFound
}

// GetMemberByPhone retrieves the member with the given phone number.
func (s *Store) GetMemberByPhone(_ context.Context, phone string) (models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.memberOrder {
		if member := s.members[id]; member.Phone == phone {
			return member, nil
		}
	}
	return models.Member{}, models.ErrMemberNotFound
}

// ListMembers returns snapshots of all members in insertion order.
func (s *Store) ListMembers(_ context.Context) ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]models.Member, 0, len(s.memberOrder))
	for _, id := range s.memberOrder {
		members = append(members, s.members[id])
	}
	return members, nil
}

// MemberExists reports whether a member with the given ID is stored.
func (s *Store) MemberExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.members[id]
	return ok, nil
}

// UpdateMember replaces a stored member, re-checking email and phone
// uniqueness against everyone else.
func (s *Store) UpdateMember(_ context.Context, member models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; !ok {
		return models.ErrMemberNotFound
	}
	for _, id := range s.memberOrder {
		if id == member.ID {
			continue
		}
		existing := s.members[id]
		if existing.Email == member.Email {
			return models.ErrDuplicateEmail
		}
		if existing.Phone == member.Phone {
			return models.ErrDuplicatePhone
		}
	}

	s.members[member.ID] = member
	return nil
}

// AdjustCredits applies a signed delta to a member's balance.
func (s *Store) AdjustCredits(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		return models.ErrMemberNotFound
	}
	member.Credits += delta
	s.members[id] = member
	return nil
}
