package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mnordli/stufflend/internal/models"
)

// AddMember inserts a member. Uniqueness is checked explicitly before the
// insert so the caller gets the specific duplicate error, not a bare
// constraint violation.
func (s *Store) AddMember(ctx context.Context, member models.Member) error {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE id = ?", member.ID,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check member id: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicateID
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE email = ?", member.Email,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check member email: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicateEmail
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE phone = ?", member.Phone,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check member phone: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicatePhone
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO members (id, name, email, phone, credits) VALUES (?, ?, ?, ?, ?)",
		member.ID, member.Name, member.Email, member.Phone, member.Credits,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// DeleteMember removes a member by ID; absent members are a no-op.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (s *Store) scanMember(row *sql.Row) (models.Member, error) {
	var member models.Member
	err := row.Scan(&member.ID, &member.Name, &member.Email, &member.Phone, &member.Credits)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, models.ErrMemberNotFound
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("failed to scan member: %w", err)
	}
	return member, nil
}

// GetMember retrieves a member by ID.
func (s *Store) GetMember(ctx context.Context, id string) (models.Member, error) {
	return s.scanMember(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, credits FROM members WHERE id = ?", id))
}

// GetMemberByEmail retrieves the member with the given email.
func (s *Store) GetMemberByEmail(ctx context.Context, email string) (models.Member, error) {
	return s.scanMember(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, credits FROM members WHERE email = ?", email))
}

// GetMemberByPhone retrieves the member with the given phone number.
func (s *Store) GetMemberByPhone(ctx context.Context, phone string) (models.Member, error) {
	return s.scanMember(s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, credits FROM members WHERE phone = ?", phone))
}

// ListMembers returns all members in insertion order.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, phone, credits FROM members ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(&member.ID, &member.Name, &member.Email, &member.Phone, &member.Credits); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// MemberExists reports whether a member with the given ID is stored.
func (s *Store) MemberExists(ctx context.Context, id string) (bool, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE id = ?", id,
	).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check member: %w", err)
	}
	return n > 0, nil
}

// UpdateMember replaces a stored member, re-checking email and phone
// uniqueness against everyone else.
func (s *Store) UpdateMember(ctx context.Context, member models.Member) error {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE email = ? AND id != ?", member.Email, member.ID,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check member email: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicateEmail
	}

	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE phone = ? AND id != ?", member.Phone, member.ID,
	).Scan(&n); err != nil {
		return fmt.Errorf("failed to check member phone: %w", err)
	}
	if n > 0 {
		return models.ErrDuplicatePhone
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE members SET name = ?, email = ?, phone = ?, credits = ? WHERE id = ?",
		member.Name, member.Email, member.Phone, member.Credits, member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if affected == 0 {
		return models.ErrMemberNotFound
	}
	return nil
}

// AdjustCredits applies a signed delta to a member's balance.
func (s *Store) AdjustCredits(ctx context.Context, id string, delta int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE members SET credits = credits + ? WHERE id = ?", delta, id)
	if err != nil {
		return fmt.Errorf("failed to adjust credits: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to adjust credits: %w", err)
	}
	if affected == 0 {
		return models.ErrMemberNotFound
	}
	return nil
}
