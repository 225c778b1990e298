package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mnordli/stufflend/internal/models"
)

func TestMemberService(t *testing.T) {
	ctx := context.Background()

	t.Run("create validates before touching the store", func(t *testing.T) {
		svc := newTestServices(t, date(2024, 1, 1))

		if _, err := svc.members.Create(ctx, "M1", "Alice", "not-an-email", "123", 10); !errors.Is(err, models.ErrInvalidEmailFormat) {
			t.Errorf("error = %v, want ErrInvalidEmailFormat", err)
		}
		members, _ := svc.members.List(ctx)
		if len(members) != 0 {
			t.Errorf("store changed after failed create: %+v", members)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc := newTestServices(t, date(2024, 1, 1))
		seedLending(t, svc)

		_, err := svc.members.Create(ctx, "M3", "Third", "m1@example.com", "333", 10)
		if !errors.Is(err, models.ErrDuplicateEmail) {
			t.Errorf("error = %v, want ErrDuplicateEmail", err)
		}
	})

	t.Run("lookups", func(t *testing.T) {
		svc := newTestServices(t, date(2024, 1, 1))
		seedLending(t, svc)

		byEmail, err := svc.members.FindByEmail(ctx, "m2@example.com")
		if err != nil || byEmail.ID != "M2" {
			t.Errorf("FindByEmail = %+v, %v", byEmail, err)
		}
		byPhone, err := svc.members.FindByPhone(ctx, "111")
		if err != nil || byPhone.ID != "M1" {
			t.Errorf("FindByPhone = %+v, %v", byPhone, err)
		}
		ok, err := svc.members.Exists(ctx, "M1")
		if err != nil || !ok {
			t.Errorf("Exists(M1) = %v, %v", ok, err)
		}
	})

	t.Run("update email validates format and uniqueness", func(t *testing.T) {
		svc := newTestServices(t, date(2024, 1, 1))
		seedLending(t, svc)

		if err := svc.members.UpdateEmail(ctx, "M2", "bad"); !errors.Is(err, models.ErrInvalidEmailFormat) {
			t.Errorf("error = %v, want ErrInvalidEmailFormat", err)
		}
		if err := svc.members.UpdateEmail(ctx, "M2", "m1@example.com"); !errors.Is(err, models.ErrDuplicateEmail) {
			t.Errorf("error = %v, want ErrDuplicateEmail", err)
		}
		if err := svc.members.UpdateEmail(ctx, "M2", "new@example.com"); err != nil {
			t.Fatalf("UpdateEmail failed: %v", err)
		}
		m, _ := svc.members.Get(ctx, "M2")
		if m.Email != "new@example.com" {
			t.Errorf("email = %q", m.Email)
		}
	})

	t.Run("update phone validates format", func(t *testing.T) {
		svc := newTestServices(t, date(2024, 1, 1))
		seedLending(t, svc)

		if err := svc.members.UpdatePhone(ctx, "M2", "abc"); !errors.Is(err, models.ErrInvalidPhoneNumber) {
			t.Errorf("error = %v, want ErrInvalidPhoneNumber", err)
		}
		if err := svc.members.UpdatePhone(ctx, "M2", "999"); err != nil {
			t.Fatalf("UpdatePhone failed: %v", err)
		}
	})

	t.Run("delete leaves items in place", func(t *testing.T) {
		svc := newTestServices(t, date(2024, 1, 1))
		item := seedLending(t, svc)

		if err := svc.members.Delete(ctx, "M1"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := svc.members.Get(ctx, "M1"); !errors.Is(err, models.ErrMemberNotFound) {
			t.Errorf("Get after delete = %v, want ErrMemberNotFound", err)
		}
		if _, err := svc.items.Get(ctx, item.ID); err != nil {
			t.Errorf("item removed with its owner: %v", err)
		}
	})
}
