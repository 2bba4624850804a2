package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/assetvault/pkg/internal/types"
)

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	s, _, _ := newTestService(t)

	if err := s.requireAdmin(context.Background(), types.Session{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRequireAdminRejectsNonAdmin(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	if err := s.requireAdmin(context.Background(), userSession); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRequireAdminAllowsRegistered(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	if err := s.requireAdmin(context.Background(), adminSession); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestIsAdminEmptyUser(t *testing.T) {
	s, _, _ := newTestService(t)

	ok, err := s.IsAdmin(context.Background(), "")
	if err != nil || ok {
		t.Fatalf("IsAdmin(\"\") = (%v, %v), want (false, nil)", ok, err)
	}
}
