package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yeisme/assetvault/pkg/queue"
)

func TestAddAdminGrantsAccess(t *testing.T) {
	s, _, pub := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	if err := s.AddAdmin(context.Background(), adminSession, userSession.UserID); err != nil {
		t.Fatalf("add admin: %v", err)
	}

	ok, err := s.IsAdmin(context.Background(), userSession.UserID)
	if err != nil || !ok {
		t.Fatalf("IsAdmin = (%v, %v), want (true, nil)", ok, err)
	}

	if !pub.published(queue.TopicAdminGranted) {
		t.Fatal("granted event not published")
	}
}

func TestAddAdminDuplicate(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)
	seedAdmin(t, s, userSession.UserID)

	err := s.AddAdmin(context.Background(), adminSession, userSession.UserID)
	if !errors.Is(err, ErrAlreadyAdmin) {
		t.Fatalf("err = %v, want ErrAlreadyAdmin", err)
	}
}

func TestAddAdminRequiresAdmin(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	err := s.AddAdmin(context.Background(), userSession, "300")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRemoveAdmin(t *testing.T) {
	s, _, pub := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)
	seedAdmin(t, s, userSession.UserID)

	if err := s.RemoveAdmin(context.Background(), adminSession, userSession.UserID); err != nil {
		t.Fatalf("remove admin: %v", err)
	}

	ok, _ := s.IsAdmin(context.Background(), userSession.UserID)
	if ok {
		t.Fatal("user still admin after removal")
	}

	if !pub.published(queue.TopicAdminRevoked) {
		t.Fatal("revoked event not published")
	}
}

func TestRemoveAdminSelfBlocked(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	err := s.RemoveAdmin(context.Background(), adminSession, adminSession.UserID)
	if !errors.Is(err, ErrCannotRemoveSelf) {
		t.Fatalf("err = %v, want ErrCannotRemoveSelf", err)
	}

	// 自我移除被拒后权限保持不变
	ok, _ := s.IsAdmin(context.Background(), adminSession.UserID)
	if !ok {
		t.Fatal("admin lost access after blocked self-removal")
	}
}

func TestRemoveAdminMissing(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	err := s.RemoveAdmin(context.Background(), adminSession, "nobody")
	if !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("err = %v, want ErrAdminNotFound", err)
	}
}

func TestListAdminsRequiresAdmin(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	if _, err := s.ListAdmins(context.Background(), userSession); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	resp, err := s.ListAdmins(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if resp.Total != 1 || resp.Admins[0].UserID != adminSession.UserID {
		t.Fatalf("admins = %+v", resp)
	}
}
