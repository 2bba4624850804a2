package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/queue"
)

func TestSubmitAssetUserGoesPending(t *testing.T) {
	s, blobs, pub := newTestService(t)

	resp := submitAs(t, s, userSession, "winter logo", types.CategoryLogo, "logo.PNG")

	if !resp.Queued {
		t.Fatal("expected submission to be queued")
	}

	if resp.Asset.Status != types.StatusPending {
		t.Fatalf("status = %q, want pending", resp.Asset.Status)
	}

	if resp.Asset.Official {
		t.Fatal("user submission must not be official")
	}

	if len(resp.Asset.ID) != 26 {
		t.Fatalf("id length = %d, want 26 (ulid)", len(resp.Asset.ID))
	}

	// 对象键为 <ulid>.<ext>，扩展名小写
	wantKey := resp.Asset.ID + ".png"
	if resp.Asset.FilePath != wantKey {
		t.Fatalf("file path = %q, want %q", resp.Asset.FilePath, wantKey)
	}

	if !blobs.has(wantKey) {
		t.Fatal("blob was not stored")
	}

	if !pub.published(queue.TopicAssetUploaded) {
		t.Fatal("uploaded event not published")
	}
}

func TestSubmitAssetAdminDirectPublish(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	resp := submitAs(t, s, adminSession, "official art", types.CategoryArt, "art.png")

	if resp.Queued {
		t.Fatal("admin submission must publish directly")
	}

	if resp.Asset.Status != types.StatusApproved {
		t.Fatalf("status = %q, want approved", resp.Asset.Status)
	}

	if !resp.Asset.Official {
		t.Fatal("admin submission must carry the official flag")
	}
}

func TestSubmitAssetPendingThrottle(t *testing.T) {
	s, _, _ := newTestService(t)

	submitAs(t, s, userSession, "first", types.CategoryFon, "a.png")

	body := []byte("x")
	_, err := s.SubmitAsset(context.Background(), userSession,
		&types.SubmitAssetRequest{Title: "second", Category: types.CategoryFon},
		"b.png", bytes.NewReader(body), 1, "image/png")
	if !errors.Is(err, ErrPendingSubmissionExists) {
		t.Fatalf("err = %v, want ErrPendingSubmissionExists", err)
	}
}

func TestSubmitAssetAdminNotThrottled(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitAs(t, s, adminSession, "one", types.CategoryText, "1.png")
	submitAs(t, s, adminSession, "two", types.CategoryText, "2.png")
}

func TestSubmitAssetTooLarge(t *testing.T) {
	s, blobs, _ := newTestService(t)

	_, err := s.SubmitAsset(context.Background(), userSession,
		&types.SubmitAssetRequest{Title: "huge", Category: types.CategoryArt},
		"huge.png", strings.NewReader("x"), types.MaxUploadBytes+1, "image/png")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}

	if blobs.count() != 0 {
		t.Fatal("oversized upload must not reach the blob store")
	}
}

func TestSubmitAssetInvalidCategory(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.SubmitAsset(context.Background(), userSession,
		&types.SubmitAssetRequest{Title: "bad", Category: "banner"},
		"x.png", strings.NewReader("x"), 1, "image/png")
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestSubmitAssetAnonymous(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.SubmitAsset(context.Background(), types.Session{},
		&types.SubmitAssetRequest{Title: "anon", Category: types.CategoryLogo},
		"x.png", strings.NewReader("x"), 1, "image/png")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}
