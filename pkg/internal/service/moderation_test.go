package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/queue"
)

func TestUpdateStatusApprove(t *testing.T) {
	s, _, pub := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, userSession, "pending art", types.CategoryArt, "a.png")

	info, err := s.UpdateStatus(context.Background(), adminSession, submitted.Asset.ID, types.StatusApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	if info.Status != types.StatusApproved {
		t.Fatalf("status = %q, want approved", info.Status)
	}

	if !pub.published(queue.TopicAssetStatusChanged) {
		t.Fatal("status changed event not published")
	}

	// 通过审核后出现在公共画廊
	browse, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	if browse.Total != 1 {
		t.Fatalf("browse total = %d, want 1", browse.Total)
	}
}

func TestUpdateStatusRejectsNonAdmin(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, userSession, "x", types.CategoryLogo, "x.png")

	_, err := s.UpdateStatus(context.Background(), userSession, submitted.Asset.ID, types.StatusApproved)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestUpdateStatusInvalidVocab(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, userSession, "x", types.CategoryLogo, "x.png")

	_, err := s.UpdateStatus(context.Background(), adminSession, submitted.Asset.ID, "published")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusMissingAsset(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	_, err := s.UpdateStatus(context.Background(), adminSession, "01AN4Z07BY79KA1307SR9X4MV3", types.StatusRejected)
	if !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("err = %v, want ErrAssetNotFound", err)
	}
}

func TestUpdateAssetInfoMetadata(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, userSession, "old title", types.CategoryFon, "bg.png")

	official := true
	info, err := s.UpdateAssetInfo(context.Background(), adminSession, submitted.Asset.ID,
		&types.UpdateAssetRequest{Title: "new title", Category: types.CategoryArt, Official: &official},
		"", nil, 0, "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if info.Title != "new title" || info.Category != types.CategoryArt || !info.Official {
		t.Fatalf("updated asset = %+v", info)
	}
}

func TestUpdateAssetInfoReplaceFile(t *testing.T) {
	s, blobs, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, userSession, "logo", types.CategoryLogo, "logo.png")
	oldKey := submitted.Asset.FilePath

	body := []byte("new-bytes")
	info, err := s.UpdateAssetInfo(context.Background(), adminSession, submitted.Asset.ID,
		&types.UpdateAssetRequest{},
		"logo.webp", bytes.NewReader(body), int64(len(body)), "image/webp")
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	wantKey := submitted.Asset.ID + ".webp"
	if info.FilePath != wantKey {
		t.Fatalf("file path = %q, want %q", info.FilePath, wantKey)
	}

	if blobs.has(oldKey) {
		t.Fatal("old blob must be removed after replacement")
	}

	if !blobs.has(wantKey) {
		t.Fatal("new blob missing")
	}
}

func TestDeleteAssetRemovesBlobAndRow(t *testing.T) {
	s, blobs, pub := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, userSession, "doomed", types.CategoryText, "d.png")

	if err := s.DeleteAsset(context.Background(), adminSession, submitted.Asset.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if blobs.has(submitted.Asset.FilePath) {
		t.Fatal("blob still present after delete")
	}

	if _, err := s.fetchAsset(context.Background(), submitted.Asset.ID); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("fetch after delete = %v, want ErrAssetNotFound", err)
	}

	if !pub.published(queue.TopicAssetDeleted) {
		t.Fatal("deleted event not published")
	}
}

func TestListAllAssetsFilterByStatus(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitAs(t, s, userSession, "queued", types.CategoryLogo, "q.png")
	submitAs(t, s, adminSession, "live", types.CategoryLogo, "l.png")

	pending, err := s.ListAllAssets(context.Background(), adminSession, types.StatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}

	if pending.Total != 1 || pending.Assets[0].Title != "queued" {
		t.Fatalf("pending list = %+v", pending)
	}

	all, err := s.ListAllAssets(context.Background(), adminSession, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	if all.Total != 2 {
		t.Fatalf("all total = %d, want 2", all.Total)
	}
}
