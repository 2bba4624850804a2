package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/yeisme/assetvault/pkg/internal/types"
)

// seedGallery 铺一组已发布/待审核混合数据.
func seedGallery(t *testing.T, s *GalleryService) {
	t.Helper()
	seedAdmin(t, s, adminSession.UserID)

	// 管理员投稿直接发布且带官方标记
	submitAs(t, s, adminSession, "Summer Logo", types.CategoryLogo, "s.png")
	submitAs(t, s, adminSession, "Night Fon", types.CategoryFon, "n.jpg")

	// 普通用户投稿停留在待审核
	submitAs(t, s, userSession, "Hidden Art", types.CategoryArt, "h.png")
}

func TestBrowseAssetsOnlyApproved(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	resp, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}

	for _, a := range resp.Assets {
		if a.Status != types.StatusApproved {
			t.Fatalf("unapproved asset leaked: %+v", a)
		}
	}
}

func TestBrowseAssetsCategoryFilter(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	resp, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Category: types.CategoryFon})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	if resp.Total != 1 || resp.Assets[0].Title != "Night Fon" {
		t.Fatalf("filtered = %+v", resp)
	}
}

func TestBrowseAssetsInvalidCategory(t *testing.T) {
	s, _, _ := newTestService(t)

	_, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Category: "poster"})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestBrowseAssetsOfficialFilter(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	// 将用户投稿发布，得到一条非官方资产
	pending, err := s.ListAllAssets(context.Background(), adminSession, types.StatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}

	if _, err := s.UpdateStatus(context.Background(), adminSession, pending.Assets[0].ID, types.StatusApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	official, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Official: "true"})
	if err != nil {
		t.Fatalf("browse official: %v", err)
	}

	if official.Total != 2 {
		t.Fatalf("official total = %d, want 2", official.Total)
	}

	community, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Official: "false"})
	if err != nil {
		t.Fatalf("browse community: %v", err)
	}

	if community.Total != 1 || community.Assets[0].Title != "Hidden Art" {
		t.Fatalf("community = %+v", community)
	}
}

func TestBrowseAssetsSearchCaseInsensitive(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	byTitle, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Search: "summer"})
	if err != nil {
		t.Fatalf("search title: %v", err)
	}

	if byTitle.Total != 1 || byTitle.Assets[0].Title != "Summer Logo" {
		t.Fatalf("search by title = %+v", byTitle)
	}

	// 上传者名同样参与匹配
	byUploader, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Search: "MIRA"})
	if err != nil {
		t.Fatalf("search uploader: %v", err)
	}

	if byUploader.Total != 2 {
		t.Fatalf("search by uploader total = %d, want 2", byUploader.Total)
	}
}

func TestBrowseAssetsNewestFirst(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	first := submitAs(t, s, adminSession, "first", types.CategoryLogo, "1.png")
	second := submitAs(t, s, adminSession, "second", types.CategoryLogo, "2.png")

	resp, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	if resp.Assets[0].ID != second.Asset.ID || resp.Assets[1].ID != first.Asset.ID {
		t.Fatalf("order = [%s, %s], want newest first", resp.Assets[0].Title, resp.Assets[1].Title)
	}
}

func TestBrowseAssetsExplicitLimit(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitAs(t, s, adminSession, "one", types.CategoryLogo, "1.png")
	submitAs(t, s, adminSession, "two", types.CategoryLogo, "2.png")
	submitAs(t, s, adminSession, "three", types.CategoryLogo, "3.png")

	resp, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Limit: 2})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}

	// Total 统计全部匹配行，limit 只截断返回页
	if resp.Total != 3 || len(resp.Assets) != 2 {
		t.Fatalf("total = %d, page = %d, want 3/2", resp.Total, len(resp.Assets))
	}

	next, err := s.BrowseAssets(context.Background(), &types.BrowseAssetsRequest{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("browse page 2: %v", err)
	}

	if len(next.Assets) != 1 || next.Assets[0].Title != "one" {
		t.Fatalf("page 2 = %+v", next.Assets)
	}
}

func TestGetAssetPendingVisibility(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	pending, err := s.ListAllAssets(context.Background(), adminSession, types.StatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}

	id := pending.Assets[0].ID

	// 上传者本人可见
	if _, err := s.GetAsset(context.Background(), userSession, id); err != nil {
		t.Fatalf("owner get: %v", err)
	}

	// 管理员可见
	if _, err := s.GetAsset(context.Background(), adminSession, id); err != nil {
		t.Fatalf("admin get: %v", err)
	}

	// 其他人不可见
	stranger := types.Session{UserID: "999"}
	if _, err := s.GetAsset(context.Background(), stranger, id); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("stranger get = %v, want ErrUnauthorized", err)
	}
}

func TestDownloadAssetStreamsBlob(t *testing.T) {
	s, _, _ := newTestService(t)
	seedAdmin(t, s, adminSession.UserID)

	submitted := submitAs(t, s, adminSession, "dl", types.CategoryLogo, "d.png")

	rc, info, err := s.DownloadAsset(context.Background(), types.Session{}, submitted.Asset.ID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(data) != "png-bytes" {
		t.Fatalf("data = %q", data)
	}

	if info.ID != submitted.Asset.ID {
		t.Fatalf("info id = %q", info.ID)
	}
}

func TestRecentSubmissions(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	resp, err := s.RecentSubmissions(context.Background(), userSession)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}

	if len(resp.Recent) != 1 || resp.Recent[0].Title != "Hidden Art" {
		t.Fatalf("recent = %+v", resp.Recent)
	}

	if resp.PendingCount != 1 {
		t.Fatalf("pending count = %d, want 1", resp.PendingCount)
	}

	if _, err := s.RecentSubmissions(context.Background(), types.Session{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous err = %v, want ErrUnauthorized", err)
	}
}
