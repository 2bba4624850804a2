package service

import (
	"context"
	"testing"

	"github.com/yeisme/assetvault/pkg/internal/types"
)

func TestListUserAssetsPublicView(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	// 匿名访问管理员主页：两条已发布作品，带冗余的用户名
	resp, err := s.ListUserAssets(context.Background(), types.Session{}, adminSession.UserID)
	if err != nil {
		t.Fatalf("list user assets: %v", err)
	}

	if resp.Total != 2 || resp.UserName != adminSession.UserName {
		t.Fatalf("resp = %+v", resp)
	}

	for _, a := range resp.Assets {
		if a.Status != types.StatusApproved {
			t.Fatalf("unapproved asset leaked: %+v", a)
		}
	}

	// 匿名访问普通用户主页：唯一投稿还在待审核，不可见
	hidden, err := s.ListUserAssets(context.Background(), types.Session{}, userSession.UserID)
	if err != nil {
		t.Fatalf("list pending user: %v", err)
	}

	if hidden.Total != 0 {
		t.Fatalf("pending works visible to stranger: %+v", hidden)
	}
}

func TestListUserAssetsOwnerSeesPending(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	resp, err := s.ListUserAssets(context.Background(), userSession, userSession.UserID)
	if err != nil {
		t.Fatalf("list own assets: %v", err)
	}

	if resp.Total != 1 || resp.Assets[0].Status != types.StatusPending {
		t.Fatalf("owner view = %+v", resp)
	}
}

func TestListUserAssetsAdminSeesPending(t *testing.T) {
	s, _, _ := newTestService(t)
	seedGallery(t, s)

	resp, err := s.ListUserAssets(context.Background(), adminSession, userSession.UserID)
	if err != nil {
		t.Fatalf("admin list user assets: %v", err)
	}

	if resp.Total != 1 || resp.Assets[0].Title != "Hidden Art" {
		t.Fatalf("admin view = %+v", resp)
	}
}
