package service

import (
	"context"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
)

// recentSubmissionLimit 通知面板展示的最近投稿条数.
const recentSubmissionLimit = 10

// RecentSubmissions 当前用户最近投稿及待审核数量，用于通知面板.
func (s *GalleryService) RecentSubmissions(ctx context.Context, sess types.Session) (*types.NotificationsResponse, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}

	var assets []model.Asset
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", sess.UserID).
		Order("created_at DESC, id DESC").
		Limit(recentSubmissionLimit).
		Find(&assets).Error; err != nil {
		return nil, err
	}

	var pending int64
	if err := s.db.WithContext(ctx).Model(&model.Asset{}).
		Where("user_id = ? AND status = ?", sess.UserID, types.StatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}

	return &types.NotificationsResponse{
		Recent:       toAssetInfos(assets),
		PendingCount: int(pending),
	}, nil
}
