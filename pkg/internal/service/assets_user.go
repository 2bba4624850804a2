package service

import (
	"context"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
)

// ListUserAssets 用户主页：按上传者列出作品。
// 本人与管理员可见全部状态，其他访问者（含匿名）只看已发布作品；
// 用户名与头像取自最近一条投稿的冗余字段.
func (s *GalleryService) ListUserAssets(ctx context.Context, sess types.Session, userID string) (*types.UserAssetsResponse, error) {
	q := s.db.WithContext(ctx).Model(&model.Asset{}).Where("user_id = ?", userID)

	ownerView := sess.Valid() && sess.UserID == userID
	if !ownerView {
		if isAdmin, err := s.IsAdmin(ctx, sess.UserID); err != nil || !isAdmin {
			q = q.Where("status = ?", types.StatusApproved)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var assets []model.Asset
	if err := q.Order("created_at DESC, id DESC").Find(&assets).Error; err != nil {
		return nil, err
	}

	resp := &types.UserAssetsResponse{
		UserID: userID,
		Assets: toAssetInfos(assets),
		Total:  int(total),
	}

	if len(assets) > 0 {
		resp.UserName = assets[0].UserName
		resp.UserAvatar = assets[0].UserAvatar
	}

	return resp, nil
}
