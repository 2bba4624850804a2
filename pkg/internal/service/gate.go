package service

import (
	"context"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
)

// IsAdmin 查询用户是否在管理员注册表内.
func (s *GalleryService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Admin{}).
		Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// requireAdmin 管理操作统一入口：校验会话有效且执行者在注册表内。
// 注册表查询失败按未授权处理，宁可拒绝也不放行.
func (s *GalleryService) requireAdmin(ctx context.Context, sess types.Session) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}

	ok, err := s.IsAdmin(ctx, sess.UserID)
	if err != nil {
		log.Logger().Error().Err(err).Str("user_id", sess.UserID).Msg("admin registry lookup failed")
		return ErrUnauthorized
	}

	if !ok {
		return ErrUnauthorized
	}

	return nil
}
