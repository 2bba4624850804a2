package service

import (
	"context"
	"strings"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/queue"
)

// ListAdmins 列出管理员注册表（仅管理员可见），按授权时间排序.
func (s *GalleryService) ListAdmins(ctx context.Context, sess types.Session) (*types.ListAdminsResponse, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}

	var admins []model.Admin
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&admins).Error; err != nil {
		return nil, err
	}

	infos := make([]types.AdminInfo, 0, len(admins))
	for _, a := range admins {
		infos = append(infos, types.AdminInfo{UserID: a.UserID, CreatedAt: a.CreatedAt})
	}

	return &types.ListAdminsResponse{Admins: infos, Total: len(infos)}, nil
}

// AddAdmin 将用户加入管理员注册表.
func (s *GalleryService) AddAdmin(ctx context.Context, sess types.Session, userID string) error {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return err
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrAdminNotFound
	}

	exists, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}

	if exists {
		return ErrAlreadyAdmin
	}

	if err := s.db.WithContext(ctx).Create(&model.Admin{UserID: userID}).Error; err != nil {
		return err
	}

	if pubErr := queue.PublishAdminGranted(ctx, s.pub, queue.AdminGrantedPayload{
		UserID:  userID,
		ActorID: sess.UserID,
	}); pubErr != nil {
		log.Logger().Warn().Err(pubErr).Str("user_id", userID).Msg("publish admin granted event failed")
	}

	return nil
}

// RemoveAdmin 将用户移出管理员注册表。执行者不能移除自己，
// 保证注册表始终至少保留一名管理员.
func (s *GalleryService) RemoveAdmin(ctx context.Context, sess types.Session, userID string) error {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return err
	}

	userID = strings.TrimSpace(userID)
	if userID == sess.UserID {
		return ErrCannotRemoveSelf
	}

	res := s.db.WithContext(ctx).Delete(&model.Admin{}, "user_id = ?", userID)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}

	if pubErr := queue.PublishAdminRevoked(ctx, s.pub, queue.AdminRevokedPayload{
		UserID:  userID,
		ActorID: sess.UserID,
	}); pubErr != nil {
		log.Logger().Warn().Err(pubErr).Str("user_id", userID).Msg("publish admin revoked event failed")
	}

	return nil
}
