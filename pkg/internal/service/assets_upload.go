package service

import (
	"context"
	crand "crypto/rand"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/metrics"
	"github.com/yeisme/assetvault/pkg/queue"
)

// SubmitAsset 处理一次资产投稿。
//   - 文件大小超过上限直接拒绝（对象不落盘）
//   - 普通用户同一时间只允许一条待审核投稿
//   - 管理员投稿直接发布（approved）并带官方标记，普通用户进入 pending 队列
//   - 对象键为 <ulid>.<ext>，ULID 同时是记录主键，按创建时间有序
func (s *GalleryService) SubmitAsset(ctx context.Context, sess types.Session,
	req *types.SubmitAssetRequest, fileName string, reader io.Reader, size int64, contentType string,
) (*types.SubmitAssetResponse, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}

	if size > types.MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	if !types.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	isAdmin, err := s.IsAdmin(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	// 普通用户的投稿节流：已有待审核投稿时不再接收
	if !isAdmin {
		var pending int64
		if err := s.db.WithContext(ctx).Model(&model.Asset{}).
			Where("user_id = ? AND status = ?", sess.UserID, types.StatusPending).
			Count(&pending).Error; err != nil {
			return nil, err
		}

		if pending > 0 {
			return nil, ErrPendingSubmissionExists
		}
	}

	now := time.Now().UTC()
	id := ulid.MustNew(ulid.Timestamp(now), crand.Reader).String()
	objectKey := id + strings.ToLower(filepath.Ext(fileName))

	if err := s.blobs.Upload(ctx, objectKey, reader, size, contentType); err != nil {
		return nil, err
	}

	status := types.StatusPending
	if isAdmin {
		status = types.StatusApproved
	}

	asset := model.Asset{
		ID:         id,
		Title:      strings.TrimSpace(req.Title),
		Category:   req.Category,
		FilePath:   objectKey,
		UserID:     sess.UserID,
		UserName:   sess.UserName,
		UserAvatar: sess.AvatarURL,
		Status:     status,
		Official:   isAdmin,
		CreatedAt:  now,
	}

	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		// 记录写入失败则回收已上传对象，避免孤儿
		if rmErr := s.blobs.Remove(ctx, objectKey); rmErr != nil {
			log.Logger().Warn().Err(rmErr).Str("object", objectKey).
				Msg("failed to clean up blob after create failure")
		}

		return nil, err
	}

	metrics.UploadsTotal.WithLabelValues(status).Inc()

	if pubErr := queue.PublishAssetUploaded(ctx, s.pub, queue.AssetUploadedPayload{
		Asset:      queue.AssetRef{ID: asset.ID, ObjectKey: objectKey, Title: asset.Title, Category: asset.Category},
		UploaderID: sess.UserID,
		Status:     status,
		Official:   isAdmin,
		Size:       size,
	}); pubErr != nil {
		log.Logger().Warn().Err(pubErr).Str("asset_id", asset.ID).Msg("publish asset uploaded event failed")
	}

	// 管理员直通会改变公共视图
	if status == types.StatusApproved {
		s.invalidateGalleryCache(ctx)
	}

	return &types.SubmitAssetResponse{
		Asset:  toAssetInfo(&asset),
		Queued: status == types.StatusPending,
	}, nil
}
