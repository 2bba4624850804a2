package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/metrics"
	"github.com/yeisme/assetvault/pkg/queue"
)

// ListAllAssets 管理视图：列出所有资产，可按状态过滤（含待审核队列）.
func (s *GalleryService) ListAllAssets(ctx context.Context, sess types.Session, status string) (*types.BrowseAssetsResponse, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}

	q := s.db.WithContext(ctx).Model(&model.Asset{})

	if status != "" {
		if !types.ValidStatus(status) {
			return nil, ErrInvalidStatus
		}

		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var assets []model.Asset
	if err := q.Order("created_at DESC, id DESC").Find(&assets).Error; err != nil {
		return nil, err
	}

	return &types.BrowseAssetsResponse{
		Assets: toAssetInfos(assets),
		Total:  int(total),
	}, nil
}

// UpdateStatus 审核状态变更（approve/reject/重置 pending）.
func (s *GalleryService) UpdateStatus(ctx context.Context, sess types.Session, id, status string) (*types.AssetInfo, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}

	if !types.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	asset, err := s.fetchAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := asset.Status
	if oldStatus != status {
		if err := s.db.WithContext(ctx).Model(asset).Update("status", status).Error; err != nil {
			return nil, err
		}

		asset.Status = status
	}

	metrics.ModerationActionsTotal.WithLabelValues("status:" + status).Inc()

	if pubErr := queue.PublishAssetStatusChanged(ctx, s.pub, queue.AssetStatusChangedPayload{
		Asset:      queue.AssetRef{ID: asset.ID, ObjectKey: asset.FilePath, Title: asset.Title, Category: asset.Category},
		OldStatus:  oldStatus,
		NewStatus:  status,
		ActorID:    sess.UserID,
		UploaderID: asset.UserID,
	}); pubErr != nil {
		log.Logger().Warn().Err(pubErr).Str("asset_id", asset.ID).Msg("publish status changed event failed")
	}

	s.invalidateGalleryCache(ctx)

	info := toAssetInfo(asset)

	return &info, nil
}

// UpdateAssetInfo 管理员编辑资产：标题、分类、官方标记，可选替换文件。
// 文件替换先写入新对象再删除旧对象，失败时数据库记录保持指向旧对象.
func (s *GalleryService) UpdateAssetInfo(ctx context.Context, sess types.Session, id string,
	req *types.UpdateAssetRequest, fileName string, reader io.Reader, size int64, contentType string,
) (*types.AssetInfo, error) {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return nil, err
	}

	asset, err := s.fetchAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	fileReplaced := false
	oldObjectKey := asset.FilePath

	if reader != nil {
		if size > types.MaxUploadBytes {
			return nil, ErrFileTooLarge
		}

		newKey := asset.ID + strings.ToLower(filepath.Ext(fileName))
		if err := s.blobs.Upload(ctx, newKey, reader, size, contentType); err != nil {
			return nil, err
		}

		// 扩展名变更会产生新键，旧对象随即删除
		if newKey != oldObjectKey {
			if rmErr := s.blobs.Remove(ctx, oldObjectKey); rmErr != nil {
				log.Logger().Warn().Err(rmErr).Str("object", oldObjectKey).
					Msg("failed to remove replaced blob")
			}
		}

		asset.FilePath = newKey
		fileReplaced = true
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		asset.Title = title
	}

	if req.Category != "" {
		if !types.ValidCategory(req.Category) {
			return nil, ErrInvalidCategory
		}

		asset.Category = req.Category
	}

	if req.Official != nil {
		asset.Official = *req.Official
	}

	if err := s.db.WithContext(ctx).Save(asset).Error; err != nil {
		return nil, err
	}

	metrics.ModerationActionsTotal.WithLabelValues("edit").Inc()

	if pubErr := queue.PublishAssetUpdated(ctx, s.pub, queue.AssetUpdatedPayload{
		Asset:        queue.AssetRef{ID: asset.ID, ObjectKey: asset.FilePath, Title: asset.Title, Category: asset.Category},
		ActorID:      sess.UserID,
		FileReplaced: fileReplaced,
		OldObjectKey: oldObjectKey,
	}); pubErr != nil {
		log.Logger().Warn().Err(pubErr).Str("asset_id", asset.ID).Msg("publish asset updated event failed")
	}

	s.invalidateGalleryCache(ctx)

	info := toAssetInfo(asset)

	return &info, nil
}

// DeleteAsset 删除资产：先删对象再删记录。
// 对象删除失败时保留记录，后续可重试；记录删除失败产生的孤儿对象
// 由定时清理任务兜底.
func (s *GalleryService) DeleteAsset(ctx context.Context, sess types.Session, id string) error {
	if err := s.requireAdmin(ctx, sess); err != nil {
		return err
	}

	asset, err := s.fetchAsset(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, asset.FilePath); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&model.Asset{}, "id = ?", asset.ID).Error; err != nil {
		return err
	}

	metrics.ModerationActionsTotal.WithLabelValues("delete").Inc()

	if pubErr := queue.PublishAssetDeleted(ctx, s.pub, queue.AssetDeletedPayload{
		Asset:   queue.AssetRef{ID: asset.ID, ObjectKey: asset.FilePath, Title: asset.Title, Category: asset.Category},
		ActorID: sess.UserID,
	}); pubErr != nil {
		log.Logger().Warn().Err(pubErr).Str("asset_id", asset.ID).Msg("publish asset deleted event failed")
	}

	s.invalidateGalleryCache(ctx)

	return nil
}
