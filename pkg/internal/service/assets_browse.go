package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
)

// maxBrowseLimit 客户端显式分页时单页上限。不传 limit 则返回全部匹配行.
const maxBrowseLimit = 500

// BrowseAssets 公共画廊查询：只返回已通过审核的资产。
// 支持分类、官方标记过滤以及标题/上传者名的大小写不敏感模糊匹配，
// 结果按创建时间倒序（ULID 主键作为稳定的次级排序）.
func (s *GalleryService) BrowseAssets(ctx context.Context, req *types.BrowseAssetsRequest) (*types.BrowseAssetsResponse, error) {
	q := s.db.WithContext(ctx).Model(&model.Asset{}).
		Where("status = ?", types.StatusApproved)

	if req.Category != "" {
		if !types.ValidCategory(req.Category) {
			return nil, ErrInvalidCategory
		}

		q = q.Where("category = ?", req.Category)
	}

	switch strings.ToLower(req.Official) {
	case "":
	case "true", "1":
		q = q.Where("official = ?", true)
	case "false", "0":
		q = q.Where("official = ?", false)
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(user_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	q = q.Order("created_at DESC, id DESC")

	if req.Limit > 0 {
		q = q.Limit(min(req.Limit, maxBrowseLimit)).Offset(max(req.Offset, 0))
	}

	var assets []model.Asset
	if err := q.Find(&assets).Error; err != nil {
		return nil, err
	}

	return &types.BrowseAssetsResponse{
		Assets: toAssetInfos(assets),
		Total:  int(total),
	}, nil
}

// GetAsset 按 ID 获取资产。未通过审核的资产只对上传者本人或管理员可见.
func (s *GalleryService) GetAsset(ctx context.Context, sess types.Session, id string) (*types.AssetInfo, error) {
	asset, err := s.fetchAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireVisible(ctx, sess, asset); err != nil {
		return nil, err
	}

	info := toAssetInfo(asset)

	return &info, nil
}

// DownloadAsset 下载资产文件，可见性规则与 GetAsset 相同.
func (s *GalleryService) DownloadAsset(ctx context.Context, sess types.Session, id string) (io.ReadCloser, *types.AssetInfo, error) {
	asset, err := s.fetchAsset(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if err := s.requireVisible(ctx, sess, asset); err != nil {
		return nil, nil, err
	}

	rc, err := s.blobs.Download(ctx, asset.FilePath)
	if err != nil {
		return nil, nil, err
	}

	info := toAssetInfo(asset)

	return rc, &info, nil
}

func (s *GalleryService) fetchAsset(ctx context.Context, id string) (*model.Asset, error) {
	var asset model.Asset
	if err := s.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}

		return nil, err
	}

	return &asset, nil
}

// requireVisible 未发布资产仅上传者本人或管理员可见.
func (s *GalleryService) requireVisible(ctx context.Context, sess types.Session, asset *model.Asset) error {
	if asset.Status == types.StatusApproved {
		return nil
	}

	if sess.Valid() && sess.UserID == asset.UserID {
		return nil
	}

	return s.requireAdmin(ctx, sess)
}
