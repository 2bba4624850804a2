// Package service 实现画廊业务逻辑：上传投稿、公共浏览、审核管理、
// 管理员注册表与投稿通知.
package service

import (
	"context"
	"io"

	"gorm.io/gorm"

	"github.com/yeisme/assetvault/pkg/cache"
	ctxPkg "github.com/yeisme/assetvault/pkg/context"
	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/queue"
)

// galleryCachePrefix 公共读取路径响应缓存的键前缀.
// 任何成功的写操作后按该前缀失效，下一次公共请求回源.
const galleryCachePrefix = "gallery:"

// BlobStore 抽象对象存储，由 s3.Client 实现.
type BlobStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, objectName string) (io.ReadCloser, error)
	Remove(ctx context.Context, objectName string) error
}

// GalleryService 画廊核心服务.
type GalleryService struct {
	db    *gorm.DB
	blobs BlobStore
	cache *cache.Cache
	pub   queue.Publisher
}

// NewGalleryService 从 request context 中取出存储客户端构建服务.
// 依赖 middleware.StorageMiddleware 提前注入存储管理器.
func NewGalleryService(c context.Context) *GalleryService {
	s := &GalleryService{}

	if dbc := ctxPkg.GetDBClient(c); dbc != nil {
		s.db = dbc.GetDB()
	}

	if s3c := ctxPkg.GetS3Client(c); s3c != nil {
		s.blobs = s3c
	}

	if kvc := ctxPkg.GetKVClient(c); kvc != nil {
		s.cache = cache.NewCache(kvc)
	}

	if mqc := ctxPkg.GetMQClient(c); mqc != nil {
		s.pub = mqc
	}

	return s
}

// NewGalleryServiceWith 显式注入依赖，主要用于测试.
func NewGalleryServiceWith(db *gorm.DB, blobs BlobStore, c *cache.Cache, pub queue.Publisher) *GalleryService {
	return &GalleryService{db: db, blobs: blobs, cache: c, pub: pub}
}

// invalidateGalleryCache 使公共读取缓存失效，失败仅记录日志不影响主流程.
func (s *GalleryService) invalidateGalleryCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.InvalidatePrefix(ctx, galleryCachePrefix); err != nil {
		log.Logger().Warn().Err(err).Msg("invalidate gallery cache failed")
	}
}

// toAssetInfo 转换为对外视图.
func toAssetInfo(a *model.Asset) types.AssetInfo {
	return types.AssetInfo{
		ID:         a.ID,
		Title:      a.Title,
		Category:   a.Category,
		FilePath:   a.FilePath,
		UserID:     a.UserID,
		UserName:   a.UserName,
		UserAvatar: a.UserAvatar,
		Status:     a.Status,
		Official:   a.Official,
		CreatedAt:  a.CreatedAt,
	}
}

func toAssetInfos(assets []model.Asset) []types.AssetInfo {
	infos := make([]types.AssetInfo, 0, len(assets))
	for i := range assets {
		infos = append(infos, toAssetInfo(&assets[i]))
	}

	return infos
}
