package configs

import "github.com/spf13/viper"

const (
	DefaultGalleryCacheTTLSeconds  = 60            // 公共画廊响应缓存 TTL（秒）
	DefaultGalleryOrphanSweepCron  = "30 3 * * *"  // 每天凌晨清理孤儿对象
	DefaultGalleryOrphanGraceHours = 24            // 孤儿对象清理宽限期（小时）
	DefaultGalleryPendingGaugeCron = "*/5 * * * *" // 待审核数量指标刷新
)

// GalleryConfig 画廊业务配置.
// 上传大小上限与分类、状态词汇表是固定业务规则，在代码中定义而非配置.
type GalleryConfig struct {
	CacheTTLSeconds  int    `mapstructure:"cache_ttl_seconds"  rule:"min=1"`
	OrphanSweepCron  string `mapstructure:"orphan_sweep_cron"`
	OrphanGraceHours int    `mapstructure:"orphan_grace_hours" rule:"min=1"`
	PendingGaugeCron string `mapstructure:"pending_gauge_cron"`
}

func (c *GalleryConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("gallery.cache_ttl_seconds", DefaultGalleryCacheTTLSeconds)
	v.SetDefault("gallery.orphan_sweep_cron", DefaultGalleryOrphanSweepCron)
	v.SetDefault("gallery.orphan_grace_hours", DefaultGalleryOrphanGraceHours)
	v.SetDefault("gallery.pending_gauge_cron", DefaultGalleryPendingGaugeCron)
}
