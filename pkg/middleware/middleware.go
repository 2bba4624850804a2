// Package middleware 提供 HTTP 中间件：认证会话、存储注入、限流、熔断、
// 追踪、监控、响应缓存等.
package middleware

import (
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/cache"
	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/storage"
	"github.com/yeisme/assetvault/pkg/scheduler"
)

// Register 按固定顺序装配全局中间件链.
// 顺序敏感：恢复 > 日志 > CORS > 压缩 > 追踪 > 指标 > 限流 > 熔断 > 会话 > 存储 > 调度器.
func Register(e *gin.Engine, cfg *configs.AppConfig, manager *storage.Manager, sched *scheduler.Scheduler, galleryCache *cache.Cache) {
	e.Use(
		gin.Recovery(),
		GinLoggerMiddleware(),
		CORSMiddleware(cfg.Server),
		gzip.Gzip(gzip.DefaultCompression),
	)

	if cfg.Tracing.Enabled {
		e.Use(TracingMiddleware())
	}

	if cfg.Metrics.Enabled {
		e.Use(PrometheusMiddleware())
	}

	e.Use(
		RateLimitMiddleware(cfg.RateLimit),
		CircuitBreakerMiddleware(cfg.CircuitBreaker),
		SessionMiddleware(cfg.Auth),
		StorageMiddleware(manager),
	)

	if sched != nil {
		e.Use(SchedulerMiddleware(sched))
	}

	if galleryCache != nil && cfg.Gallery.CacheTTLSeconds > 0 {
		cacheCfg := DefaultCacheConfig(galleryCache)
		cacheCfg.TTL = time.Duration(cfg.Gallery.CacheTTLSeconds) * time.Second
		// 只缓存匿名公共读取，带会话的请求直接回源
		cacheCfg.Skipper = func(c *gin.Context) bool {
			return GetSession(c).Valid()
		}
		e.Use(CacheMiddleware(cacheCfg))
	}
}
