// Package app 提供应用程序的初始化、装配与生命周期管理.
package app

import (
	contextPkg "context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/assetvault/pkg/api"
	"github.com/yeisme/assetvault/pkg/cache"
	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/jobs"
	"github.com/yeisme/assetvault/pkg/internal/storage"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/metrics"
	"github.com/yeisme/assetvault/pkg/middleware"
	"github.com/yeisme/assetvault/pkg/rule"
	"github.com/yeisme/assetvault/pkg/scheduler"
	"github.com/yeisme/assetvault/pkg/tracing"
)

// shutdownTimeout 优雅退出时等待在途请求的时间.
const shutdownTimeout = 10 * time.Second

type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

// NewApp 初始化配置、可观测性、存储、调度器并装配 HTTP 引擎.
// 任何一步失败都直接退出进程，不会带着半初始化状态启动.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()
	if !config.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 将 gin binding 的校验引擎切换到 rule 标签
	rule.Engine()

	// 初始化追踪
	if err := tracing.InitTracer(config.Tracing); err != nil {
		fmt.Printf("Error initializing tracing: %v\n", err)
		os.Exit(1)
	}

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 调度器与定时任务
	sched, err := scheduler.NewScheduler()
	if err != nil {
		fmt.Printf("Error initializing scheduler: %v\n", err)
		os.Exit(1)
	}

	if err := jobs.RegisterJobs(ctx, sched, manager); err != nil {
		fmt.Printf("Error registering jobs: %v\n", err)
		os.Exit(1)
	}

	sched.Start()

	// 公共画廊响应缓存
	var galleryCache *cache.Cache
	if kvc := manager.GetKVClient(); kvc != nil {
		galleryCache = cache.NewCache(kvc)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()
	middleware.Register(engine, config, manager, sched, galleryCache)

	if config.Metrics.Enabled {
		_ = metrics.StartMetricsServer(config.Metrics, engine)
	}

	api.RegisterRoutes(engine)

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// Run 启动 HTTP 服务并在收到 SIGINT/SIGTERM 后优雅退出.
func (a *App) Run() error {
	l := log.Logger()

	srv := &http.Server{
		Addr:        fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port),
		Handler:     a.Engine,
		ReadTimeout: a.config.Server.GetTimeoutDuration(),
	}

	ctx, stop := signal.NotifyContext(contextPkg.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		l.Info().Str("addr", srv.Addr).Msg("HTTP server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("shutting down")

	shutdownCtx, cancel := contextPkg.WithTimeout(contextPkg.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("http shutdown failed")
	}

	if err := a.sched.Stop(); err != nil {
		l.Error().Err(err).Msg("scheduler stop failed")
	}

	if err := a.manager.Close(); err != nil {
		l.Error().Err(err).Msg("storage close failed")
	}

	if err := tracing.ShutdownTracer(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("tracer shutdown failed")
	}

	return nil
}
