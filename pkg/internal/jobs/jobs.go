// Package jobs 注册画廊的定时任务：孤儿对象清理与待审核数量指标刷新.
package jobs

import (
	"context"
	"time"

	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/storage"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/metrics"
	"github.com/yeisme/assetvault/pkg/scheduler"
)

// 任务名称.
const (
	JobOrphanSweep  = "gallery.orphan_sweep"
	JobPendingGauge = "gallery.pending_gauge"
)

// RegisterJobs 将画廊定时任务挂到调度器上.
func RegisterJobs(ctx context.Context, sched *scheduler.Scheduler, manager *storage.Manager) error {
	cfg := configs.GetConfig().Gallery

	if err := sched.AddCron(JobOrphanSweep, cfg.OrphanSweepCron, func(ctx context.Context) {
		sweepOrphanBlobs(ctx, manager, time.Duration(cfg.OrphanGraceHours)*time.Hour)
	}, ctx); err != nil {
		return err
	}

	if err := sched.AddCron(JobPendingGauge, cfg.PendingGaugeCron, func(ctx context.Context) {
		refreshPendingGauge(ctx, manager)
	}, ctx); err != nil {
		return err
	}

	return nil
}

// sweepOrphanBlobs 清理没有对应数据库记录的对象。
// 删除流程是先删对象再删记录，记录删除失败会留下孤儿对象；
// 宽限期避免误删正在进行的上传（对象已写入、记录尚未提交）.
func sweepOrphanBlobs(ctx context.Context, manager *storage.Manager, grace time.Duration) {
	l := log.Logger()

	s3c := manager.GetS3Client()
	dbc := manager.GetDBClient()

	if s3c == nil || dbc == nil {
		l.Warn().Msg("orphan sweep skipped: storage not ready")
		return
	}

	cutoff := time.Now().Add(-grace)
	swept := 0

	for obj := range s3c.List(ctx) {
		if obj.Err != nil {
			l.Warn().Err(obj.Err).Msg("orphan sweep: list error")
			continue
		}

		if obj.LastModified.After(cutoff) {
			continue
		}

		var count int64
		if err := dbc.GetDB().WithContext(ctx).Model(&model.Asset{}).
			Where("file_path = ?", obj.Key).Count(&count).Error; err != nil {
			l.Warn().Err(err).Str("object", obj.Key).Msg("orphan sweep: lookup failed")
			continue
		}

		if count > 0 {
			continue
		}

		if err := s3c.Remove(ctx, obj.Key); err != nil {
			l.Warn().Err(err).Str("object", obj.Key).Msg("orphan sweep: remove failed")
			continue
		}

		metrics.OrphanBlobsSwept.Inc()

		swept++
	}

	if swept > 0 {
		l.Info().Int("swept", swept).Msg("orphan blobs removed")
	}
}

// refreshPendingGauge 刷新待审核数量指标.
func refreshPendingGauge(ctx context.Context, manager *storage.Manager) {
	dbc := manager.GetDBClient()
	if dbc == nil {
		return
	}

	var pending int64
	if err := dbc.GetDB().WithContext(ctx).Model(&model.Asset{}).
		Where("status = ?", types.StatusPending).Count(&pending).Error; err != nil {
		log.Logger().Warn().Err(err).Msg("pending gauge refresh failed")
		return
	}

	metrics.PendingSubmissions.Set(float64(pending))
}
