package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/handle"
)

// RegisterSchedulerRoutes 注册调度器运维路由，仅调试模式开放.
func RegisterSchedulerRoutes(e *gin.Engine) {
	if !configs.GetConfig().Server.Debug {
		return
	}

	sched := e.Group("/debug/scheduler")
	{
		sched.GET("/jobs", handle.SchedulerJobs)
		sched.GET("/jobs/:name", handle.SchedulerJobInfo)
		sched.DELETE("/jobs/:name", handle.SchedulerRemoveJob)
	}
}
