// Package router 管理路由配置，将路径绑定到 handle 提供的处理器.
package router

import (
	"github.com/gin-gonic/gin"
)

// Register 注册全部 API 路由（统一挂在 /api/v1 下）.
func Register(e *gin.Engine) *gin.Engine {
	v1 := e.Group("/api/v1")
	{
		RegisterAssetsRoutes(v1)
		RegisterUsersRoutes(v1)
		RegisterAdminRoutes(v1)
		RegisterSessionRoutes(v1)
		RegisterHealthCheckRoute(v1)
	}

	RegisterSwaggerRoute(e)
	RegisterSchedulerRoutes(e)

	return e
}
