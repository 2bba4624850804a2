package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/handle"
)

// RegisterUsersRoutes 注册用户主页路由（匿名可访问，可见性在 service 层裁决）.
func RegisterUsersRoutes(g *gin.RouterGroup) {
	users := g.Group("/users")
	{
		users.GET("/:id/assets", handle.UserAssets)
	}
}
