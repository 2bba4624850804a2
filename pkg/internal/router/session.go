package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/handle"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// RegisterSessionRoutes 注册会话相关路由.
func RegisterSessionRoutes(g *gin.RouterGroup) {
	g.GET("/me", handle.Me)
	g.GET("/notifications", middleware.RequireSession(), handle.Notifications)
}
