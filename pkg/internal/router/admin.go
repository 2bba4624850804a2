package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/handle"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// RegisterAdminRoutes 注册管理路由.
// 路由层只要求登录；是否在管理员注册表内由 service 层统一校验，
// 未注册的登录用户同样收到 401.
func RegisterAdminRoutes(g *gin.RouterGroup) {
	admin := g.Group("/admin", middleware.RequireSession())
	{
		assets := admin.Group("/assets")
		{
			assets.GET("", handle.AdminListAssets)
			assets.PUT("/:id", handle.AdminUpdateAsset)
			assets.DELETE("/:id", handle.AdminDeleteAsset)
			assets.PATCH("/:id/status", handle.AdminUpdateStatus)
		}

		admins := admin.Group("/admins")
		{
			admins.GET("", handle.AdminListAdmins)
			admins.POST("", handle.AdminAddAdmin)
			admins.DELETE("/:id", handle.AdminRemoveAdmin)
		}
	}
}
