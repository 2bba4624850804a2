package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/handle"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// RegisterAssetsRoutes 注册资产路由.
// 浏览与下载对匿名开放（未发布资产的可见性由 service 层裁决），
// 上传要求登录.
func RegisterAssetsRoutes(g *gin.RouterGroup) {
	assets := g.Group("/assets")
	{
		assets.GET("", handle.BrowseAssets)
		assets.POST("", middleware.RequireSession(), handle.SubmitAsset)
		assets.GET("/:id", handle.GetAsset)
		assets.GET("/:id/download", handle.DownloadAsset)
	}
}
