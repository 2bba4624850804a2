// Package api 对外暴露 HTTP API 的注册入口.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/router"
)

// RegisterRoutes 将全部画廊路由注册到传入的 gin 引擎.
func RegisterRoutes(e *gin.Engine) *gin.Engine {
	return router.Register(e)
}
