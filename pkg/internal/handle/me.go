package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/service"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// Me 返回当前会话及管理员标记，前端据此决定展示管理入口.
//
//	@Summary		当前会话
//	@Tags			会话
//	@Produce		json
//	@Success		200	{object}	types.MeResponse	"会话信息"
//	@Failure		401	{object}	map[string]string	"未登录"
//	@Router			/api/v1/me [get]
func Me(c *gin.Context) {
	l := log.Logger()

	sess := middleware.GetSession(c)
	if !sess.Valid() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	svc := service.NewGalleryService(c.Request.Context())

	isAdmin, err := svc.IsAdmin(c.Request.Context(), sess.UserID)
	if err != nil {
		// 无法确认权限时按普通用户展示
		l.Warn().Err(err).Msg("admin lookup failed")

		isAdmin = false
	}

	c.JSON(http.StatusOK, types.MeResponse{Session: sess, IsAdmin: isAdmin})
}
