package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/service"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// Notifications 当前用户最近投稿与审核进度.
//
//	@Summary		投稿通知
//	@Description	返回当前用户最近 10 条投稿及待审核数量
//	@Tags			会话
//	@Produce		json
//	@Success		200	{object}	types.NotificationsResponse	"通知信息"
//	@Failure		401	{object}	map[string]string			"未登录"
//	@Router			/api/v1/notifications [get]
func Notifications(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	resp, err := svc.RecentSubmissions(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, l, err, "load notifications failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}
