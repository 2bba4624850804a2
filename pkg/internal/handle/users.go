package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/service"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// UserAssets 用户主页：某个用户的作品列表.
//
//	@Summary		用户作品列表
//	@Description	列出指定用户的作品；本人与管理员可见全部状态，其他访问者只看已发布作品
//	@Tags			用户
//	@Produce		json
//	@Param			id	path		string						true	"用户 ID"
//	@Success		200	{object}	types.UserAssetsResponse	"作品列表"
//	@Failure		500	{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/users/{id}/assets [get]
func UserAssets(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	resp, err := svc.ListUserAssets(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, l, err, "list user assets failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}
