package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/service"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// AdminListAssets 管理视图资产列表.
//
//	@Summary		管理视图资产列表
//	@Description	列出所有资产（含待审核与已驳回），可按状态过滤
//	@Tags			管理
//	@Produce		json
//	@Param			status	query		string						false	"状态过滤 (pending|approved|rejected)"
//	@Success		200		{object}	types.BrowseAssetsResponse	"资产列表"
//	@Failure		401		{object}	map[string]string			"未授权"
//	@Router			/api/v1/admin/assets [get]
func AdminListAssets(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	resp, err := svc.ListAllAssets(c.Request.Context(), middleware.GetSession(c), c.Query("status"))
	if err != nil {
		respondError(c, l, err, "list all assets failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AdminUpdateStatus 审核：变更资产状态.
//
//	@Summary		变更资产状态
//	@Description	将资产置为 pending/approved/rejected
//	@Tags			管理
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"资产 ID"
//	@Param			req		body		types.UpdateStatusRequest	true	"目标状态"
//	@Success		200		{object}	types.AssetInfo				"更新后的资产"
//	@Failure		400		{object}	map[string]string			"状态不在词表内"
//	@Failure		401		{object}	map[string]string			"未授权"
//	@Failure		404		{object}	map[string]string			"资产不存在"
//	@Router			/api/v1/admin/assets/{id}/status [patch]
func AdminUpdateStatus(c *gin.Context) {
	l := log.Logger()

	var req types.UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid status body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGalleryService(c.Request.Context())

	info, err := svc.UpdateStatus(c.Request.Context(), middleware.GetSession(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, l, err, "update status failed")
		return
	}

	c.JSON(http.StatusOK, info)
}

// AdminUpdateAsset 编辑资产元数据，可选替换文件.
//
//	@Summary		编辑资产
//	@Description	修改标题/分类/官方标记；multipart 携带 file 字段时替换文件
//	@Tags			管理
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string				true	"资产 ID"
//	@Param			title		formData	string				false	"标题"
//	@Param			category	formData	string				false	"分类"
//	@Param			official	formData	bool				false	"官方标记"
//	@Param			file		formData	file				false	"替换文件（最大 10 MiB）"
//	@Success		200			{object}	types.AssetInfo		"更新后的资产"
//	@Failure		401			{object}	map[string]string	"未授权"
//	@Failure		404			{object}	map[string]string	"资产不存在"
//	@Router			/api/v1/admin/assets/{id} [put]
func AdminUpdateAsset(c *gin.Context) {
	l := log.Logger()

	var req types.UpdateAssetRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid update form")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGalleryService(c.Request.Context())
	sess := middleware.GetSession(c)

	// 文件字段可选
	fh, fhErr := c.FormFile("file")
	if fhErr != nil {
		info, err := svc.UpdateAssetInfo(c.Request.Context(), sess, c.Param("id"), &req, "", nil, 0, "")
		if err != nil {
			respondError(c, l, err, "update asset failed")
			return
		}

		c.JSON(http.StatusOK, info)

		return
	}

	if fh.Size > types.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": service.ErrFileTooLarge.Error()})
		return
	}

	f, err := fh.Open()
	if err != nil {
		l.Error().Err(err).Msg("open replacement file failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	defer f.Close()

	info, err := svc.UpdateAssetInfo(c.Request.Context(), sess, c.Param("id"),
		&req, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, l, err, "update asset failed")
		return
	}

	c.JSON(http.StatusOK, info)
}

// AdminDeleteAsset 删除资产（文件与记录）.
//
//	@Summary		删除资产
//	@Description	先删除对象存储中的文件，再删除数据库记录
//	@Tags			管理
//	@Produce		json
//	@Param			id	path		string				true	"资产 ID"
//	@Success		200	{object}	map[string]string	"删除结果"
//	@Failure		401	{object}	map[string]string	"未授权"
//	@Failure		404	{object}	map[string]string	"资产不存在"
//	@Router			/api/v1/admin/assets/{id} [delete]
func AdminDeleteAsset(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	if err := svc.DeleteAsset(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		respondError(c, l, err, "delete asset failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "asset deleted"})
}

// AdminListAdmins 管理员注册表.
//
//	@Summary		管理员列表
//	@Tags			管理
//	@Produce		json
//	@Success		200	{object}	types.ListAdminsResponse	"管理员列表"
//	@Failure		401	{object}	map[string]string			"未授权"
//	@Router			/api/v1/admin/admins [get]
func AdminListAdmins(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	resp, err := svc.ListAdmins(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, l, err, "list admins failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AdminAddAdmin 授予管理权限.
//
//	@Summary		添加管理员
//	@Tags			管理
//	@Accept			json
//	@Produce		json
//	@Param			req	body		types.AddAdminRequest	true	"目标用户"
//	@Success		201	{object}	map[string]string		"添加结果"
//	@Failure		401	{object}	map[string]string		"未授权"
//	@Failure		409	{object}	map[string]string		"已是管理员"
//	@Router			/api/v1/admin/admins [post]
func AdminAddAdmin(c *gin.Context) {
	l := log.Logger()

	var req types.AddAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid add admin body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGalleryService(c.Request.Context())

	if err := svc.AddAdmin(c.Request.Context(), middleware.GetSession(c), req.UserID); err != nil {
		respondError(c, l, err, "add admin failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "admin added"})
}

// AdminRemoveAdmin 移除管理权限，不允许移除自己.
//
//	@Summary		移除管理员
//	@Tags			管理
//	@Produce		json
//	@Param			id	path		string				true	"目标用户 ID"
//	@Success		200	{object}	map[string]string	"移除结果"
//	@Failure		401	{object}	map[string]string	"未授权"
//	@Failure		404	{object}	map[string]string	"不是管理员"
//	@Failure		409	{object}	map[string]string	"不能移除自己"
//	@Router			/api/v1/admin/admins/{id} [delete]
func AdminRemoveAdmin(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	if err := svc.RemoveAdmin(c.Request.Context(), middleware.GetSession(c), c.Param("id")); err != nil {
		respondError(c, l, err, "remove admin failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "admin removed"})
}
