package handle

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/internal/service"
	"github.com/yeisme/assetvault/pkg/internal/types"
	"github.com/yeisme/assetvault/pkg/log"
	"github.com/yeisme/assetvault/pkg/middleware"
)

// BrowseAssets 公共画廊列表.
//
//	@Summary		浏览画廊
//	@Description	返回已发布的资产列表，支持分类、官方标记过滤与模糊搜索（标题/上传者）
//	@Tags			资产
//	@Produce		json
//	@Param			category	query		string						false	"分类过滤 (logo|moveus|fon|text|art)"
//	@Param			official	query		string						false	"官方标记过滤 (true|false)"
//	@Param			search		query		string						false	"标题或上传者模糊匹配"
//	@Param			limit		query		int							false	"返回条数上限"
//	@Param			offset		query		int							false	"偏移量"
//	@Success		200			{object}	types.BrowseAssetsResponse	"资产列表"
//	@Failure		400			{object}	map[string]string			"请求参数错误"
//	@Failure		500			{object}	map[string]string			"服务器内部错误"
//	@Router			/api/v1/assets [get]
func BrowseAssets(c *gin.Context) {
	l := log.Logger()

	var req types.BrowseAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		l.Warn().Err(err).Msg("invalid browse query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	svc := service.NewGalleryService(c.Request.Context())

	resp, err := svc.BrowseAssets(c.Request.Context(), &req)
	if err != nil {
		respondError(c, l, err, "browse assets failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetAsset 按 ID 获取资产详情.
//
//	@Summary		获取资产详情
//	@Description	已发布资产公开可见；待审核/已驳回资产仅上传者与管理员可见
//	@Tags			资产
//	@Produce		json
//	@Param			id	path		string				true	"资产 ID (ULID)"
//	@Success		200	{object}	types.AssetInfo		"资产详情"
//	@Failure		401	{object}	map[string]string	"未授权"
//	@Failure		404	{object}	map[string]string	"资产不存在"
//	@Router			/api/v1/assets/{id} [get]
func GetAsset(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	info, err := svc.GetAsset(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, l, err, "get asset failed")
		return
	}

	c.JSON(http.StatusOK, info)
}

// DownloadAsset 下载资产文件流.
//
//	@Summary		下载资产
//	@Description	返回资产文件流，可见性规则与详情一致
//	@Tags			资产
//	@Produce		application/octet-stream
//	@Param			id	path		string				true	"资产 ID (ULID)"
//	@Success		200	{file}		file				"文件流"
//	@Failure		401	{object}	map[string]string	"未授权"
//	@Failure		404	{object}	map[string]string	"资产不存在"
//	@Router			/api/v1/assets/{id}/download [get]
func DownloadAsset(c *gin.Context) {
	l := log.Logger()
	svc := service.NewGalleryService(c.Request.Context())

	rc, info, err := svc.DownloadAsset(c.Request.Context(), middleware.GetSession(c), c.Param("id"))
	if err != nil {
		respondError(c, l, err, "download asset failed")
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(info.FilePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", `inline; filename="`+info.FilePath+`"`)
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

// SubmitAsset 上传投稿（multipart：title + category + file）.
//
//	@Summary		上传资产
//	@Description	登录用户上传图片投稿；普通用户进入待审核队列，管理员直接发布并带官方标记
//	@Tags			资产
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			title		formData	string						true	"标题"
//	@Param			category	formData	string						true	"分类 (logo|moveus|fon|text|art)"
//	@Param			file		formData	file						true	"图片文件（最大 10 MiB）"
//	@Success		201			{object}	types.SubmitAssetResponse	"投稿结果"
//	@Failure		400			{object}	map[string]string			"请求参数错误"
//	@Failure		401			{object}	map[string]string			"未登录"
//	@Failure		409			{object}	map[string]string			"已有待审核投稿"
//	@Failure		413			{object}	map[string]string			"文件超过大小上限"
//	@Router			/api/v1/assets [post]
func SubmitAsset(c *gin.Context) {
	l := log.Logger()

	var req types.SubmitAssetRequest
	if err := c.ShouldBind(&req); err != nil {
		l.Warn().Err(err).Msg("invalid submit form")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		l.Warn().Err(err).Msg("missing upload file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})

		return
	}

	// 提前拒绝超限文件，避免读入
	if fh.Size > types.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": service.ErrFileTooLarge.Error()})
		return
	}

	f, err := fh.Open()
	if err != nil {
		l.Error().Err(err).Msg("open upload file failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}
	defer f.Close()

	svc := service.NewGalleryService(c.Request.Context())

	resp, err := svc.SubmitAsset(c.Request.Context(), middleware.GetSession(c),
		&req, fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, l, err, "submit asset failed")
		return
	}

	c.JSON(http.StatusCreated, resp)
}
