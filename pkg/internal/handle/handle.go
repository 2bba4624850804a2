// Package handle 提供请求处理器的实现，将 HTTP 请求翻译为 service 调用.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/assetvault/pkg/internal/service"
)

// respondError 将业务错误映射为 HTTP 状态码并输出统一错误体.
func respondError(c *gin.Context, l *zerolog.Logger, err error, msg string) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrAssetNotFound),
		errors.Is(err, service.ErrAdminNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrPendingSubmissionExists),
		errors.Is(err, service.ErrAlreadyAdmin),
		errors.Is(err, service.ErrCannotRemoveSelf):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidStatus):
		status = http.StatusBadRequest
	}

	if status >= http.StatusInternalServerError {
		l.Error().Err(err).Msg(msg)
	} else {
		l.Warn().Err(err).Msg(msg)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
