package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/types"
)

type sessionKey struct{}

// SessionMiddleware 基于 oauth2-proxy 注入的请求头解析登录身份。
//   - X-Auth-Request-User 为用户唯一标识，缺失时回退 X-Forwarded-User
//   - X-Auth-Request-Preferred-Username / X-Auth-Request-Picture 为展示信息
//   - 开发模式可允许 query user 兜底（由 configs.auth.dev_allow_query 控制）
//
// 该中间件只解析注入，不做拦截；公共画廊允许匿名访问，
// 需要登录的路由用 RequireSession 拦截.
func SessionMiddleware(conf configs.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Enabled || isSkippedPath(c.Request.URL.Path, conf.SkipPaths) {
			c.Next()
			return
		}

		sess := parseSession(c, conf)
		if sess.Valid() {
			c.Set("session", sess)
			ctx := context.WithValue(c.Request.Context(), sessionKey{}, sess)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// RequireSession 要求有效登录身份，否则返回 401.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}

// GetSession 从 gin.Context 获取当前会话，匿名请求返回零值.
func GetSession(c *gin.Context) types.Session {
	if v, ok := c.Get("session"); ok {
		if s, ok2 := v.(types.Session); ok2 {
			return s
		}
	}
	// 回退到 request context
	if v := c.Request.Context().Value(sessionKey{}); v != nil {
		if s, ok := v.(types.Session); ok {
			return s
		}
	}

	return types.Session{}
}

// SessionFromContext 供 service 层从 request context 获取会话.
func SessionFromContext(ctx context.Context) types.Session {
	if v := ctx.Value(sessionKey{}); v != nil {
		if s, ok := v.(types.Session); ok {
			return s
		}
	}

	return types.Session{}
}

func parseSession(c *gin.Context, conf configs.AuthConfig) types.Session {
	userID := strings.TrimSpace(c.GetHeader("X-Auth-Request-User"))
	if userID == "" {
		userID = strings.TrimSpace(c.GetHeader("X-Forwarded-User"))
	}

	if userID == "" {
		if conf.DevAllowQuery && c.Query("user") != "" {
			return types.Session{
				UserID:   strings.TrimSpace(c.Query("user")),
				UserName: strings.TrimSpace(c.Query("name")),
			}
		}

		return types.Session{}
	}

	return types.Session{
		UserID:    userID,
		UserName:  strings.TrimSpace(c.GetHeader("X-Auth-Request-Preferred-Username")),
		AvatarURL: strings.TrimSpace(c.GetHeader("X-Auth-Request-Picture")),
	}
}

func isSkippedPath(path string, skips []string) bool {
	if path == "" || len(skips) == 0 {
		return false
	}

	for _, p := range skips {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
