package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/types"
)

func newAuthTestRouter(conf configs.AuthConfig) (*gin.Engine, *types.Session) {
	gin.SetMode(gin.TestMode)

	var captured types.Session

	r := gin.New()
	r.Use(SessionMiddleware(conf))
	r.GET("/public", func(c *gin.Context) {
		captured = GetSession(c)
		c.Status(http.StatusOK)
	})
	r.GET("/private", RequireSession(), func(c *gin.Context) {
		captured = GetSession(c)
		c.Status(http.StatusOK)
	})

	return r, &captured
}

func TestSessionMiddlewareParsesProxyHeaders(t *testing.T) {
	r, captured := newAuthTestRouter(configs.AuthConfig{Enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-Auth-Request-User", "user-42")
	req.Header.Set("X-Auth-Request-Preferred-Username", "alice")
	req.Header.Set("X-Auth-Request-Picture", "https://img.example/a.png")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if captured.UserID != "user-42" || captured.UserName != "alice" {
		t.Fatalf("session = %+v", *captured)
	}

	if captured.AvatarURL != "https://img.example/a.png" {
		t.Errorf("avatar = %q", captured.AvatarURL)
	}
}

func TestSessionMiddlewareAnonymousPublic(t *testing.T) {
	r, captured := newAuthTestRouter(configs.AuthConfig{Enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 公共路由匿名可访问，会话为零值
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if captured.Valid() {
		t.Fatalf("expected anonymous session, got %+v", *captured)
	}
}

func TestRequireSessionRejectsAnonymous(t *testing.T) {
	r, _ := newAuthTestRouter(configs.AuthConfig{Enabled: true})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestSessionMiddlewareDevQueryFallback(t *testing.T) {
	r, captured := newAuthTestRouter(configs.AuthConfig{Enabled: true, DevAllowQuery: true})

	req := httptest.NewRequest(http.MethodGet, "/private?user=dev-1&name=dev", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if captured.UserID != "dev-1" {
		t.Fatalf("user id = %q, want dev-1", captured.UserID)
	}
}

func TestSessionMiddlewareSkipPaths(t *testing.T) {
	conf := configs.AuthConfig{Enabled: true, SkipPaths: []string{"/public"}}
	r, captured := newAuthTestRouter(conf)

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-Auth-Request-User", "user-42")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 跳过路径不解析身份
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if captured.Valid() {
		t.Fatalf("expected no session on skipped path, got %+v", *captured)
	}
}
