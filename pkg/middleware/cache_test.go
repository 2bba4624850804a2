package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	appcache "github.com/yeisme/assetvault/pkg/cache"
	"github.com/yeisme/assetvault/pkg/internal/storage/kv"
)

func newCacheTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := kv.NewMemoryKV(context.Background(), nil)
	if err != nil {
		t.Fatalf("memory kv: %v", err)
	}

	cfg := DefaultCacheConfig(appcache.NewCache(store))
	cfg.TTL = time.Minute

	r := gin.New()
	r.Use(CacheMiddleware(cfg))
	r.GET("/assets/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "asset-"+c.Param("id"))
	})

	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	return w
}

// waitForHit 轮询直到异步写入的缓存条目可命中.
func waitForHit(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w := doGet(r, path); w.Header().Get("X-Cache") == "HIT" {
			return w
		}

		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("cache entry for %s never became a hit", path)

	return nil
}

func TestCacheMiddlewareKeysByConcretePath(t *testing.T) {
	r := newCacheTestRouter(t)

	// 先让 /assets/a 进入缓存
	if w := doGet(r, "/assets/a"); w.Body.String() != "asset-a" {
		t.Fatalf("first read = %q", w.Body.String())
	}

	hit := waitForHit(t, r, "/assets/a")
	if hit.Body.String() != "asset-a" {
		t.Fatalf("cached read = %q, want asset-a", hit.Body.String())
	}

	// 同一路由模式下的另一个资源必须拿到自己的响应
	w := doGet(r, "/assets/b")
	if w.Body.String() != "asset-b" {
		t.Fatalf("read b = %q, want asset-b (served another asset's cache entry)", w.Body.String())
	}

	if w.Header().Get("X-Cache") == "HIT" {
		t.Fatal("read b hit a cache entry it never stored")
	}
}

func TestCacheMiddlewareKeysByQuery(t *testing.T) {
	r := newCacheTestRouter(t)

	doGet(r, "/assets/a?v=1")
	waitForHit(t, r, "/assets/a?v=1")

	// query 不同则键不同
	if w := doGet(r, "/assets/a?v=2"); w.Header().Get("X-Cache") == "HIT" {
		t.Fatal("different query served the same cache entry")
	}
}
