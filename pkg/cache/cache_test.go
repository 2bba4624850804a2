package cache_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/assetvault/pkg/cache"
)

// galleryEntry 测试用的画廊条目结构体.
type galleryEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// mockKVStore 模拟KV存储实现.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, errors.New("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]
	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))

	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.data {
		if pattern == "" || pattern == "*" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (m *mockKVStore) Close() error {
	return nil
}

// TestNewCache 测试 NewCache 函数.
func TestNewCache(t *testing.T) {
	mockStore := newMockKVStore()

	c := cache.NewCache(mockStore)
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

// TestCacheSetGet 测试类型化的 Set/Get.
func TestCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	entry := galleryEntry{ID: "01J0", Title: "Team logo", Status: "approved"}

	if err := cache.Set(ctx, c, "gallery:assets:01J0", entry, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := cache.Get[galleryEntry](ctx, c, "gallery:assets:01J0")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got != entry {
		t.Errorf("Get returned %+v, want %+v", got, entry)
	}

	// 未命中不返回值
	if _, err := cache.Get[galleryEntry](ctx, c, "gallery:assets:missing"); err == nil {
		t.Error("expected error for missing key, got nil")
	}
}

// TestCacheGetOrSet 测试 GetOrSet 模式.
func TestCacheGetOrSet(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	calls := 0
	getter := func() ([]galleryEntry, error) {
		calls++
		return []galleryEntry{{ID: "01J0", Title: "Team logo", Status: "approved"}}, nil
	}

	first, err := cache.GetOrSet(ctx, c, "gallery:assets", getter, time.Minute)
	if err != nil {
		t.Fatalf("GetOrSet failed: %v", err)
	}

	if len(first) != 1 {
		t.Fatalf("got %d entries, want 1", len(first))
	}

	// 第二次命中缓存，不再调用 getter
	if _, err := cache.GetOrSet(ctx, c, "gallery:assets", getter, time.Minute); err != nil {
		t.Fatalf("GetOrSet (cached) failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("getter called %d times, want 1", calls)
	}

	// getter 失败时错误原样返回
	failing := func() ([]galleryEntry, error) {
		return nil, errors.New("db unavailable")
	}

	if _, err := cache.GetOrSet(ctx, c, "gallery:other", failing, time.Minute); err == nil {
		t.Error("expected getter error, got nil")
	}
}

// TestCacheInvalidatePrefix 测试前缀失效.
func TestCacheInvalidatePrefix(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	keys := []string{"gallery:assets", "gallery:assets:logo", "admins:list"}
	for _, k := range keys {
		if err := cache.Set(ctx, c, k, "v", time.Minute); err != nil {
			t.Fatalf("Set %s failed: %v", k, err)
		}
	}

	if err := c.InvalidatePrefix(ctx, "gallery:"); err != nil {
		t.Fatalf("InvalidatePrefix failed: %v", err)
	}

	for _, k := range []string{"gallery:assets", "gallery:assets:logo"} {
		exists, err := c.Exists(ctx, k)
		if err != nil {
			t.Fatalf("Exists %s failed: %v", k, err)
		}

		if exists {
			t.Errorf("key %s survived prefix invalidation", k)
		}
	}

	// 其他前缀不受影响
	exists, err := c.Exists(ctx, "admins:list")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}

	if !exists {
		t.Error("unrelated key was invalidated")
	}
}

// TestCacheRaw 测试原始字节读写.
func TestCacheRaw(t *testing.T) {
	ctx := context.Background()
	c := cache.NewCache(newMockKVStore())

	body := []byte(`{"assets":[]}`)
	if err := c.SetRaw(ctx, "gallery:resp:abc", body, time.Minute); err != nil {
		t.Fatalf("SetRaw failed: %v", err)
	}

	got, err := c.GetRaw(ctx, "gallery:resp:abc")
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}

	if string(got) != string(body) {
		t.Errorf("GetRaw returned %q, want %q", got, body)
	}
}
