package kv_test

import (
	"context"
	crand "crypto/rand"
	"fmt"
	mrand "math/rand"
	"os"
	"testing"
	"time"

	"github.com/yeisme/assetvault/pkg/configs"
	"github.com/yeisme/assetvault/pkg/internal/storage/kv"
)

func TestMemoryKVBasic(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "gallery:assets", []byte(`[]`), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "gallery:assets")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(got) != `[]` {
		t.Errorf("got %q, want %q", got, `[]`)
	}

	exists, err := store.Exists(ctx, "gallery:assets")
	if err != nil || !exists {
		t.Errorf("exists = %v, %v; want true, nil", exists, err)
	}

	if err := store.Delete(ctx, "gallery:assets"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := store.Get(ctx, "gallery:assets"); err == nil {
		t.Error("expected error after delete, got nil")
	}
}

func TestMemoryKVTTLExpiry(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	// TTL 粒度为秒，用 1s 并等待跨过到期点
	if err := store.Set(ctx, "gallery:ttl", []byte("v"), time.Second); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := store.Get(ctx, "gallery:ttl"); err != nil {
		t.Fatalf("get before expiry failed: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	if _, err := store.Get(ctx, "gallery:ttl"); err == nil {
		t.Error("expected expired key to be gone, got value")
	}

	exists, err := store.Exists(ctx, "gallery:ttl")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}

	if exists {
		t.Error("expired key still reported as existing")
	}
}

func TestMemoryKVKeysPrefix(t *testing.T) {
	ctx := context.Background()

	store, err := kv.NewKVStore(ctx, kv.KVTypeMemory, nil)
	if err != nil {
		t.Fatalf("create memory kv: %v", err)
	}
	defer store.Close()

	for _, k := range []string{"gallery:a", "gallery:b", "admins:a"} {
		if err := store.Set(ctx, k, []byte("v"), 0); err != nil {
			t.Fatalf("set %s failed: %v", k, err)
		}
	}

	keys, err := store.Keys(ctx, "gallery:*")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}

	if len(keys) != 2 {
		t.Errorf("got %d keys %v, want 2", len(keys), keys)
	}

	for _, k := range keys {
		if k != "gallery:a" && k != "gallery:b" {
			t.Errorf("unexpected key %q", k)
		}
	}
}

func TestGroupcacheKVBasic(t *testing.T) {
	ctx := context.Background()

	cfg := &configs.GroupcacheKVConfig{
		Name:       "test-groupcache",
		CacheBytes: 32 * 1024 * 1024, // 32MB
		Peers:      []string{},
		Self:       "http://127.0.0.1:0",
	}

	store, err := kv.NewKVStore(ctx, kv.KVTypeGroupcache, cfg)
	if err != nil {
		t.Fatalf("create groupcache kv: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "gallery:assets", []byte("cached"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := store.Get(ctx, "gallery:assets")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if string(got) != "cached" {
		t.Errorf("got %q, want %q", got, "cached")
	}

	if err := store.Delete(ctx, "gallery:assets"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	exists, err := store.Exists(ctx, "gallery:assets")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}

	if exists {
		t.Error("deleted key still reported as existing")
	}
}

// Optional: enable with ENABLE_REDIS_BENCH=1 and REDIS_ADDR set (default 127.0.0.1:6379).
func BenchmarkRedisKV(b *testing.B) {
	if os.Getenv("ENABLE_REDIS_BENCH") == "" {
		b.Skip("set ENABLE_REDIS_BENCH=1 to enable")
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	cfg := &configs.RedisKVConfig{Addr: addr, Password: "", DB: 0}

	store, err := kv.NewKVStore(context.Background(), kv.KVTypeRedis, cfg)
	if err != nil {
		b.Skipf("redis not available: %v", err)
		return
	}

	benchKV(b, "redis", store)
	_ = store.Close()
}

func BenchmarkMemoryKV(b *testing.B) {
	store, err := kv.NewKVStore(context.Background(), kv.KVTypeMemory, nil)
	if err != nil {
		b.Fatalf("create memory kv: %v", err)
	}

	benchKV(b, "memory", store)
	_ = store.Close()
}

// randBytes returns n random bytes, seeded reproducibly for bench.
func randBytes(n int) []byte {
	buf := make([]byte, n)
	// Try crypto/rand; if it fails (unlikely in tests), fallback to deterministic PRNG.
	if _, err := crand.Read(buf); err != nil {
		mr := mrand.New(mrand.NewSource(42))
		for i := range buf {
			buf[i] = byte(mr.Intn(256))
		}
	}

	return buf
}

// benchKV 执行基本的 Set/Get/Delete 基准测试.
func benchKV(b *testing.B, name string, store kv.KVStore) {
	ctx := context.Background()
	sizes := []int{32, 1024, 64 * 1024}
	ttls := []time.Duration{0, 5 * time.Second}

	for _, size := range sizes {
		payload := randBytes(size)
		for _, ttl := range ttls {
			b.Run(fmt.Sprintf("%s/size=%d/ttl=%s", name, size, ttl), func(b *testing.B) {
				b.ReportAllocs()

				for i := 0; b.Loop(); i++ {
					key := fmt.Sprintf("bench-%s-%d", name, i)
					if err := store.Set(ctx, key, payload, ttl); err != nil {
						b.Fatalf("set failed: %v", err)
					}

					if _, err := store.Get(ctx, key); err != nil {
						b.Fatalf("get failed: %v", err)
					}

					if err := store.Delete(ctx, key); err != nil {
						b.Fatalf("delete failed: %v", err)
					}
				}
			})
		}
	}
}
