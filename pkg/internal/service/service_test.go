package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yeisme/assetvault/pkg/internal/model"
	"github.com/yeisme/assetvault/pkg/internal/types"
)

// fakeBlobStore 内存对象存储.
type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}}
}

func (f *fakeBlobStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectName] = data

	return nil
}

func (f *fakeBlobStore) Download(_ context.Context, objectName string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[objectName]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectName)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeBlobStore) Remove(_ context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)

	return nil
}

func (f *fakeBlobStore) has(objectName string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[objectName]

	return ok
}

func (f *fakeBlobStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.objects)
}

// memPublisher 记录发布的主题.
type memPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *memPublisher) Publish(_ context.Context, topic string, _ ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)

	return nil
}

func (p *memPublisher) published(topic string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, t := range p.topics {
		if t == topic {
			return true
		}
	}

	return false
}

// newTestService 每个测试用独立的内存 sqlite.
func newTestService(t *testing.T) (*GalleryService, *fakeBlobStore, *memPublisher) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&model.Asset{}, &model.Admin{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	blobs := newFakeBlobStore()
	pub := &memPublisher{}

	return NewGalleryServiceWith(db, blobs, nil, pub), blobs, pub
}

func seedAdmin(t *testing.T, s *GalleryService, userID string) {
	t.Helper()

	if err := s.db.Create(&model.Admin{UserID: userID}).Error; err != nil {
		t.Fatalf("seed admin %s: %v", userID, err)
	}
}

func submitAs(t *testing.T, s *GalleryService, sess types.Session, title, category, fileName string) *types.SubmitAssetResponse {
	t.Helper()

	body := []byte("png-bytes")
	resp, err := s.SubmitAsset(context.Background(), sess,
		&types.SubmitAssetRequest{Title: title, Category: category},
		fileName, bytes.NewReader(body), int64(len(body)), "image/png")
	if err != nil {
		t.Fatalf("submit %q: %v", title, err)
	}

	return resp
}

var (
	adminSession = types.Session{UserID: "100", UserName: "mira"}
	userSession  = types.Session{UserID: "200", UserName: "otto"}
)
