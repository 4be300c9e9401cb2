package service_test

import (
	"VidTube/config"
	"VidTube/internal/repo"
	"VidTube/internal/service"
	"VidTube/internal/storage"
	"VidTube/model"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeStore is an in-memory media store so the delegate paths run without
// MinIO.
type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (s *fakeStore) key(bucket, object string) string {
	return bucket + "/" + object
}

func (s *fakeStore) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts storage.PutOptions) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[s.key(bucket, object)] = data
	return nil
}

func (s *fakeStore) RemoveObject(ctx context.Context, bucket, object string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, s.key(bucket, object))
	return nil
}

func (s *fakeStore) PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration) (string, error) {
	return "http://fake/" + bucket + "/" + object, nil
}

func (s *fakeStore) has(object string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.objects {
		if strings.HasSuffix(key, "/"+object) {
			return true
		}
	}
	return false
}

var testStore *fakeStore

func TestMain(m *testing.M) {
	config.InitConfig()

	dir, err := os.MkdirTemp("", "vidtube-test")
	if err != nil {
		fmt.Println("mkdir temp failed:", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	if err := repo.InitSqliteTest(filepath.Join(dir, "vidtube.db")); err != nil {
		fmt.Println("init sqlite failed:", err)
		os.Exit(1)
	}

	testStore = newFakeStore()
	storage.Default = testStore

	os.Exit(m.Run())
}

// cleanTables clears test data in foreign key dependency order.
func cleanTables(t *testing.T) {
	t.Helper()
	tables := []string{
		"like_record",
		"watch_history",
		"playlist_video",
		"playlist",
		"comment",
		"subscription",
		"tweet",
		"video",
		"user_db",
	}
	for _, table := range tables {
		if err := repo.Db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("clean %s failed: %v", table, err)
		}
	}
}

func createTestUser(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{
		UserName:  name,
		Password:  "123456",
		Email:     name + "@test.com",
		FullName:  "Test " + name,
		AvatarURL: "http://fake/avatars/" + name + ".png",
	}
	if err := service.CreateUser(user); err != nil {
		t.Fatalf("create user %s failed: %v", name, err)
	}
	return user
}

func createTestVideo(t *testing.T, ownerID uint64, title string) *model.Video {
	t.Helper()
	return createTestVideoAt(t, ownerID, title, time.Now())
}

func createTestVideoAt(t *testing.T, ownerID uint64, title string, createdAt time.Time) *model.Video {
	t.Helper()
	video := &model.Video{
		Title:       title,
		Description: "description of " + title,
		VideoURL:    "http://fake/videos/" + title + ".mp4",
		VideoObject: "videos/" + title + ".mp4",
		ThumbURL:    "http://fake/thumbnails/" + title + ".png",
		ThumbObject: "thumbnails/" + title + ".png",
		Duration:    12.5,
		IsPublished: true,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
	}
	if err := repo.Db.Create(video).Error; err != nil {
		t.Fatalf("create video %s failed: %v", title, err)
	}
	return video
}

func createTestTweet(t *testing.T, ownerID uint64, content string) *model.Tweet {
	t.Helper()
	tweet, err := service.CreateTweet(context.Background(), ownerID, content, nil)
	if err != nil {
		t.Fatalf("create tweet failed: %v", err)
	}
	return tweet
}

// makeFileHeader builds a real multipart file header the way a browser
// upload would produce it.
func makeFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file failed: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fh, err := req.FormFile(field)
	if err != nil {
		t.Fatalf("parse form file failed: %v", err)
	}
	return fh
}
