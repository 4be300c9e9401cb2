package service_test

import (
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/internal/service"
	"VidTube/model"
	"VidTube/utils"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// memCache is a map-backed utils.Cache so the cache paths can run without
// a Redis server.
type memCache struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

type memEntry struct {
	data     []byte
	deadline time.Time
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]memEntry{}}
}

func (c *memCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok || (!entry.deadline.IsZero() && time.Now().After(entry.deadline)) {
		return errors.New("cache miss")
	}
	return json.Unmarshal(entry.data, dest)
}

func (c *memCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var deadline time.Time
	if expiration > 0 {
		deadline = time.Now().Add(expiration)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memEntry{data: data, deadline: deadline}
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

func (c *memCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func TestFindUserByIdCaching(t *testing.T) {
	cleanTables(t)
	utils.InitCacheTest(newMemCache())
	defer utils.InitCacheTest(nil)

	user := createTestUser(t, "cache_reader")

	first, err := service.FindUserById(user.ID)
	if err != nil {
		t.Fatalf("find user failed: %v", err)
	}
	if first.UserName != "cache_reader" {
		t.Fatalf("got username %q, want cache_reader", first.UserName)
	}

	// Rename behind the cache's back. The next read within the TTL must
	// serve the cached row, proving the first read populated it.
	if err := repo.Db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("user_name", "renamed").Error; err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	second, err := service.FindUserById(user.ID)
	if err != nil {
		t.Fatalf("cached find failed: %v", err)
	}
	if second.UserName != "cache_reader" {
		t.Fatalf("got username %q, want the cached cache_reader", second.UserName)
	}
	if second.Password != "" || second.RefreshToken != "" {
		t.Fatal("cached user must not carry credential columns")
	}

	// A profile mutation invalidates, so the read after it sees the row.
	if _, err := service.UpdateAccount(user.ID, &dto.UpdateAccountRequest{FullName: "Renamed Reader"}); err != nil {
		t.Fatalf("update account failed: %v", err)
	}
	third, err := service.FindUserById(user.ID)
	if err != nil {
		t.Fatalf("find after invalidation failed: %v", err)
	}
	if third.UserName != "renamed" {
		t.Fatalf("got username %q after invalidation, want renamed", third.UserName)
	}
	if third.FullName != "Renamed Reader" {
		t.Fatalf("got full name %q after invalidation, want Renamed Reader", third.FullName)
	}
}

func TestChannelProfileRefreshOnView(t *testing.T) {
	cleanTables(t)
	utils.InitCacheTest(newMemCache())
	defer utils.InitCacheTest(nil)

	owner := createTestUser(t, "cache_owner")
	viewer := createTestUser(t, "cache_viewer")
	video := createTestVideo(t, owner.ID, "cache_video")

	ctx := context.Background()
	before, err := service.GetUserChannelProfile(ctx, owner.ID, viewer.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if before.TotalViews != 0 {
		t.Fatalf("got %d total views before any watch, want 0", before.TotalViews)
	}

	if _, err := service.GetVideoById(ctx, video.ID, viewer.ID); err != nil {
		t.Fatalf("get video failed: %v", err)
	}

	// The watch bumped the view counter, which must push the cached
	// profile out even though its TTL has not lapsed.
	after, err := service.GetUserChannelProfile(ctx, owner.ID, viewer.ID)
	if err != nil {
		t.Fatalf("profile after watch failed: %v", err)
	}
	if after.TotalViews != 1 {
		t.Fatalf("got %d total views after a watch, want 1", after.TotalViews)
	}
}
