package utils

import (
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// DeleteByPattern deletes cache entries by pattern.
func (c *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

// Exists checks whether a cache key exists.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type CacheManager struct {
	cache Cache
}

var globalCacheManager *CacheManager
var cacheManagerOnce sync.Once

// InitCacheManager initializes the cache manager.
func InitCacheManager() {
	cacheManagerOnce.Do(func() {
		if repo.Redis == nil {
			return
		}
		globalCacheManager = &CacheManager{
			cache: NewRedisCache(repo.Redis),
		}
	})
}

// GetCacheManager returns the cache manager, nil when Redis is absent. The
// read views work without it, just uncached.
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		InitCacheManager()
	}
	return globalCacheManager
}

// InitCacheTest installs a cache implementation directly, for tests that
// exercise the cache paths without a Redis server. Passing nil disables
// caching again.
func InitCacheTest(c Cache) {
	if c == nil {
		globalCacheManager = nil
		return
	}
	globalCacheManager = &CacheManager{cache: c}
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const (
	CacheKeyVideoList      = "video:list"
	CacheKeyChannelProfile = "channel:profile"
	CacheKeyUserInfo       = "user:info"
	CacheKeySession        = "session"
)

// GetVideoListFromCache reads a cached video listing page.
func GetVideoListFromCache(ctx context.Context, page, limit int, orderBy string, orderDesc bool) (*dto.VideoListResponse, bool) {
	manager := GetCacheManager()
	if manager == nil {
		return nil, false
	}
	key := BuildCacheKey(CacheKeyVideoList, page, limit, orderBy, orderDesc)

	var result dto.VideoListResponse
	if err := manager.cache.Get(ctx, key, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetVideoListToCache writes a cached video listing page.
func SetVideoListToCache(ctx context.Context, page, limit int, orderBy string, orderDesc bool, data *dto.VideoListResponse, expiration time.Duration) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeyVideoList, page, limit, orderBy, orderDesc)
	return manager.cache.Set(ctx, key, data, expiration)
}

// InvalidateVideoListCache clears every cached video listing page.
func InvalidateVideoListCache(ctx context.Context) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	return manager.cache.DeleteByPattern(ctx, CacheKeyVideoList+":*")
}

// GetChannelProfileFromCache reads a cached channel profile. Profiles are
// viewer-aware, so the viewer is part of the key.
func GetChannelProfileFromCache(ctx context.Context, channelID, viewerID uint64) (*dto.ChannelProfile, bool) {
	manager := GetCacheManager()
	if manager == nil {
		return nil, false
	}
	key := BuildCacheKey(CacheKeyChannelProfile, channelID, viewerID)

	var result dto.ChannelProfile
	if err := manager.cache.Get(ctx, key, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetChannelProfileToCache writes a cached channel profile.
func SetChannelProfileToCache(ctx context.Context, channelID, viewerID uint64, data *dto.ChannelProfile, expiration time.Duration) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeyChannelProfile, channelID, viewerID)
	return manager.cache.Set(ctx, key, data, expiration)
}

// InvalidateChannelProfileCache clears all cached views of a channel.
func InvalidateChannelProfileCache(ctx context.Context, channelID uint64) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	return manager.cache.DeleteByPattern(ctx, BuildCacheKey(CacheKeyChannelProfile, channelID)+":*")
}

// GetUserInfoFromCache reads cached user info.
func GetUserInfoFromCache(ctx context.Context, userId uint64) (*model.User, bool) {
	manager := GetCacheManager()
	if manager == nil {
		return nil, false
	}
	key := BuildCacheKey(CacheKeyUserInfo, userId)

	var result model.User
	if err := manager.cache.Get(ctx, key, &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetUserInfoToCache writes cached user info.
func SetUserInfoToCache(ctx context.Context, userId uint64, data *model.User, expiration time.Duration) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeyUserInfo, userId)
	return manager.cache.Set(ctx, key, data, expiration)
}

// InvalidateUserInfoCache clears cached user info.
func InvalidateUserInfoCache(ctx context.Context, userId uint64) error {
	manager := GetCacheManager()
	if manager == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeyUserInfo, userId)
	return manager.cache.Delete(ctx, key)
}

// TrackSession mirrors a refresh session into Redis with the refresh TTL.
// The expired-key listener revokes the stored token when the TTL lapses.
func TrackSession(ctx context.Context, userId uint64, ttl time.Duration) error {
	if repo.Redis == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeySession, userId)
	return repo.Redis.Set(ctx, key, "1", ttl).Err()
}

// DropSession removes the session mirror on logout.
func DropSession(ctx context.Context, userId uint64) error {
	if repo.Redis == nil {
		return nil
	}
	key := BuildCacheKey(CacheKeySession, userId)
	return repo.Redis.Del(ctx, key).Err()
}
