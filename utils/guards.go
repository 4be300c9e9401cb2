package utils

import (
	"VidTube/internal/apperr"
	"VidTube/internal/repo"
	"VidTube/model"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses a numeric path parameter.
func pathID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Invalid("invalid " + name)
	}
	return id, nil
}

// verifyExists is the shared guard body: parse the path ID, check the row
// exists, stash the ID under ctxKey.
func verifyExists(c *gin.Context, param, ctxKey, missing string, m interface{}) {
	id, err := pathID(c, param)
	if err != nil {
		Fail(c, err)
		c.Abort()
		return
	}
	var count int64
	if err := repo.Db.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
		Fail(c, err)
		c.Abort()
		return
	}
	if count == 0 {
		Fail(c, apperr.NotFound(missing))
		c.Abort()
		return
	}
	c.Set(ctxKey, id)
	c.Next()
}

// VerifyVideo guards routes with a :videoId path parameter.
func VerifyVideo() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "videoId", "video_id", "video not found", &model.Video{})
	}
}

// VerifyChannel guards routes with a :channelId path parameter.
func VerifyChannel() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "channelId", "channel_id", "channel not found", &model.User{})
	}
}

// VerifyUser guards routes with a :userId path parameter. The target is a
// channel, so the ID lands under the same context key.
func VerifyUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "userId", "channel_id", "user not found", &model.User{})
	}
}

// VerifySubscriber guards routes with a :subscriberId path parameter.
func VerifySubscriber() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "subscriberId", "subscriber_id", "user not found", &model.User{})
	}
}

// VerifyPlaylist guards routes with a :playlistId path parameter.
func VerifyPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "playlistId", "playlist_id", "playlist not found", &model.Playlist{})
	}
}

// VerifyTweet guards routes with a :tweetId path parameter.
func VerifyTweet() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "tweetId", "tweet_id", "tweet not found", &model.Tweet{})
	}
}

// VerifyComment guards routes with a :commentId path parameter.
func VerifyComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		verifyExists(c, "commentId", "comment_id", "comment not found", &model.Comment{})
	}
}

// CtxID reads a guard-stashed uint64 from the gin context.
func CtxID(c *gin.Context, key string) uint64 {
	value, ok := c.Get(key)
	if !ok {
		return 0
	}
	id, _ := value.(uint64)
	return id
}
