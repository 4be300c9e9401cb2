package handler

import (
	"VidTube/internal/service"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// ToggleVideoLike flips the caller's like on a video.
func ToggleVideoLike(c *gin.Context) {
	result, err := service.ToggleVideoLike(c.Request.Context(), utils.CtxID(c, "video_id"), utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, result)
}

// ToggleCommentLike flips the caller's like on a comment.
func ToggleCommentLike(c *gin.Context) {
	result, err := service.ToggleCommentLike(c.Request.Context(), utils.CtxID(c, "comment_id"), utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, result)
}

// ToggleTweetLike flips the caller's like on a tweet.
func ToggleTweetLike(c *gin.Context) {
	result, err := service.ToggleTweetLike(c.Request.Context(), utils.CtxID(c, "tweet_id"), utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, result)
}

// LikedVideos lists the videos the caller has liked.
func LikedVideos(c *gin.Context) {
	videos, err := service.GetLikedVideos(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, videos)
}

// LikedComments lists the comments the caller has liked.
func LikedComments(c *gin.Context) {
	comments, err := service.GetLikedComments(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, comments)
}

// LikedTweets lists the tweets the caller has liked.
func LikedTweets(c *gin.Context) {
	tweets, err := service.GetLikedTweets(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, tweets)
}
