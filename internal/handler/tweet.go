package handler

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// CreateTweet creates a tweet with an optional image.
func CreateTweet(c *gin.Context) {
	var req dto.CreateTweetRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	}

	tweet, err := service.CreateTweet(c.Request.Context(), utils.ViewerID(c), req.Content, req.Image)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, tweet)
}

// AllTweets lists every tweet, newest first.
func AllTweets(c *gin.Context) {
	tweets, err := service.GetAllTweets(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, tweets)
}

// UserTweets lists one channel's tweets.
func UserTweets(c *gin.Context) {
	tweets, err := service.GetUserTweets(utils.CtxID(c, "channel_id"), utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, tweets)
}

// UpdateTweet rewrites a tweet's content.
func UpdateTweet(c *gin.Context) {
	var req dto.UpdateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	tweet, err := service.UpdateTweet(utils.CtxID(c, "tweet_id"), utils.ViewerID(c), req.Content)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, tweet)
}

// DeleteTweet removes a tweet and its image object.
func DeleteTweet(c *gin.Context) {
	if err := service.DeleteTweet(c.Request.Context(), utils.CtxID(c, "tweet_id"), utils.ViewerID(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}
