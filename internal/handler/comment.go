package handler

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// ListVideoComments returns a page of comments under a video.
func ListVideoComments(c *gin.Context) {
	var req dto.CommentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	resp, err := service.ListVideoComments(utils.CtxID(c, "video_id"), utils.ViewerID(c), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, resp)
}

// ListTweetComments returns the comments under a tweet.
func ListTweetComments(c *gin.Context) {
	views, err := service.ListTweetComments(utils.CtxID(c, "tweet_id"), utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, views)
}

// AddVideoComment creates a comment under a video.
func AddVideoComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	view, err := service.AddVideoComment(utils.CtxID(c, "video_id"), utils.ViewerID(c), req.Content)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, view)
}

// AddTweetComment creates a comment under a tweet.
func AddTweetComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	view, err := service.AddTweetComment(utils.CtxID(c, "tweet_id"), utils.ViewerID(c), req.Content)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, view)
}

// UpdateComment rewrites a comment's content.
func UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	comment, err := service.UpdateComment(utils.CtxID(c, "comment_id"), utils.ViewerID(c), req.Content)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, comment)
}

// DeleteComment removes a comment.
func DeleteComment(c *gin.Context) {
	if err := service.DeleteComment(utils.CtxID(c, "comment_id"), utils.ViewerID(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}
