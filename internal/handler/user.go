package handler

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/internal/storage"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the authenticated user's profile.
func CurrentUser(c *gin.Context) {
	user, err := service.FindUserById(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, service.UserView(user))
}

// ChangePassword verifies the old password and sets a new one.
func ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	if err := service.ChangePassword(utils.ViewerID(c), req.OldPassword, req.NewPassword); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}

// UpdateAccount patches the account fields present in the request.
func UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	user, err := service.UpdateAccount(utils.ViewerID(c), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, service.UserView(user))
}

// ChangeAvatar replaces the avatar image.
func ChangeAvatar(c *gin.Context) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		utils.Fail(c, apperr.Invalid("avatar file is required"))
		return
	}
	upload, err := storage.UploadMultipart(c.Request.Context(), fh, storage.PrefixAvatar)
	if err != nil {
		utils.Fail(c, apperr.Upstream("error while uploading avatar", err))
		return
	}
	user, err := service.UpdateAvatar(c.Request.Context(), utils.ViewerID(c), upload)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, service.UserView(user))
}

// ChangeCoverImage replaces the cover image.
func ChangeCoverImage(c *gin.Context) {
	fh, err := c.FormFile("cover_image")
	if err != nil {
		utils.Fail(c, apperr.Invalid("cover image file is required"))
		return
	}
	upload, err := storage.UploadMultipart(c.Request.Context(), fh, storage.PrefixCover)
	if err != nil {
		utils.Fail(c, apperr.Upstream("error while uploading cover image", err))
		return
	}
	user, err := service.UpdateCoverImage(c.Request.Context(), utils.ViewerID(c), upload)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, service.UserView(user))
}

// ChannelProfile returns the viewer-aware channel page of a user.
func ChannelProfile(c *gin.Context) {
	profile, err := service.GetUserChannelProfile(
		c.Request.Context(),
		utils.CtxID(c, "channel_id"),
		utils.ViewerID(c),
	)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, profile)
}

// WatchHistory returns the viewer's watch history, most recent uploads first.
func WatchHistory(c *gin.Context) {
	videos, err := service.GetWatchHistory(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, videos)
}
