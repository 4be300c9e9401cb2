package handler

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// CreatePlaylist creates a playlist for the caller.
func CreatePlaylist(c *gin.Context) {
	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	playlist, err := service.CreatePlaylist(utils.ViewerID(c), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, playlist)
}

// MyPlaylists lists the caller's playlists.
func MyPlaylists(c *gin.Context) {
	playlists, err := service.GetUserPlaylists(utils.ViewerID(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, playlists)
}

// GetPlaylist resolves a playlist with its videos in slot order.
func GetPlaylist(c *gin.Context) {
	view, err := service.GetPlaylistById(utils.CtxID(c, "playlist_id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, view)
}

// AddPlaylistVideo appends a video to a playlist.
func AddPlaylistVideo(c *gin.Context) {
	var req dto.PlaylistVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	if err := service.AddVideoToPlaylist(utils.CtxID(c, "playlist_id"), req.VideoID, utils.ViewerID(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}

// RemovePlaylistVideo removes every occurrence of a video from a playlist.
func RemovePlaylistVideo(c *gin.Context) {
	var req dto.PlaylistVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	if err := service.RemoveVideoFromPlaylist(utils.CtxID(c, "playlist_id"), req.VideoID, utils.ViewerID(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}

// UpdatePlaylist patches the playlist name and/or description.
func UpdatePlaylist(c *gin.Context) {
	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	playlist, err := service.UpdatePlaylist(utils.CtxID(c, "playlist_id"), utils.ViewerID(c), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, playlist)
}

// DeletePlaylist removes a playlist and its slots.
func DeletePlaylist(c *gin.Context) {
	if err := service.DeletePlaylist(utils.CtxID(c, "playlist_id"), utils.ViewerID(c)); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}
