package handler

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/internal/storage"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// ListVideos returns a page of published videos.
func ListVideos(c *gin.Context) {
	var req dto.VideoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	resp, err := service.ListVideos(c.Request.Context(), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, resp)
}

// GetVideo returns one video with its viewer-aware detail.
func GetVideo(c *gin.Context) {
	detail, err := service.GetVideoById(
		c.Request.Context(),
		utils.CtxID(c, "video_id"),
		utils.ViewerID(c),
	)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, detail)
}

// DownloadVideo returns a time-limited direct download link.
func DownloadVideo(c *gin.Context) {
	url, err := service.GetVideoDownloadURL(c.Request.Context(), utils.CtxID(c, "video_id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, gin.H{"download_url": url})
}

// PublishVideo uploads the media pair and creates the video.
func PublishVideo(c *gin.Context) {
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	if fh, err := c.FormFile("video_file"); err == nil {
		req.VideoFile = fh
	}
	if fh, err := c.FormFile("thumbnail"); err == nil {
		req.Thumbnail = fh
	}

	video, err := service.PublishVideo(c.Request.Context(), utils.ViewerID(c), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, video)
}

// UpdateVideo patches the title and/or description.
func UpdateVideo(c *gin.Context) {
	var req dto.UpdateVideoDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	video, err := service.UpdateVideoDetails(utils.CtxID(c, "video_id"), utils.ViewerID(c), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, video)
}

// UpdateThumbnail replaces the thumbnail image.
func UpdateThumbnail(c *gin.Context) {
	fh, err := c.FormFile("thumbnail")
	if err != nil {
		utils.Fail(c, apperr.Invalid("thumbnail file is required"))
		return
	}
	upload, err := storage.UploadMultipart(c.Request.Context(), fh, storage.PrefixThumb)
	if err != nil {
		utils.Fail(c, apperr.Upstream("error while uploading thumbnail", err))
		return
	}
	video, err := service.UpdateVideoThumbnail(
		c.Request.Context(),
		utils.CtxID(c, "video_id"),
		utils.ViewerID(c),
		upload,
	)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, video)
}

// DeleteVideo removes a video and its media objects.
func DeleteVideo(c *gin.Context) {
	if err := service.DeleteVideo(
		c.Request.Context(),
		utils.CtxID(c, "video_id"),
		utils.ViewerID(c),
	); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, nil)
}
