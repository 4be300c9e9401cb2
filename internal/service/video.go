package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/internal/storage"
	"VidTube/model"
	"VidTube/utils"
	"strings"
	"time"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

const defaultPageSize = 10

// ListVideos pages through published videos with their owner summaries.
// An empty result page is reported as not found, matching the established
// API behavior clients rely on.
func ListVideos(ctx context.Context, req *dto.VideoListRequest) (*dto.VideoListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	if cached, ok := utils.GetVideoListFromCache(ctx, page, limit, req.OrderBy, req.OrderDesc); ok {
		return cached, nil
	}

	query := repo.Db.Model(&model.Video{}).Where("is_published = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	order := "id ASC"
	if orderBy := sanitizeOrderBy(req.OrderBy); orderBy != "" {
		if req.OrderDesc {
			order = orderBy + " DESC, id DESC"
		} else {
			order = orderBy + " ASC, id ASC"
		}
	}

	var videos []model.Video
	if err := query.
		Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, apperr.NotFound("no videos found")
	}

	ownerIDs := make([]uint64, 0, len(videos))
	for i := range videos {
		ownerIDs = append(ownerIDs, videos[i].OwnerID)
	}
	owners, err := ownerSummaryMap(ownerIDs)
	if err != nil {
		return nil, err
	}

	views := make([]dto.VideoView, 0, len(videos))
	for i := range videos {
		views = append(views, videoView(&videos[i], owners[videos[i].OwnerID]))
	}

	resp := &dto.VideoListResponse{
		Videos:      views,
		CurrentPage: page,
		TotalPages:  total/int64(limit) + 1,
		TotalVideos: total,
	}
	_ = utils.SetVideoListToCache(ctx, page, limit, req.OrderBy, req.OrderDesc, resp, 30*time.Second)
	return resp, nil
}

// GetVideoById returns the viewer-aware video detail. Every successful call
// bumps the view counter and appends to the viewer's watch history; the two
// side effects are each atomic but not transactional with one another.
func GetVideoById(ctx context.Context, videoID, viewerID uint64) (*dto.VideoDetail, error) {
	result := repo.Db.Model(&model.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.NotFound("video not found")
	}

	if viewerID != 0 {
		if err := repo.Db.Create(&model.WatchHistory{
			UserID:  viewerID,
			VideoID: videoID,
		}).Error; err != nil {
			return nil, err
		}
	}

	var video model.Video
	if err := repo.Db.Where("id = ?", videoID).First(&video).Error; err != nil {
		return nil, err
	}

	// The owner's channel profile reports total views, so the bump above
	// makes any cached copy stale.
	_ = utils.InvalidateChannelProfileCache(ctx, video.OwnerID)

	var owner model.User
	if err := repo.Db.Where("id = ?", video.OwnerID).First(&owner).Error; err != nil {
		return nil, err
	}

	var subscribersCount int64
	if err := repo.Db.Model(&model.Subscription{}).
		Where("channel_id = ?", video.OwnerID).
		Count(&subscribersCount).Error; err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != 0 {
		var count int64
		if err := repo.Db.Model(&model.Subscription{}).
			Where("channel_id = ? AND subscriber_id = ?", video.OwnerID, viewerID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		isSubscribed = count > 0
	}

	return &dto.VideoDetail{
		VideoView:        videoView(&video, ownerSummary(&owner)),
		SubscribersCount: subscribersCount,
		IsSubscribed:     isSubscribed,
	}, nil
}

// PublishVideo uploads the media pair and creates the video record.
func PublishVideo(ctx context.Context, ownerID uint64, req *dto.PublishVideoRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}
	if req.VideoFile == nil {
		return nil, apperr.Invalid("video file is missing")
	}
	if req.Thumbnail == nil {
		return nil, apperr.Invalid("thumbnail file is missing")
	}

	videoUpload, err := storage.UploadMultipart(ctx, req.VideoFile, storage.PrefixVideo)
	if err != nil {
		return nil, apperr.Upstream("error while uploading video", err)
	}
	thumbUpload, err := storage.UploadMultipart(ctx, req.Thumbnail, storage.PrefixThumb)
	if err != nil {
		return nil, apperr.Upstream("error while uploading thumbnail", err)
	}

	video := &model.Video{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    videoUpload.URL,
		VideoObject: videoUpload.ObjectName,
		ThumbURL:    thumbUpload.URL,
		ThumbObject: thumbUpload.ObjectName,
		Duration:    req.Duration,
		IsPublished: true,
		OwnerID:     ownerID,
	}
	if err := repo.Db.Create(video).Error; err != nil {
		return nil, err
	}
	_ = utils.InvalidateVideoListCache(ctx)
	_ = utils.InvalidateChannelProfileCache(ctx, ownerID)
	return video, nil
}

// GetVideoDownloadURL issues a time-limited direct download link for the
// video file.
func GetVideoDownloadURL(ctx context.Context, videoID uint64) (string, error) {
	var video model.Video
	if err := repo.Db.Where("id = ?", videoID).First(&video).Error; err != nil {
		if isNotFound(err) {
			return "", apperr.NotFound("video not found")
		}
		return "", err
	}
	url, err := storage.PresignedURL(ctx, video.VideoObject)
	if err != nil {
		return "", apperr.Upstream("failed to sign download url", err)
	}
	return url, nil
}

// UpdateVideoDetails updates title and/or description.
func UpdateVideoDetails(videoID, actorID uint64, req *dto.UpdateVideoDetailsRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Invalid("at least one field is required")
	}

	video, err := getOwnedVideo(videoID, actorID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(req.Title) != "" {
		updates["title"] = req.Title
	}
	if strings.TrimSpace(req.Description) != "" {
		updates["description"] = req.Description
	}
	if err := repo.Db.Model(video).Updates(updates).Error; err != nil {
		return nil, err
	}
	_ = utils.InvalidateVideoListCache(context.Background())
	return video, nil
}

// UpdateVideoThumbnail replaces the thumbnail. The old object is deleted on
// the media store first; a failed delete aborts the replacement.
func UpdateVideoThumbnail(ctx context.Context, videoID, actorID uint64, result *storage.UploadResult) (*model.Video, error) {
	video, err := getOwnedVideo(videoID, actorID)
	if err != nil {
		return nil, err
	}

	if video.ThumbObject != "" {
		if err := storage.Remove(ctx, video.ThumbObject); err != nil {
			return nil, apperr.Upstream("failed to delete old thumbnail", err)
		}
	}

	if err := repo.Db.Model(video).Updates(map[string]interface{}{
		"thumb_url":    result.URL,
		"thumb_object": result.ObjectName,
	}).Error; err != nil {
		return nil, err
	}
	video.ThumbURL = result.URL
	video.ThumbObject = result.ObjectName
	_ = utils.InvalidateVideoListCache(ctx)
	return video, nil
}

// DeleteVideo removes the media objects first, then the record. A media
// delete failure aborts; a later record failure can leave a record pointing
// at deleted media, which is reported, not repaired.
func DeleteVideo(ctx context.Context, videoID, actorID uint64) error {
	video, err := getOwnedVideo(videoID, actorID)
	if err != nil {
		return err
	}

	if err := storage.Remove(ctx, video.VideoObject); err != nil {
		return apperr.Upstream("failed to delete video file", err)
	}
	if err := storage.Remove(ctx, video.ThumbObject); err != nil {
		return apperr.Upstream("failed to delete thumbnail", err)
	}

	if err := repo.Db.Delete(&model.Video{}, videoID).Error; err != nil {
		return err
	}
	_ = utils.InvalidateVideoListCache(ctx)
	_ = utils.InvalidateChannelProfileCache(ctx, video.OwnerID)
	return nil
}

// getOwnedVideo loads a video and verifies the actor owns it.
func getOwnedVideo(videoID, actorID uint64) (*model.Video, error) {
	var video model.Video
	if err := repo.Db.Where("id = ?", videoID).First(&video).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("video not found")
		}
		return nil, err
	}
	if video.OwnerID != actorID {
		return nil, apperr.Forbidden("you are not the owner of this video")
	}
	return &video, nil
}
