package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"VidTube/utils"
	"time"

	"golang.org/x/net/context"
)

// GetUserChannelProfile assembles the channel view of a user: subscription
// counts, viewer's subscribed state, video totals and the published videos.
func GetUserChannelProfile(ctx context.Context, channelID, viewerID uint64) (*dto.ChannelProfile, error) {
	if cached, ok := utils.GetChannelProfileFromCache(ctx, channelID, viewerID); ok {
		return cached, nil
	}

	var channel model.User
	if err := repo.Db.Where("id = ?", channelID).First(&channel).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("channel does not exist")
		}
		return nil, err
	}

	var subscribersCount int64
	if err := repo.Db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&subscribersCount).Error; err != nil {
		return nil, err
	}

	var subscribedToCount int64
	if err := repo.Db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", channelID).
		Count(&subscribedToCount).Error; err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID != 0 {
		var count int64
		if err := repo.Db.Model(&model.Subscription{}).
			Where("channel_id = ? AND subscriber_id = ?", channelID, viewerID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		isSubscribed = count > 0
	}

	// Totals cover every video of the owner, the listing only published ones.
	var totalVideos int64
	if err := repo.Db.Model(&model.Video{}).
		Where("owner_id = ?", channelID).
		Count(&totalVideos).Error; err != nil {
		return nil, err
	}
	var totalViews int64
	if err := repo.Db.Model(&model.Video{}).
		Where("owner_id = ?", channelID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&totalViews).Error; err != nil {
		return nil, err
	}

	var videos []model.Video
	if err := repo.Db.
		Where("owner_id = ? AND is_published = ?", channelID, true).
		Order("id ASC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	owner := ownerSummary(&channel)
	videoViews := make([]dto.VideoView, 0, len(videos))
	for i := range videos {
		videoViews = append(videoViews, videoView(&videos[i], owner))
	}

	profile := &dto.ChannelProfile{
		ID:                        channel.ID,
		Username:                  channel.UserName,
		FullName:                  channel.FullName,
		Email:                     channel.Email,
		AvatarURL:                 channel.AvatarURL,
		CoverURL:                  channel.CoverURL,
		CreatedAt:                 channel.CreatedAt,
		SubscribersCount:          subscribersCount,
		ChannelsSubscribedToCount: subscribedToCount,
		IsSubscribed:              isSubscribed,
		TotalVideos:               totalVideos,
		TotalViews:                totalViews,
		Videos:                    videoViews,
	}
	_ = utils.SetChannelProfileToCache(ctx, channelID, viewerID, profile, 30*time.Second)
	return profile, nil
}

// GetWatchHistory resolves the videos a user has watched, newest video
// first by the video's own creation time (not by watch order).
func GetWatchHistory(userID uint64) ([]dto.VideoView, error) {
	var videoIDs []uint64
	if err := repo.Db.Model(&model.WatchHistory{}).
		Where("user_id = ?", userID).
		Distinct("video_id").
		Pluck("video_id", &videoIDs).Error; err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		return []dto.VideoView{}, nil
	}

	var videos []model.Video
	if err := repo.Db.
		Where("id IN ?", videoIDs).
		Order("created_at DESC, id DESC").
		Find(&videos).Error; err != nil {
		return nil, err
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
	return views, nil
}
