package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"VidTube/utils"
	"fmt"
	"time"

	"golang.org/x/net/context"
)

// ToggleSubscription flips the caller's subscription to a channel. Same
// race discipline as the like toggles, backed by the unique pair index.
func ToggleSubscription(ctx context.Context, channelID, subscriberID uint64) (*dto.ToggleResult, error) {
	if channelID == subscriberID {
		return nil, apperr.Invalid("you cannot subscribe to your own channel")
	}

	if repo.Redis != nil {
		lock := repo.NewRedisLock(repo.Redis,
			fmt.Sprintf("lock:subscription:%d:%d", channelID, subscriberID),
			5*time.Second)
		if err := lock.Lock(ctx); err == nil {
			defer lock.Unlock(ctx)
		}
	}

	var result *dto.ToggleResult
	var found model.Subscription
	err := repo.Db.
		Where("channel_id = ? AND subscriber_id = ?", channelID, subscriberID).
		First(&found).Error
	switch {
	case err == nil:
		if err := repo.Db.Delete(&model.Subscription{}, found.ID).Error; err != nil {
			return nil, err
		}
		result = &dto.ToggleResult{Toggled: "removed"}
	case isNotFound(err):
		sub := &model.Subscription{ChannelID: channelID, SubscriberID: subscriberID}
		if err := repo.Db.Create(sub).Error; err != nil {
			if isDuplicateKey(err) {
				if err := repo.Db.
					Where("channel_id = ? AND subscriber_id = ?", channelID, subscriberID).
					Delete(&model.Subscription{}).Error; err != nil {
					return nil, err
				}
				result = &dto.ToggleResult{Toggled: "removed"}
				break
			}
			return nil, err
		}
		result = &dto.ToggleResult{Toggled: "added"}
	default:
		return nil, err
	}

	_ = utils.InvalidateChannelProfileCache(ctx, channelID)
	return result, nil
}

// GetSubscribers lists the users subscribed to a channel.
func GetSubscribers(channelID uint64) (*dto.SubscriberListResponse, error) {
	var subs []model.Subscription
	if err := repo.Db.
		Where("channel_id = ?", channelID).
		Order("created_at DESC, id DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}

	subscriberIDs := make([]uint64, 0, len(subs))
	for i := range subs {
		subscriberIDs = append(subscriberIDs, subs[i].SubscriberID)
	}
	summaries, err := ownerSummaryMap(subscriberIDs)
	if err != nil {
		return nil, err
	}

	subscribers := make([]dto.OwnerSummary, 0, len(subs))
	for i := range subs {
		if s, ok := summaries[subs[i].SubscriberID]; ok {
			subscribers = append(subscribers, s)
		}
	}

	return &dto.SubscriberListResponse{
		Subscribers:      subscribers,
		SubscribersCount: int64(len(subscribers)),
	}, nil
}

// GetSubscribedChannels lists the channels a user subscribes to, each with
// its own subscriber count.
func GetSubscribedChannels(subscriberID uint64) (*dto.SubscribedChannelsResponse, error) {
	var subs []model.Subscription
	if err := repo.Db.
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC, id DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}

	channels := make([]dto.ChannelSummary, 0, len(subs))
	if len(subs) == 0 {
		return &dto.SubscribedChannelsResponse{Channels: channels}, nil
	}

	channelIDs := make([]uint64, 0, len(subs))
	for i := range subs {
		channelIDs = append(channelIDs, subs[i].ChannelID)
	}
	summaries, err := ownerSummaryMap(channelIDs)
	if err != nil {
		return nil, err
	}

	countByChannel, err := groupCount(&model.Subscription{}, "channel_id", channelIDs)
	if err != nil {
		return nil, err
	}

	for i := range subs {
		summary, ok := summaries[subs[i].ChannelID]
		if !ok {
			continue
		}
		channels = append(channels, dto.ChannelSummary{
			OwnerSummary:     summary,
			SubscribersCount: countByChannel[subs[i].ChannelID],
		})
	}

	return &dto.SubscribedChannelsResponse{
		Channels:      channels,
		ChannelsCount: int64(len(channels)),
	}, nil
}

// GetSubscriptionVideos returns the published videos of every channel the
// user subscribes to, newest first.
func GetSubscriptionVideos(subscriberID uint64) ([]dto.VideoView, error) {
	var channelIDs []uint64
	if err := repo.Db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Pluck("channel_id", &channelIDs).Error; err != nil {
		return nil, err
	}

	views := make([]dto.VideoView, 0)
	if len(channelIDs) == 0 {
		return views, nil
	}

	var videos []model.Video
	if err := repo.Db.
		Where("owner_id IN ? AND is_published = ?", channelIDs, true).
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

	for i := range videos {
		views = append(views, videoView(&videos[i], owners[videos[i].OwnerID]))
	}
	return views, nil
}
