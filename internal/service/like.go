package service

import (
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"fmt"
	"time"

	"golang.org/x/net/context"
)

// ToggleVideoLike flips the caller's like on a video.
func ToggleVideoLike(ctx context.Context, videoID, userID uint64) (*dto.ToggleResult, error) {
	return toggleLike(ctx,
		fmt.Sprintf("lock:like:video:%d:%d", videoID, userID),
		&model.Like{VideoID: &videoID, LikedBy: userID},
		"video_id = ? AND liked_by = ?", videoID, userID,
	)
}

// ToggleCommentLike flips the caller's like on a comment.
func ToggleCommentLike(ctx context.Context, commentID, userID uint64) (*dto.ToggleResult, error) {
	return toggleLike(ctx,
		fmt.Sprintf("lock:like:comment:%d:%d", commentID, userID),
		&model.Like{CommentID: &commentID, LikedBy: userID},
		"comment_id = ? AND liked_by = ?", commentID, userID,
	)
}

// ToggleTweetLike flips the caller's like on a tweet.
func ToggleTweetLike(ctx context.Context, tweetID, userID uint64) (*dto.ToggleResult, error) {
	return toggleLike(ctx,
		fmt.Sprintf("lock:like:tweet:%d:%d", tweetID, userID),
		&model.Like{TweetID: &tweetID, LikedBy: userID},
		"tweet_id = ? AND liked_by = ?", tweetID, userID,
	)
}

// toggleLike is check-then-act backed by the unique index on the like pair.
// Two racing creates cannot both win: the loser hits the duplicate key and
// takes the delete leg instead. The Redis lock, when available, narrows the
// window so the fallback rarely fires.
func toggleLike(ctx context.Context, lockKey string, like *model.Like, cond string, args ...interface{}) (*dto.ToggleResult, error) {
	if repo.Redis != nil {
		lock := repo.NewRedisLock(repo.Redis, lockKey, 5*time.Second)
		if err := lock.Lock(ctx); err == nil {
			defer lock.Unlock(ctx)
		}
	}

	var found model.Like
	err := repo.Db.Where(cond, args...).First(&found).Error
	switch {
	case err == nil:
		if err := repo.Db.Delete(&model.Like{}, found.ID).Error; err != nil {
			return nil, err
		}
		return &dto.ToggleResult{Toggled: "removed"}, nil
	case isNotFound(err):
		if err := repo.Db.Create(like).Error; err != nil {
			if isDuplicateKey(err) {
				if err := repo.Db.Where(cond, args...).Delete(&model.Like{}).Error; err != nil {
					return nil, err
				}
				return &dto.ToggleResult{Toggled: "removed"}, nil
			}
			return nil, err
		}
		return &dto.ToggleResult{Toggled: "added"}, nil
	default:
		return nil, err
	}
}

// GetLikedVideos lists the videos the user has liked, most recent like first.
func GetLikedVideos(userID uint64) ([]dto.LikedVideo, error) {
	var likes []model.Like
	if err := repo.Db.
		Where("liked_by = ? AND video_id IS NOT NULL", userID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}

	result := make([]dto.LikedVideo, 0, len(likes))
	if len(likes) == 0 {
		return result, nil
	}

	videoIDs := make([]uint64, 0, len(likes))
	for i := range likes {
		videoIDs = append(videoIDs, *likes[i].VideoID)
	}

	var videos []model.Video
	if err := repo.Db.Where("id IN ?", videoIDs).Find(&videos).Error; err != nil {
		return nil, err
	}
	videoByID := make(map[uint64]*model.Video, len(videos))
	ownerIDs := make([]uint64, 0, len(videos))
	for i := range videos {
		videoByID[videos[i].ID] = &videos[i]
		ownerIDs = append(ownerIDs, videos[i].OwnerID)
	}
	owners, err := ownerSummaryMap(ownerIDs)
	if err != nil {
		return nil, err
	}

	for i := range likes {
		video, ok := videoByID[*likes[i].VideoID]
		if !ok {
			continue
		}
		result = append(result, dto.LikedVideo{
			LikeID:  likes[i].ID,
			LikedAt: likes[i].CreatedAt,
			Video:   videoView(video, owners[video.OwnerID]),
		})
	}
	return result, nil
}

// GetLikedComments lists the comments the user has liked.
func GetLikedComments(userID uint64) ([]dto.LikedComment, error) {
	var likes []model.Like
	if err := repo.Db.
		Where("liked_by = ? AND comment_id IS NOT NULL", userID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}

	result := make([]dto.LikedComment, 0, len(likes))
	if len(likes) == 0 {
		return result, nil
	}

	commentIDs := make([]uint64, 0, len(likes))
	for i := range likes {
		commentIDs = append(commentIDs, *likes[i].CommentID)
	}

	var comments []model.Comment
	if err := repo.Db.Where("id IN ?", commentIDs).Find(&comments).Error; err != nil {
		return nil, err
	}
	commentByID := make(map[uint64]*model.Comment, len(comments))
	ownerIDs := make([]uint64, 0, len(comments))
	for i := range comments {
		commentByID[comments[i].ID] = &comments[i]
		ownerIDs = append(ownerIDs, comments[i].OwnerID)
	}
	owners, err := ownerSummaryMap(ownerIDs)
	if err != nil {
		return nil, err
	}

	for i := range likes {
		comment, ok := commentByID[*likes[i].CommentID]
		if !ok {
			continue
		}
		entry := dto.LikedComment{
			LikeID:  likes[i].ID,
			LikedAt: likes[i].CreatedAt,
		}
		entry.Comment.ID = comment.ID
		entry.Comment.Content = comment.Content
		entry.Comment.Owner = owners[comment.OwnerID]
		entry.Comment.CreatedAt = comment.CreatedAt
		result = append(result, entry)
	}
	return result, nil
}

// GetLikedTweets lists the tweets the user has liked.
func GetLikedTweets(userID uint64) ([]dto.LikedTweet, error) {
	var likes []model.Like
	if err := repo.Db.
		Where("liked_by = ? AND tweet_id IS NOT NULL", userID).
		Order("created_at DESC, id DESC").
		Find(&likes).Error; err != nil {
		return nil, err
	}

	result := make([]dto.LikedTweet, 0, len(likes))
	if len(likes) == 0 {
		return result, nil
	}

	tweetIDs := make([]uint64, 0, len(likes))
	for i := range likes {
		tweetIDs = append(tweetIDs, *likes[i].TweetID)
	}

	var tweets []model.Tweet
	if err := repo.Db.Where("id IN ?", tweetIDs).Find(&tweets).Error; err != nil {
		return nil, err
	}
	tweetByID := make(map[uint64]*model.Tweet, len(tweets))
	ownerIDs := make([]uint64, 0, len(tweets))
	for i := range tweets {
		tweetByID[tweets[i].ID] = &tweets[i]
		ownerIDs = append(ownerIDs, tweets[i].OwnerID)
	}
	owners, err := ownerSummaryMap(ownerIDs)
	if err != nil {
		return nil, err
	}

	for i := range likes {
		tweet, ok := tweetByID[*likes[i].TweetID]
		if !ok {
			continue
		}
		entry := dto.LikedTweet{
			LikeID:  likes[i].ID,
			LikedAt: likes[i].CreatedAt,
		}
		entry.Tweet.ID = tweet.ID
		entry.Tweet.Content = tweet.Content
		entry.Tweet.ImageURL = tweet.ImageURL
		entry.Tweet.Owner = owners[tweet.OwnerID]
		entry.Tweet.CreatedAt = tweet.CreatedAt
		result = append(result, entry)
	}
	return result, nil
}
