package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/internal/storage"
	"VidTube/model"
	"mime/multipart"
	"strings"

	"golang.org/x/net/context"
)

// CreateTweet creates a tweet, uploading the optional image first.
func CreateTweet(ctx context.Context, ownerID uint64, content string, image *multipart.FileHeader) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Invalid("tweet content is required")
	}

	tweet := &model.Tweet{
		Content: content,
		OwnerID: ownerID,
	}
	if image != nil {
		upload, err := storage.UploadMultipart(ctx, image, storage.PrefixTweet)
		if err != nil {
			return nil, apperr.Upstream("error while uploading tweet image", err)
		}
		tweet.ImageURL = upload.URL
		tweet.ImageObject = upload.ObjectName
	}

	if err := repo.Db.Create(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

// GetAllTweets lists every tweet, newest first, with viewer-aware like state.
func GetAllTweets(viewerID uint64) ([]dto.TweetView, error) {
	var tweets []model.Tweet
	if err := repo.Db.
		Order("created_at DESC, id DESC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweetViews(tweets, viewerID)
}

// GetUserTweets lists one user's tweets, newest first.
func GetUserTweets(ownerID, viewerID uint64) ([]dto.TweetView, error) {
	var tweets []model.Tweet
	if err := repo.Db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweetViews(tweets, viewerID)
}

// UpdateTweet rewrites a tweet's content. Only the author may edit.
func UpdateTweet(tweetID, actorID uint64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Invalid("tweet content is required")
	}

	tweet, err := getOwnedTweet(tweetID, actorID)
	if err != nil {
		return nil, err
	}

	if err := repo.Db.Model(tweet).Update("content", content).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

// DeleteTweet removes a tweet. The image object is deleted first; a failed
// delete aborts so the media store never holds orphans silently.
func DeleteTweet(ctx context.Context, tweetID, actorID uint64) error {
	tweet, err := getOwnedTweet(tweetID, actorID)
	if err != nil {
		return err
	}

	if tweet.ImageObject != "" {
		if err := storage.Remove(ctx, tweet.ImageObject); err != nil {
			return apperr.Upstream("failed to delete tweet image", err)
		}
	}
	return repo.Db.Delete(&model.Tweet{}, tweet.ID).Error
}

func getOwnedTweet(tweetID, actorID uint64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := repo.Db.Where("id = ?", tweetID).First(&tweet).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("tweet not found")
		}
		return nil, err
	}
	if tweet.OwnerID != actorID {
		return nil, apperr.Forbidden("you are not the owner of this tweet")
	}
	return &tweet, nil
}

// tweetViews decorates tweets with owner summaries, like and comment counts
// and the viewer's like state, using grouped queries over the batch.
func tweetViews(tweets []model.Tweet, viewerID uint64) ([]dto.TweetView, error) {
	views := make([]dto.TweetView, 0, len(tweets))
	if len(tweets) == 0 {
		return views, nil
	}

	ownerIDs := make([]uint64, 0, len(tweets))
	tweetIDs := make([]uint64, 0, len(tweets))
	for i := range tweets {
		ownerIDs = append(ownerIDs, tweets[i].OwnerID)
		tweetIDs = append(tweetIDs, tweets[i].ID)
	}

	owners, err := ownerSummaryMap(ownerIDs)
	if err != nil {
		return nil, err
	}

	likeCounts, err := groupCount(&model.Like{}, "tweet_id", tweetIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := groupCount(&model.Comment{}, "tweet_id", tweetIDs)
	if err != nil {
		return nil, err
	}

	liked := map[uint64]bool{}
	if viewerID != 0 {
		var likedIDs []uint64
		if err := repo.Db.Model(&model.Like{}).
			Where("tweet_id IN ? AND liked_by = ?", tweetIDs, viewerID).
			Pluck("tweet_id", &likedIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	for i := range tweets {
		t := &tweets[i]
		views = append(views, dto.TweetView{
			ID:            t.ID,
			Content:       t.Content,
			ImageURL:      t.ImageURL,
			Owner:         owners[t.OwnerID],
			CreatedAt:     t.CreatedAt,
			LikesCount:    likeCounts[t.ID],
			CommentsCount: commentCounts[t.ID],
			HasLiked:      liked[t.ID],
		})
	}
	return views, nil
}

// groupCount counts rows of a model grouped by a foreign key column.
func groupCount(m interface{}, column string, ids []uint64) (map[uint64]int64, error) {
	var rows []struct {
		RefID uint64
		Count int64
	}
	if err := repo.Db.Model(m).
		Select(column+" AS ref_id, COUNT(*) AS count").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.RefID] = row.Count
	}
	return counts, nil
}
