package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"strings"
)

// ListVideoComments pages through a video's comments, newest first, with the
// viewer's like state attached.
func ListVideoComments(videoID, viewerID uint64, req *dto.CommentListRequest) (*dto.CommentListResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultPageSize
	}

	var total int64
	if err := repo.Db.Model(&model.Comment{}).
		Where("video_id = ?", videoID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var comments []model.Comment
	if err := repo.Db.
		Where("video_id = ?", videoID).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, err
	}

	views, err := commentViews(comments, viewerID)
	if err != nil {
		return nil, err
	}

	return &dto.CommentListResponse{
		Comments:      views,
		TotalComments: total,
		Page:          page,
		TotalPages:    total / int64(limit),
	}, nil
}

// ListTweetComments returns all comments under a tweet, newest first.
func ListTweetComments(tweetID, viewerID uint64) ([]dto.CommentView, error) {
	var comments []model.Comment
	if err := repo.Db.
		Where("tweet_id = ?", tweetID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return commentViews(comments, viewerID)
}

// AddVideoComment creates a comment under a video.
func AddVideoComment(videoID, ownerID uint64, content string) (*dto.CommentView, error) {
	return addComment(&model.Comment{
		Content: content,
		VideoID: &videoID,
		OwnerID: ownerID,
	})
}

// AddTweetComment creates a comment under a tweet.
func AddTweetComment(tweetID, ownerID uint64, content string) (*dto.CommentView, error) {
	return addComment(&model.Comment{
		Content: content,
		TweetID: &tweetID,
		OwnerID: ownerID,
	})
}

func addComment(comment *model.Comment) (*dto.CommentView, error) {
	if strings.TrimSpace(comment.Content) == "" {
		return nil, apperr.Invalid("comment content is required")
	}
	if err := repo.Db.Create(comment).Error; err != nil {
		return nil, err
	}

	var owner model.User
	if err := repo.Db.Where("id = ?", comment.OwnerID).First(&owner).Error; err != nil {
		return nil, err
	}
	view := commentView(comment, ownerSummary(&owner), 0, false)
	return &view, nil
}

// UpdateComment rewrites a comment's content. Only the author may edit.
func UpdateComment(commentID, actorID uint64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Invalid("comment content is required")
	}

	comment, err := getOwnedComment(commentID, actorID)
	if err != nil {
		return nil, err
	}

	if err := repo.Db.Model(comment).Update("content", content).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. Only the author may delete.
func DeleteComment(commentID, actorID uint64) error {
	comment, err := getOwnedComment(commentID, actorID)
	if err != nil {
		return err
	}
	return repo.Db.Delete(&model.Comment{}, comment.ID).Error
}

func getOwnedComment(commentID, actorID uint64) (*model.Comment, error) {
	var comment model.Comment
	if err := repo.Db.Where("id = ?", commentID).First(&comment).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("comment not found")
		}
		return nil, err
	}
	if comment.OwnerID != actorID {
		return nil, apperr.Forbidden("you are not the owner of this comment")
	}
	return &comment, nil
}

// commentViews decorates comments with owner summaries, like counts and the
// viewer's like state. Counts come from one grouped query over the page.
func commentViews(comments []model.Comment, viewerID uint64) ([]dto.CommentView, error) {
	views := make([]dto.CommentView, 0, len(comments))
	if len(comments) == 0 {
		return views, nil
	}

	ownerIDs := make([]uint64, 0, len(comments))
	commentIDs := make([]uint64, 0, len(comments))
	for i := range comments {
		ownerIDs = append(ownerIDs, comments[i].OwnerID)
		commentIDs = append(commentIDs, comments[i].ID)
	}

	owners, err := ownerSummaryMap(ownerIDs)
	if err != nil {
		return nil, err
	}

	likeCounts, err := groupCount(&model.Like{}, "comment_id", commentIDs)
	if err != nil {
		return nil, err
	}

	liked := map[uint64]bool{}
	if viewerID != 0 {
		var likedIDs []uint64
		if err := repo.Db.Model(&model.Like{}).
			Where("comment_id IN ? AND liked_by = ?", commentIDs, viewerID).
			Pluck("comment_id", &likedIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	for i := range comments {
		c := &comments[i]
		views = append(views, commentView(c, owners[c.OwnerID], likeCounts[c.ID], liked[c.ID]))
	}
	return views, nil
}

func commentView(c *model.Comment, owner dto.OwnerSummary, likesCount int64, hasLiked bool) dto.CommentView {
	return dto.CommentView{
		ID:         c.ID,
		Content:    c.Content,
		VideoID:    c.VideoID,
		TweetID:    c.TweetID,
		Owner:      owner,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		LikesCount: likesCount,
		HasLiked:   hasLiked,
	}
}
