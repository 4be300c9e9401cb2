package service

import (
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ownerSummaryMap resolves a set of user IDs into owner summaries in one
// query. Missing IDs simply have no entry.
func ownerSummaryMap(userIDs []uint64) (map[uint64]dto.OwnerSummary, error) {
	summaries := make(map[uint64]dto.OwnerSummary, len(userIDs))
	if len(userIDs) == 0 {
		return summaries, nil
	}
	var users []model.User
	if err := repo.Db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		summaries[user.ID] = ownerSummary(&user)
	}
	return summaries, nil
}

func ownerSummary(user *model.User) dto.OwnerSummary {
	return dto.OwnerSummary{
		ID:        user.ID,
		Username:  user.UserName,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
	}
}

func videoView(video *model.Video, owner dto.OwnerSummary) dto.VideoView {
	return dto.VideoView{
		ID:          video.ID,
		Title:       video.Title,
		Description: video.Description,
		VideoURL:    video.VideoURL,
		ThumbURL:    video.ThumbURL,
		Duration:    video.Duration,
		Views:       video.Views,
		CreatedAt:   video.CreatedAt,
		Owner:       owner,
	}
}

// isDuplicateKey recognizes unique constraint violations. The gorm error
// translation covers MySQL; the string checks cover the sqlite test driver,
// whose raw errors the translator does not know.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
