package service

import (
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/model"
	"strings"

	"gorm.io/gorm"
)

// CreatePlaylist creates a playlist. At most one default playlist per owner;
// the check runs inside a transaction because the schema cannot express a
// partial unique index.
func CreatePlaylist(ownerID uint64, req *dto.CreatePlaylistRequest) (*model.Playlist, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Invalid("playlist name is required")
	}

	playlist := &model.Playlist{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
		IsDefault:   req.IsDefault,
	}

	err := repo.Db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			var count int64
			if err := tx.Model(&model.Playlist{}).
				Where("owner_id = ? AND is_default = ?", ownerID, true).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return apperr.Conflict("a default playlist already exists")
			}
		}
		return tx.Create(playlist).Error
	})
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetUserPlaylists lists a user's playlists without resolving their videos.
func GetUserPlaylists(ownerID uint64) ([]model.Playlist, error) {
	var playlists []model.Playlist
	if err := repo.Db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetPlaylistById resolves a playlist with its videos in slot order. A video
// added twice appears twice.
func GetPlaylistById(playlistID uint64) (*dto.PlaylistView, error) {
	var playlist model.Playlist
	if err := repo.Db.Where("id = ?", playlistID).First(&playlist).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("playlist not found")
		}
		return nil, err
	}

	var owner model.User
	if err := repo.Db.Where("id = ?", playlist.OwnerID).First(&owner).Error; err != nil {
		return nil, err
	}

	var slots []model.PlaylistVideo
	if err := repo.Db.
		Where("playlist_id = ?", playlistID).
		Order("position ASC, id ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	videos := make([]dto.VideoView, 0, len(slots))
	if len(slots) > 0 {
		videoIDs := make([]uint64, 0, len(slots))
		for i := range slots {
			videoIDs = append(videoIDs, slots[i].VideoID)
		}

		var rows []model.Video
		if err := repo.Db.Where("id IN ?", videoIDs).Find(&rows).Error; err != nil {
			return nil, err
		}
		videoByID := make(map[uint64]*model.Video, len(rows))
		ownerIDs := make([]uint64, 0, len(rows))
		for i := range rows {
			videoByID[rows[i].ID] = &rows[i]
			ownerIDs = append(ownerIDs, rows[i].OwnerID)
		}
		owners, err := ownerSummaryMap(ownerIDs)
		if err != nil {
			return nil, err
		}

		for i := range slots {
			video, ok := videoByID[slots[i].VideoID]
			if !ok {
				continue
			}
			videos = append(videos, videoView(video, owners[video.OwnerID]))
		}
	}

	return &dto.PlaylistView{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		IsDefault:   playlist.IsDefault,
		Owner:       ownerSummary(&owner),
		Videos:      videos,
		CreatedAt:   playlist.CreatedAt,
	}, nil
}

// AddVideoToPlaylist appends a video at the next free position. Duplicates
// are allowed.
func AddVideoToPlaylist(playlistID, videoID, actorID uint64) error {
	if _, err := getOwnedPlaylist(playlistID, actorID); err != nil {
		return err
	}

	var exists int64
	if err := repo.Db.Model(&model.Video{}).
		Where("id = ?", videoID).
		Count(&exists).Error; err != nil {
		return err
	}
	if exists == 0 {
		return apperr.NotFound("video not found")
	}

	return repo.Db.Transaction(func(tx *gorm.DB) error {
		var maxPos int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		return tx.Create(&model.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   int(maxPos) + 1,
		}).Error
	})
}

// RemoveVideoFromPlaylist removes every occurrence of a video from the
// playlist.
func RemoveVideoFromPlaylist(playlistID, videoID, actorID uint64) error {
	if _, err := getOwnedPlaylist(playlistID, actorID); err != nil {
		return err
	}

	result := repo.Db.
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("video not in playlist")
	}
	return nil
}

// UpdatePlaylist updates name and/or description. Only the owner may edit.
func UpdatePlaylist(playlistID, actorID uint64, req *dto.UpdatePlaylistRequest) (*model.Playlist, error) {
	if strings.TrimSpace(req.Name) == "" && strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Invalid("at least one field is required")
	}

	playlist, err := getOwnedPlaylist(playlistID, actorID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(req.Name) != "" {
		updates["name"] = req.Name
	}
	if strings.TrimSpace(req.Description) != "" {
		updates["description"] = req.Description
	}
	if err := repo.Db.Model(playlist).Updates(updates).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist removes a playlist and its slots.
func DeletePlaylist(playlistID, actorID uint64) error {
	if _, err := getOwnedPlaylist(playlistID, actorID); err != nil {
		return err
	}

	return repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).
			Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Playlist{}, playlistID).Error
	})
}

func getOwnedPlaylist(playlistID, actorID uint64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := repo.Db.Where("id = ?", playlistID).First(&playlist).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("playlist not found")
		}
		return nil, err
	}
	if playlist.OwnerID != actorID {
		return nil, apperr.Forbidden("you are not the owner of this playlist")
	}
	return &playlist, nil
}
