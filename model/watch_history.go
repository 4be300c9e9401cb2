package model

import (
	"time"
)

// WatchHistory is an append-only log of video fetches per user. Re-watching
// appends again; there is no dedup and no cap.
type WatchHistory struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	VideoID uint64 `gorm:"column:video_id;not null;index" json:"video_id"`
	Video   Video  `gorm:"foreignKey:VideoID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (WatchHistory) TableName() string {
	return "watch_history"
}
