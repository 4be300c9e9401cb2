package model

import (
	"time"
)

type Playlist struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(2000);not null;default:''" json:"description"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	// At most one default playlist per owner. MySQL has no partial unique
	// index, so the service enforces this inside a transaction.
	IsDefault bool `gorm:"column:is_default;not null;default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Playlist) TableName() string {
	return "playlist"
}

// PlaylistVideo is one slot of a playlist. Position keeps insertion order;
// the same video may appear more than once.
type PlaylistVideo struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	PlaylistID uint64   `gorm:"column:playlist_id;not null;index" json:"playlist_id"`
	Playlist   Playlist `gorm:"foreignKey:PlaylistID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	VideoID uint64 `gorm:"column:video_id;not null;index" json:"video_id"`
	Video   Video  `gorm:"foreignKey:VideoID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	Position int `gorm:"column:position;not null;default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (PlaylistVideo) TableName() string {
	return "playlist_video"
}
