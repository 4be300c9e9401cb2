package model

import (
	"time"
)

type Video struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string `gorm:"column:description;type:varchar(2000);not null;default:''" json:"description"`

	VideoURL    string `gorm:"column:video_url;type:varchar(512);not null" json:"video_url"`
	VideoObject string `gorm:"column:video_object;type:varchar(512);not null" json:"-"`

	ThumbURL    string `gorm:"column:thumb_url;type:varchar(512);not null" json:"thumb_url"`
	ThumbObject string `gorm:"column:thumb_object;type:varchar(512);not null" json:"-"`

	// Duration in seconds, supplied by the uploader at publish time.
	Duration float64 `gorm:"column:duration;not null;default:0" json:"duration"`

	Views uint64 `gorm:"column:views;not null;default:0" json:"views"`

	IsPublished bool `gorm:"column:is_published;not null;default:true" json:"is_published"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Video) TableName() string {
	return "video"
}
