package model

import (
	"time"
)

// Comment belongs to exactly one of a video or a tweet.
type Comment struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Content string `gorm:"column:content;type:varchar(2000);not null" json:"content"`

	VideoID *uint64 `gorm:"column:video_id;index" json:"video_id,omitempty"`
	Video   *Video  `gorm:"foreignKey:VideoID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	TweetID *uint64 `gorm:"column:tweet_id;index" json:"tweet_id,omitempty"`
	Tweet   *Tweet  `gorm:"foreignKey:TweetID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Comment) TableName() string {
	return "comment"
}
