package model

import (
	"time"
)

type Tweet struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Content string `gorm:"column:content;type:varchar(2000);not null" json:"content"`

	ImageURL    string `gorm:"column:image_url;type:varchar(512);not null;default:''" json:"image_url,omitempty"`
	ImageObject string `gorm:"column:image_object;type:varchar(512);not null;default:''" json:"-"`

	OwnerID uint64 `gorm:"column:owner_id;not null;index" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Tweet) TableName() string {
	return "tweet"
}
