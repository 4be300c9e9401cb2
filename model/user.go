package model

import (
	"time"
)

type User struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	UserName string `gorm:"column:user_name;type:varchar(50);not null;unique" json:"username"`

	Password string `gorm:"column:pass_word;type:varchar(255);not null" json:"-"`

	Email string `gorm:"column:email;type:varchar(255);not null;unique" json:"email"`

	FullName string `gorm:"column:full_name;type:varchar(80);not null;default:''" json:"fullname"`

	AvatarURL    string `gorm:"column:avatar_url;type:varchar(512);not null;default:''" json:"avatar_url"`
	AvatarObject string `gorm:"column:avatar_object;type:varchar(512);not null;default:''" json:"-"`

	CoverURL    string `gorm:"column:cover_url;type:varchar(512);not null;default:''" json:"cover_url,omitempty"`
	CoverObject string `gorm:"column:cover_object;type:varchar(512);not null;default:''" json:"-"`

	// Single active session: the refresh token issued at the last login.
	RefreshToken string `gorm:"column:refresh_token;type:varchar(512);not null;default:''" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the database table name.
func (User) TableName() string {
	return "user_db"
}
