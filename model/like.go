package model

import (
	"time"
)

// Like targets exactly one of a video, a comment or a tweet; the populated
// foreign key decides the kind. The unique indexes over (target, liked_by)
// back the toggle mutators against concurrent duplicates.
type Like struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	VideoID *uint64 `gorm:"column:video_id;uniqueIndex:uk_like_video_user,priority:1" json:"video_id,omitempty"`
	Video   *Video  `gorm:"foreignKey:VideoID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CommentID *uint64  `gorm:"column:comment_id;uniqueIndex:uk_like_comment_user,priority:1" json:"comment_id,omitempty"`
	Comment   *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	TweetID *uint64 `gorm:"column:tweet_id;uniqueIndex:uk_like_tweet_user,priority:1" json:"tweet_id,omitempty"`
	Tweet   *Tweet  `gorm:"foreignKey:TweetID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	LikedBy uint64 `gorm:"column:liked_by;not null;index;uniqueIndex:uk_like_video_user,priority:2;uniqueIndex:uk_like_comment_user,priority:2;uniqueIndex:uk_like_tweet_user,priority:2" json:"liked_by"`
	User    User   `gorm:"foreignKey:LikedBy;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Like) TableName() string {
	return "like_record"
}
