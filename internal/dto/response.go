package dto

import "time"

// OwnerSummary is the denormalized owner projection attached to read views.
type OwnerSummary struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	FullName  string `json:"fullname"`
	AvatarURL string `json:"avatar_url"`
}

type UserView struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullname"`
	AvatarURL string    `json:"avatar_url"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	User         UserView `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type VideoView struct {
	ID          uint64       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	VideoURL    string       `json:"video_url"`
	ThumbURL    string       `json:"thumb_url"`
	Duration    float64      `json:"duration"`
	Views       uint64       `json:"views"`
	CreatedAt   time.Time    `json:"created_at"`
	Owner       OwnerSummary `json:"owner"`
}

type VideoListResponse struct {
	Videos      []VideoView `json:"videos"`
	CurrentPage int         `json:"current_page"`
	TotalPages  int64       `json:"total_pages"`
	TotalVideos int64       `json:"total_videos"`
}

// VideoDetail is the viewer-aware single-video projection.
type VideoDetail struct {
	VideoView
	SubscribersCount int64 `json:"subscribers_count"`
	IsSubscribed     bool  `json:"is_subscribed"`
}

type CommentView struct {
	ID         uint64       `json:"id"`
	Content    string       `json:"content"`
	VideoID    *uint64      `json:"video_id,omitempty"`
	TweetID    *uint64      `json:"tweet_id,omitempty"`
	Owner      OwnerSummary `json:"owner"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	LikesCount int64        `json:"likes_count"`
	HasLiked   bool         `json:"has_liked"`
}

type CommentListResponse struct {
	Comments      []CommentView `json:"comments"`
	TotalComments int64         `json:"total_comments"`
	Page          int           `json:"page"`
	TotalPages    int64         `json:"total_pages"`
}

type ChannelProfile struct {
	ID                        uint64      `json:"id"`
	Username                  string      `json:"username"`
	FullName                  string      `json:"fullname"`
	Email                     string      `json:"email"`
	AvatarURL                 string      `json:"avatar_url"`
	CoverURL                  string      `json:"cover_url,omitempty"`
	CreatedAt                 time.Time   `json:"created_at"`
	SubscribersCount          int64       `json:"subscribers_count"`
	ChannelsSubscribedToCount int64       `json:"channels_subscribed_to_count"`
	IsSubscribed              bool        `json:"is_subscribed"`
	TotalVideos               int64       `json:"total_videos"`
	TotalViews                int64       `json:"total_views"`
	Videos                    []VideoView `json:"videos"`
}

type TweetView struct {
	ID            uint64       `json:"id"`
	Content       string       `json:"content"`
	ImageURL      string       `json:"image_url,omitempty"`
	Owner         OwnerSummary `json:"owner"`
	CreatedAt     time.Time    `json:"created_at"`
	LikesCount    int64        `json:"likes_count"`
	CommentsCount int64        `json:"comments_count"`
	HasLiked      bool         `json:"has_liked"`
}

type LikedVideo struct {
	LikeID  uint64    `json:"like_id"`
	LikedAt time.Time `json:"liked_at"`
	Video   VideoView `json:"video"`
}

type LikedComment struct {
	LikeID  uint64    `json:"like_id"`
	LikedAt time.Time `json:"liked_at"`
	Comment struct {
		ID        uint64       `json:"id"`
		Content   string       `json:"content"`
		Owner     OwnerSummary `json:"owner"`
		CreatedAt time.Time    `json:"created_at"`
	} `json:"comment"`
}

type LikedTweet struct {
	LikeID  uint64    `json:"like_id"`
	LikedAt time.Time `json:"liked_at"`
	Tweet   struct {
		ID        uint64       `json:"id"`
		Content   string       `json:"content"`
		ImageURL  string       `json:"image_url,omitempty"`
		Owner     OwnerSummary `json:"owner"`
		CreatedAt time.Time    `json:"created_at"`
	} `json:"tweet"`
}

type SubscriberListResponse struct {
	Subscribers      []OwnerSummary `json:"subscribers"`
	SubscribersCount int64          `json:"subscribers_count"`
}

// ChannelSummary is one entry of a subscribed-channels listing.
type ChannelSummary struct {
	OwnerSummary
	SubscribersCount int64 `json:"subscribers_count"`
}

type SubscribedChannelsResponse struct {
	Channels      []ChannelSummary `json:"channels"`
	ChannelsCount int64            `json:"channels_count"`
}

type PlaylistView struct {
	ID          uint64       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	IsDefault   bool         `json:"is_default"`
	Owner       OwnerSummary `json:"owner"`
	Videos      []VideoView  `json:"videos"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ToggleResult reports which way a toggle flipped.
type ToggleResult struct {
	Toggled string `json:"toggled"` // "added" or "removed"
}
