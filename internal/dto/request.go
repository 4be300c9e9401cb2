package dto

import "mime/multipart"

type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	FullName string `form:"fullname" binding:"required"`

	Avatar     *multipart.FileHeader `form:"-"`
	CoverImage *multipart.FileHeader `form:"-"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateAccountRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Username string `json:"username"`
}

type PublishVideoRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description"`
	Duration    float64 `form:"duration"`

	VideoFile *multipart.FileHeader `form:"-"`
	Thumbnail *multipart.FileHeader `form:"-"`
}

type UpdateVideoDetailsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type VideoListRequest struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	OrderBy   string `form:"order_by"`
	OrderDesc bool   `form:"order_desc"`
}

type CommentListRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateTweetRequest struct {
	Content string `form:"content" binding:"required"`

	Image *multipart.FileHeader `form:"-"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	IsDefault   bool   `json:"is_default"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlaylistVideoRequest struct {
	VideoID uint64 `json:"video_id" binding:"required"`
}
