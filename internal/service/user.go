package service

import (
	"VidTube/config"
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/repo"
	"VidTube/internal/storage"
	"VidTube/model"
	"VidTube/utils"
	"time"

	"golang.org/x/net/context"
)

// CreateUser hashes the password and creates a user. Duplicate username or
// email surfaces as a conflict.
func CreateUser(user *model.User) error {
	user.Password = utils.GetPwd(user.Password)
	if err := repo.Db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return apperr.Conflict("username or email already exists")
		}
		return err
	}
	return nil
}

// FindUserById returns a user by ID. The cached copy goes through JSON, so
// the credential columns are stripped on the way in.
func FindUserById(userId uint64) (*model.User, error) {
	if cached, ok := utils.GetUserInfoFromCache(context.Background(), userId); ok {
		return cached, nil
	}
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	_ = utils.SetUserInfoToCache(context.Background(), userId, &user, 30*time.Second)
	return &user, nil
}

// FindUserSession returns a user straight from the database. The cached
// projection drops credential columns, so the refresh flow must not use it.
func FindUserSession(userId uint64) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByLogin returns a user by username or email.
func FindUserByLogin(username, email string) (*model.User, error) {
	query := repo.Db.Model(&model.User{})
	switch {
	case username != "":
		query = query.Where("user_name = ?", username)
	case email != "":
		query = query.Where("email = ?", email)
	default:
		return nil, apperr.Invalid("username or email is required")
	}
	var user model.User
	if err := query.First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("user does not exist with the username or email")
		}
		return nil, err
	}
	return &user, nil
}

// CheckPassword verifies a user's password.
func CheckPassword(user *model.User, password string) error {
	if !utils.CheckPwd(password, user.Password) {
		return apperr.Unauthorized("invalid credentials")
	}
	return nil
}

// StoreRefreshToken records the single active refresh session for a user.
func StoreRefreshToken(ctx context.Context, userId uint64, token string) error {
	if err := repo.Db.Model(&model.User{}).
		Where("id = ?", userId).
		Update("refresh_token", token).Error; err != nil {
		return err
	}
	_ = utils.TrackSession(ctx, userId, config.AppConfig.RefreshTokenTTL)
	_ = utils.InvalidateUserInfoCache(ctx, userId)
	return nil
}

// ClearRefreshToken drops the active refresh session on logout.
func ClearRefreshToken(ctx context.Context, userId uint64) error {
	if err := repo.Db.Model(&model.User{}).
		Where("id = ?", userId).
		Update("refresh_token", "").Error; err != nil {
		return err
	}
	_ = utils.DropSession(ctx, userId)
	_ = utils.InvalidateUserInfoCache(ctx, userId)
	return nil
}

// ChangePassword verifies the old password and stores the new hash.
func ChangePassword(userId uint64, oldPassword, newPassword string) error {
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		if isNotFound(err) {
			return apperr.NotFound("user not found")
		}
		return err
	}
	if !utils.CheckPwd(oldPassword, user.Password) {
		return apperr.Invalid("invalid old password")
	}
	return repo.Db.Model(&model.User{}).
		Where("id = ?", userId).
		Update("pass_word", utils.GetPwd(newPassword)).Error
}

// UpdateAccount updates the provided profile fields.
func UpdateAccount(userId uint64, req *dto.UpdateAccountRequest) (*model.User, error) {
	if req.Email == "" && req.FullName == "" && req.Username == "" {
		return nil, apperr.Invalid("provide data for updation")
	}
	updates := map[string]interface{}{}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.Username != "" {
		updates["user_name"] = req.Username
	}
	if err := repo.Db.Model(&model.User{}).
		Where("id = ?", userId).
		Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("username or email already exists")
		}
		return nil, err
	}
	_ = utils.InvalidateUserInfoCache(context.Background(), userId)
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar uploads the new avatar, deletes the old object first and
// aborts when the delete fails.
func UpdateAvatar(ctx context.Context, userId uint64, result *storage.UploadResult) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	if user.AvatarObject != "" {
		if err := storage.Remove(ctx, user.AvatarObject); err != nil {
			return nil, apperr.Upstream("failed to delete old avatar", err)
		}
	}
	if err := repo.Db.Model(&model.User{}).
		Where("id = ?", userId).
		Updates(map[string]interface{}{
			"avatar_url":    result.URL,
			"avatar_object": result.ObjectName,
		}).Error; err != nil {
		return nil, err
	}
	_ = utils.InvalidateUserInfoCache(ctx, userId)
	user.AvatarURL = result.URL
	user.AvatarObject = result.ObjectName
	return &user, nil
}

// UpdateCoverImage replaces the cover image, deleting the old object first.
func UpdateCoverImage(ctx context.Context, userId uint64, result *storage.UploadResult) (*model.User, error) {
	var user model.User
	if err := repo.Db.Where("id = ?", userId).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	if user.CoverObject != "" {
		if err := storage.Remove(ctx, user.CoverObject); err != nil {
			return nil, apperr.Upstream("failed to delete old cover image", err)
		}
	}
	if err := repo.Db.Model(&model.User{}).
		Where("id = ?", userId).
		Updates(map[string]interface{}{
			"cover_url":    result.URL,
			"cover_object": result.ObjectName,
		}).Error; err != nil {
		return nil, err
	}
	_ = utils.InvalidateUserInfoCache(ctx, userId)
	user.CoverURL = result.URL
	user.CoverObject = result.ObjectName
	return &user, nil
}

// UserView projects a user for API responses, never exposing password or
// refresh token.
func UserView(user *model.User) dto.UserView {
	return dto.UserView{
		ID:        user.ID,
		Username:  user.UserName,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		CoverURL:  user.CoverURL,
		CreatedAt: user.CreatedAt,
	}
}
