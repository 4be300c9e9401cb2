package handler

import (
	"VidTube/config"
	"VidTube/internal/apperr"
	"VidTube/internal/dto"
	"VidTube/internal/service"
	"VidTube/internal/storage"
	"VidTube/model"
	"VidTube/utils"
	"log"

	"github.com/gin-gonic/gin"
)

// Register creates an account from a multipart form. The avatar is required,
// the cover image optional.
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}

	avatar, err := c.FormFile("avatar")
	if err != nil {
		utils.Fail(c, apperr.Invalid("avatar file is required"))
		return
	}
	req.Avatar = avatar
	if cover, err := c.FormFile("cover_image"); err == nil {
		req.CoverImage = cover
	}

	avatarUpload, err := storage.UploadMultipart(c.Request.Context(), req.Avatar, storage.PrefixAvatar)
	if err != nil {
		utils.Fail(c, apperr.Upstream("error while uploading avatar", err))
		return
	}

	user := &model.User{
		UserName: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,

		AvatarURL:    avatarUpload.URL,
		AvatarObject: avatarUpload.ObjectName,
	}
	if req.CoverImage != nil {
		coverUpload, err := storage.UploadMultipart(c.Request.Context(), req.CoverImage, storage.PrefixCover)
		if err != nil {
			utils.Fail(c, apperr.Upstream("error while uploading cover image", err))
			return
		}
		user.CoverURL = coverUpload.URL
		user.CoverObject = coverUpload.ObjectName
	}

	if err := service.CreateUser(user); err != nil {
		utils.Fail(c, err)
		return
	}

	// Registration stands even when the welcome mail cannot be sent.
	if err := utils.SendWelcomeMail(user.Email, user.UserName); err != nil {
		log.Println("send welcome mail:", err)
	}

	utils.Success(c, service.UserView(user))
}

// Login authenticates by username or email and issues the token pair.
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Invalid(err.Error()))
		return
	}
	if req.Username == "" && req.Email == "" {
		utils.Fail(c, apperr.Invalid("username or email is required"))
		return
	}

	user, err := service.FindUserByLogin(req.Username, req.Email)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if err := service.CheckPassword(user, req.Password); err != nil {
		utils.Fail(c, err)
		return
	}

	accessToken, err := utils.GenerateToken(user.ID, user.UserName)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID, user.UserName)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if err := service.StoreRefreshToken(c.Request.Context(), user.ID, refreshToken); err != nil {
		utils.Fail(c, err)
		return
	}

	setTokenCookies(c, accessToken, refreshToken)
	utils.Success(c, dto.LoginResponse{
		User:         service.UserView(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout revokes the stored refresh token and clears the cookies.
func Logout(c *gin.Context) {
	userID := utils.ViewerID(c)
	if err := service.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		utils.Fail(c, err)
		return
	}
	clearTokenCookies(c)
	utils.Success(c, nil)
}

// RefreshToken rotates the token pair. The presented refresh token must
// match the one stored for the user, so a revoked or superseded token
// cannot be replayed.
func RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie("refreshToken"); err == nil {
			req.RefreshToken = cookie
		}
	}
	if req.RefreshToken == "" {
		utils.Fail(c, apperr.Unauthorized("refresh token is required"))
		return
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		utils.Fail(c, apperr.Unauthorized("invalid refresh token"))
		return
	}

	user, err := service.FindUserSession(claims.UserId)
	if err != nil {
		utils.Fail(c, apperr.Unauthorized("invalid refresh token"))
		return
	}
	if user.RefreshToken == "" || user.RefreshToken != req.RefreshToken {
		utils.Fail(c, apperr.Unauthorized("refresh token is expired or used"))
		return
	}

	accessToken, err := utils.GenerateToken(user.ID, user.UserName)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID, user.UserName)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if err := service.StoreRefreshToken(c.Request.Context(), user.ID, refreshToken); err != nil {
		utils.Fail(c, err)
		return
	}

	setTokenCookies(c, accessToken, refreshToken)
	utils.Success(c, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie("accessToken", accessToken,
		int(config.AppConfig.AccessTokenTTL.Seconds()), "/", "", false, true)
	c.SetCookie("refreshToken", refreshToken,
		int(config.AppConfig.RefreshTokenTTL.Seconds()), "/", "", false, true)
}

func clearTokenCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", false, true)
	c.SetCookie("refreshToken", "", -1, "/", "", false, true)
}
