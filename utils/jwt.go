package utils

import (
	"VidTube/config"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type Claims struct {
	UserId   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func signToken(userId uint64, username, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserId:   userId,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateToken creates an access JWT.
func GenerateToken(userId uint64, username string) (string, error) {
	return signToken(userId, username, config.AppConfig.JWTSecret, config.AppConfig.AccessTokenTTL)
}

// VerifyToken parses and validates an access JWT.
func VerifyToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, config.AppConfig.JWTSecret)
}

// GenerateRefreshToken creates a refresh JWT.
func GenerateRefreshToken(userId uint64, username string) (string, error) {
	return signToken(userId, username, config.AppConfig.RefreshSecret, config.AppConfig.RefreshTokenTTL)
}

// VerifyRefreshToken parses and validates a refresh JWT.
func VerifyRefreshToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, config.AppConfig.RefreshSecret)
}
