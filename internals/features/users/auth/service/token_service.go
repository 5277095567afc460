package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"truyenhub_backend/internals/configs"
	userModel "truyenhub_backend/internals/features/users/user/model"
)

const AccessTokenTTL = 24 * time.Hour

// CreateAccessToken menandatangani JWT HS256 berisi user_id + role.
func CreateAccessToken(user *userModel.User) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret belum diset")
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
