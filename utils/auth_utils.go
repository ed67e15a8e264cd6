package utils

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// GenerateAccessToken issues the bearer token the auth middleware verifies.
func GenerateAccessToken(uid, displayName string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":          uid,
		"display_name": displayName,
		"exp":          time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GenerateRefreshToken issues the long-lived token stored server-side.
func GenerateRefreshToken(uid string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Hour * 24 * 30).Unix(), // Refresh token expires in 30 days
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
