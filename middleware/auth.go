package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/bit-festival/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userClaims, err := claimsFromHeader(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(string(utils.UserContextKey), userClaims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid token is present
// and serves the anonymous view otherwise. The feed and the read-only
// listings use it: per-user fields like user_liked simply stay false.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userClaims, err := claimsFromHeader(c); err == nil {
			c.Set(string(utils.UserContextKey), userClaims)
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context) (*utils.UserClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.New("Authorization header is required")
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, errors.New("Invalid token format")
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, errors.New("Invalid token")
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, errors.New("Invalid token claims")
	}
	displayName, _ := claims["display_name"].(string)

	return &utils.UserClaims{UID: uid, DisplayName: displayName}, nil
}
