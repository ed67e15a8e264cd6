package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bit-festival/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	mw := AuthMiddleware()
	if optional {
		mw = OptionalAuthMiddleware()
	}

	r.GET("/whoami", mw, func(c *gin.Context) {
		user := utils.GetUser(c)
		if user == nil {
			c.JSON(http.StatusOK, gin.H{"uid": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": user.UID, "display_name": user.DisplayName})
	})
	return r
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken("u1", "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthTestRouter(false).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"uid":"u1"`)
	require.Contains(t, w.Body.String(), `"display_name":"Alice"`)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	newAuthTestRouter(false).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "garbage")
	newAuthTestRouter(false).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken("u1", "Alice")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthTestRouter(false).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthMiddlewareAllowsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	newAuthTestRouter(true).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"uid":null`)
}

func TestOptionalAuthMiddlewareResolvesValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken("u2", "Bob")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newAuthTestRouter(true).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"uid":"u2"`)
}
