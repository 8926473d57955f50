package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/api/response"
	"vidtube/internal/config"
	"vidtube/internal/model"
	"vidtube/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.Set(&config.Config{
		App: config.AppConfig{Name: "vidtube-test"},
		JWT: config.JWTConfig{
			AccessSecret:       "test-access-secret",
			RefreshSecret:      "test-refresh-secret",
			AccessExpireHours:  1,
			RefreshExpireHours: 24,
		},
	})
}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	fetchUser := func(userID int64) (*model.User, error) {
		return &model.User{ID: userID, UserName: "alice"}, nil
	}

	r := gin.New()
	r.GET("/protected", AuthRequired(fetchUser), func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		require.True(t, ok)
		response.OK(c, gin.H{"id": user.ID}, "ok")
	})
	r.GET("/optional", AuthOptional(fetchUser), func(c *gin.Context) {
		response.OK(c, gin.H{"id": GetCurrentUserID(c)}, "ok")
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	r := newAuthTestRouter(t)
	pair, err := utils.GenerateTokenPair(7)
	require.NoError(t, err)

	// 无凭证
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer 头
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cookie
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: pair.AccessToken})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 刷新令牌不能当访问令牌用
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthCookieTakesPrecedence(t *testing.T) {
	r := newAuthTestRouter(t)
	pair, err := utils.GenerateTokenPair(7)
	require.NoError(t, err)

	// Cookie 失效时即便 Bearer 头有效也拒绝：Cookie 优先
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "expired-garbage"})
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthOptional(t *testing.T) {
	r := newAuthTestRouter(t)
	pair, err := utils.GenerateTokenPair(7)
	require.NoError(t, err)

	// 游客放行，用户 ID 为 0
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":0`)

	// 无效令牌同样放行
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// 有效令牌解析出用户
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}
