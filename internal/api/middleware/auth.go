package middleware

import (
	"strings"

	"vidtube/internal/api/response"
	"vidtube/internal/model"
	"vidtube/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyUser 当前登录用户（*model.User，不含敏感字段）
	ContextKeyUser = "currentUser"

	// AccessTokenCookie 访问令牌 Cookie 名
	AccessTokenCookie = "accessToken"
)

// UserFetcher 根据用户 ID 加载用户公开视图的函数类型
type UserFetcher func(userID int64) (*model.User, error)

// AuthRequired 认证中间件：校验访问令牌并把用户解析进请求上下文。
// 只做校验，不签发也不轮换令牌。
func AuthRequired(fetchUser UserFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		user, err := fetchUser(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "用户不存在")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// AuthOptional 可选认证：带了有效令牌就把用户挂进上下文，
// 没带或无效也放行（游客视角，相关布尔位一律按 false 算）。
func AuthOptional(fetchUser UserFetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		if user, err := fetchUser(claims.UserID); err == nil {
			c.Set(ContextKeyUser, user)
		}
		c.Next()
	}
}

// GetCurrentUser 从 Gin Context 中获取当前登录用户
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID，未登录返回 0
func GetCurrentUserID(c *gin.Context) int64 {
	user, ok := GetCurrentUser(c)
	if !ok {
		return 0
	}
	return user.ID
}

// extractToken 提取凭证：优先 accessToken Cookie，其次 Authorization 头的 Bearer Token
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
