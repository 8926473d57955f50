package middleware

import (
	"net/http"

	"vidtube/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS 跨域中间件，允许的来源取自配置；凭证（Cookie）放行
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(origin string) bool {
	for _, allowed := range config.GetCORS().Origins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
