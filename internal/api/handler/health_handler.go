package handler

import (
	"vidtube/internal/api/response"
	"vidtube/internal/config"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查接口
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check 健康检查
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /healthcheck [get]
func (h *HealthHandler) Check(c *gin.Context) {
	app := config.GetApp()
	response.OK(c, gin.H{
		"status":  "ok",
		"name":    app.Name,
		"version": app.Version,
	}, "服务运行正常")
}
