package handler

import (
	"errors"

	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler 创作者仪表盘接口
type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats 频道统计
// @Summary 当前用户的频道聚合统计
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.GetChannelStats(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, stats, "获取成功")
}

// GetVideos 频道视频列表
// @Summary 当前用户的全部视频（含未发布）
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Router /dashboard/videos [get]
func (h *DashboardHandler) GetVideos(c *gin.Context) {
	videos, err := h.dashboard.GetChannelVideos(middleware.GetCurrentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, videos, "获取成功")
}

func (h *DashboardHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoChannelVideos):
		response.NotFound(c, "还没有发布过视频")
	default:
		logger.Error("仪表盘接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
