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

// SubscriptionHandler 订阅接口
type SubscriptionHandler struct {
	subs *service.SubscriptionService
}

func NewSubscriptionHandler(subs *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subs: subs}
}

// Toggle 订阅 toggle
// @Summary 订阅 / 取消订阅频道
// @Tags 订阅
// @Produce json
// @Security ApiKeyAuth
// @Param channelId path int true "频道（用户）ID"
// @Success 200 {object} response.Envelope
// @Router /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		return
	}

	data, err := h.subs.Toggle(middleware.GetCurrentUserID(c), channelID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	message := "已取消订阅"
	if data.Subscribed {
		message = "订阅成功"
	}
	response.OK(c, data, message)
}

// GetChannelSubscribers 频道订阅者列表
// @Summary 频道订阅者列表（仅频道所有者）
// @Tags 订阅
// @Produce json
// @Security ApiKeyAuth
// @Param channelId path int true "频道（用户）ID"
// @Success 200 {object} response.Envelope
// @Router /subscriptions/c/{channelId} [get]
func (h *SubscriptionHandler) GetChannelSubscribers(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		return
	}

	data, err := h.subs.GetChannelSubscribers(middleware.GetCurrentUserID(c), channelID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, data, "获取成功")
}

// GetSubscribedChannels 订阅的频道列表
// @Summary 某用户订阅的频道列表（仅本人）
// @Tags 订阅
// @Produce json
// @Security ApiKeyAuth
// @Param subscriberId path int true "订阅者（用户）ID"
// @Success 200 {object} response.Envelope
// @Router /subscriptions/u/{subscriberId} [get]
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	subscriberID, ok := parseIDParam(c, "subscriberId")
	if !ok {
		return
	}

	data, err := h.subs.GetSubscribedChannels(middleware.GetCurrentUserID(c), subscriberID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, data, "获取成功")
}

func (h *SubscriptionHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		response.NotFound(c, "频道不存在")
	case errors.Is(err, service.ErrNotChannelOwner):
		response.Forbidden(c, "只有频道所有者才能查看订阅者列表")
	case errors.Is(err, service.ErrNotSubscriptionSelf):
		response.Forbidden(c, "只能查看自己的订阅列表")
	default:
		logger.Error("订阅接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
