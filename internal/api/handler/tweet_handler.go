package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TweetHandler 推文接口
type TweetHandler struct {
	tweets *service.TweetService
}

func NewTweetHandler(tweets *service.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// Create 发布推文
// @Summary 发布推文
// @Tags 推文
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.TweetCreateRequest true "推文内容"
// @Success 201 {object} response.Envelope
// @Router /tweets [post]
func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.tweets.Create(user, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, info, "推文发布成功")
}

// GetUserTweets 某用户的推文
// @Summary 某用户的推文聚合视图
// @Tags 推文
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "用户 ID"
// @Success 200 {object} response.Envelope
// @Router /tweets/user/{userId} [get]
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	data, err := h.tweets.GetUserTweets(userID, middleware.GetCurrentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, data, "获取成功")
}

// Update 更新推文
// @Summary 更新推文内容
// @Tags 推文
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tweetId path int true "推文 ID"
// @Param request body dto.TweetUpdateRequest true "新内容"
// @Success 200 {object} response.Envelope
// @Router /tweets/{tweetId} [patch]
func (h *TweetHandler) Update(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "tweetId")
	if !ok {
		return
	}

	var req dto.TweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.tweets.Update(user, tweetID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "推文已更新")
}

// Delete 删除推文
// @Summary 删除推文及其点赞
// @Tags 推文
// @Produce json
// @Security ApiKeyAuth
// @Param tweetId path int true "推文 ID"
// @Success 200 {object} response.Envelope
// @Router /tweets/{tweetId} [delete]
func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "tweetId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	if err := h.tweets.Delete(user, tweetID); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil, "推文已删除")
}

func (h *TweetHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "用户不存在")
	case errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, "推文不存在")
	case errors.Is(err, service.ErrNoTweetsFound):
		response.NotFound(c, "该用户还没有发布推文")
	case errors.Is(err, service.ErrNotTweetOwner):
		response.Forbidden(c, "只有推文作者才能执行该操作")
	default:
		logger.Error("推文接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
