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

// LikeHandler 点赞接口
type LikeHandler struct {
	likes *service.LikeService
}

func NewLikeHandler(likes *service.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// ToggleVideoLike 视频点赞 toggle
// @Summary 对视频点赞 / 取消点赞
// @Tags 点赞
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Success 200 {object} response.Envelope
// @Router /likes/toggle/v/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	data, err := h.likes.ToggleVideoLike(middleware.GetCurrentUserID(c), videoID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, data, h.toggleMessage(data.Liked))
}

// ToggleCommentLike 评论点赞 toggle
// @Summary 对评论点赞 / 取消点赞
// @Tags 点赞
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path int true "评论 ID"
// @Success 200 {object} response.Envelope
// @Router /likes/toggle/c/{commentId} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	data, err := h.likes.ToggleCommentLike(middleware.GetCurrentUserID(c), commentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, data, h.toggleMessage(data.Liked))
}

// ToggleTweetLike 推文点赞 toggle
// @Summary 对推文点赞 / 取消点赞
// @Tags 点赞
// @Produce json
// @Security ApiKeyAuth
// @Param tweetId path int true "推文 ID"
// @Success 200 {object} response.Envelope
// @Router /likes/toggle/t/{tweetId} [post]
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "tweetId")
	if !ok {
		return
	}

	data, err := h.likes.ToggleTweetLike(middleware.GetCurrentUserID(c), tweetID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, data, h.toggleMessage(data.Liked))
}

// GetLikedVideos 点赞过的视频
// @Summary 当前用户点赞过的视频列表
// @Tags 点赞
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Router /likes/videos [get]
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	videos, err := h.likes.GetLikedVideos(middleware.GetCurrentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, videos, "获取成功")
}

func (h *LikeHandler) toggleMessage(liked bool) string {
	if liked {
		return "点赞成功"
	}
	return "已取消点赞"
}

func (h *LikeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, "视频不存在")
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, "评论不存在")
	case errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, "推文不存在")
	case errors.Is(err, service.ErrNoLikedVideos):
		response.NotFound(c, "还没有点赞过任何视频")
	default:
		logger.Error("点赞接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
