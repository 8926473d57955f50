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

// CommentHandler 评论接口
type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List 视频评论分页列表
// @Summary 视频评论分页列表
// @Tags 评论
// @Produce json
// @Param videoId path int true "视频 ID"
// @Param page query int true "页码"
// @Param limit query int true "每页数量"
// @Success 200 {object} response.Envelope
// @Router /comments/{videoId} [get]
func (h *CommentHandler) List(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	data, err := h.comments.List(videoID, middleware.GetCurrentUserID(c), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, data, "获取成功")
}

// Add 发表评论
// @Summary 在视频下发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Param request body dto.CommentCreateRequest true "评论内容"
// @Success 201 {object} response.Envelope
// @Router /comments/{videoId} [post]
func (h *CommentHandler) Add(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.comments.Add(user, videoID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, info, "评论发表成功")
}

// Update 更新评论
// @Summary 更新评论内容
// @Tags 评论
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path int true "评论 ID"
// @Param request body dto.CommentUpdateRequest true "新内容"
// @Success 200 {object} response.Envelope
// @Router /comments/c/{commentId} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.comments.Update(user, commentID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "评论已更新")
}

// Delete 删除评论
// @Summary 删除评论及其点赞
// @Tags 评论
// @Produce json
// @Security ApiKeyAuth
// @Param commentId path int true "评论 ID"
// @Success 200 {object} response.Envelope
// @Router /comments/c/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	if err := h.comments.Delete(user, commentID); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil, "评论已删除")
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, "视频不存在")
	case errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, "评论不存在")
	case errors.Is(err, service.ErrNoCommentsOnPage):
		response.NotFound(c, "该页没有评论")
	case errors.Is(err, service.ErrNotCommentOwner):
		response.Forbidden(c, "只有评论作者才能执行该操作")
	default:
		logger.Error("评论接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
