package handler

import (
	"errors"
	"strconv"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VideoHandler 视频接口
type VideoHandler struct {
	videos *service.VideoService
}

func NewVideoHandler(videos *service.VideoService) *VideoHandler {
	return &VideoHandler{videos: videos}
}

// GetAll 检索已发布视频
// @Summary 检索已发布视频
// @Tags 视频
// @Produce json
// @Param page query int true "页码"
// @Param limit query int true "每页数量"
// @Param query query string true "检索关键字"
// @Param sortBy query string true "排序字段 createdAt/views/duration/title"
// @Param sortType query int true "1 升序 / -1 降序"
// @Param userId query int false "按作者过滤"
// @Success 200 {object} response.Envelope
// @Router /videos [get]
func (h *VideoHandler) GetAll(c *gin.Context) {
	page, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	query := c.Query("query")
	sortBy := c.Query("sortBy")
	sortTypeStr := c.Query("sortType")
	if query == "" || sortBy == "" || sortTypeStr == "" {
		response.BadRequest(c, "query、sortBy 和 sortType 为必填参数")
		return
	}
	sortType, err := strconv.Atoi(sortTypeStr)
	if err != nil || (sortType != 1 && sortType != -1) {
		response.BadRequest(c, "sortType 只能是 1 或 -1")
		return
	}

	q := &dto.SearchVideosQuery{
		Page:     page,
		Limit:    limit,
		Query:    query,
		SortBy:   sortBy,
		SortType: sortType,
	}
	if userIDStr := c.Query("userId"); userIDStr != "" {
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID < 1 {
			response.BadRequest(c, "无效的 userId")
			return
		}
		q.OwnerID = &userID
	}

	data, err := h.videos.Search(q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, data, "获取成功")
}

// Publish 发布视频
// @Summary 发布视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param videoFile formData file true "视频文件"
// @Param thumbnail formData file true "封面图"
// @Success 201 {object} response.Envelope
// @Router /videos [post]
func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	videoPath, err := saveUpload(c, "videoFile", true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	thumbnailPath, err := saveUpload(c, "thumbnail", true)
	if err != nil {
		removeTemp(videoPath)
		response.BadRequest(c, err.Error())
		return
	}
	defer removeTemp(videoPath, thumbnailPath)

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.videos.Publish(c.Request.Context(), user.ID, &req, videoPath, thumbnailPath)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, info, "视频发布成功")
}

// GetByID 视频详情
// @Summary 视频聚合视图（互动统计 + 调用方相关布尔位），每次获取播放量 +1
// @Tags 视频
// @Produce json
// @Param videoId path int true "视频 ID"
// @Success 200 {object} response.Envelope
// @Router /videos/{videoId} [get]
func (h *VideoHandler) GetByID(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	viewer, _ := middleware.GetCurrentUser(c)
	data, err := h.videos.GetDetail(videoID, viewer)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, data, "获取成功")
}

// Update 更新视频资料
// @Summary 替换标题、描述与封面
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Param title formData string true "标题"
// @Param description formData string true "描述"
// @Param thumbnail formData file true "新封面"
// @Success 200 {object} response.Envelope
// @Router /videos/{videoId} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	thumbnailPath, err := saveUpload(c, "thumbnail", true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer removeTemp(thumbnailPath)

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.videos.UpdateDetails(c.Request.Context(), user, videoID, &req, thumbnailPath)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "视频资料已更新")
}

// Delete 删除视频
// @Summary 级联删除视频
// @Tags 视频
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Success 200 {object} response.Envelope
// @Router /videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	if err := h.videos.Delete(c.Request.Context(), user, videoID); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil, "视频已删除")
}

// TogglePublish 翻转发布状态
// @Summary 翻转视频发布状态
// @Tags 视频
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Success 200 {object} response.Envelope
// @Router /videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.videos.TogglePublish(user, videoID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "发布状态已更新")
}

func (h *VideoHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, "视频不存在")
	case errors.Is(err, service.ErrNoVideosMatched):
		response.NotFound(c, "没有匹配的视频")
	case errors.Is(err, service.ErrNotVideoOwner):
		response.Forbidden(c, "只有视频作者才能执行该操作")
	case errors.Is(err, service.ErrInvalidSortField):
		response.BadRequest(c, "不支持的排序字段")
	default:
		logger.Error("视频接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
