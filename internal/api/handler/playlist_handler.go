package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/repository"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlaylistHandler 播放列表接口
type PlaylistHandler struct {
	playlists *service.PlaylistService
}

func NewPlaylistHandler(playlists *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlists: playlists}
}

// Create 创建播放列表
// @Summary 创建播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.PlaylistCreateRequest true "创建请求"
// @Success 201 {object} response.Envelope
// @Router /playlist [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.playlists.Create(user, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, info, "播放列表创建成功")
}

// GetUserPlaylists 某用户的播放列表
// @Summary 某用户的全部播放列表
// @Tags 播放列表
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "用户 ID"
// @Success 200 {object} response.Envelope
// @Router /playlist/user/{userId} [get]
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	infos, err := h.playlists.GetUserPlaylists(userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, infos, "获取成功")
}

// GetByID 播放列表详情
// @Summary 播放列表详情
// @Tags 播放列表
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path int true "播放列表 ID"
// @Success 200 {object} response.Envelope
// @Router /playlist/{playlistId} [get]
func (h *PlaylistHandler) GetByID(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}

	info, err := h.playlists.GetByID(playlistID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, info, "获取成功")
}

// AddVideo 向列表添加视频
// @Summary 把视频追加到播放列表末尾
// @Tags 播放列表
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Param playlistId path int true "播放列表 ID"
// @Success 200 {object} response.Envelope
// @Router /playlist/add/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.playlists.AddVideo(user, playlistID, videoID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, info, "视频已加入播放列表")
}

// RemoveVideo 从列表移除视频
// @Summary 从播放列表移除视频
// @Tags 播放列表
// @Produce json
// @Security ApiKeyAuth
// @Param videoId path int true "视频 ID"
// @Param playlistId path int true "播放列表 ID"
// @Success 200 {object} response.Envelope
// @Router /playlist/remove/{videoId}/{playlistId} [patch]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.playlists.RemoveVideo(user, playlistID, videoID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, info, "视频已移出播放列表")
}

// Update 更新播放列表
// @Summary 更新名称与描述
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path int true "播放列表 ID"
// @Param request body dto.PlaylistUpdateRequest true "更新请求"
// @Success 200 {object} response.Envelope
// @Router /playlist/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.playlists.Update(user, playlistID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, info, "播放列表已更新")
}

// Delete 删除播放列表
// @Summary 删除播放列表
// @Tags 播放列表
// @Produce json
// @Security ApiKeyAuth
// @Param playlistId path int true "播放列表 ID"
// @Success 200 {object} response.Envelope
// @Router /playlist/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	if err := h.playlists.Delete(user, playlistID); err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, nil, "播放列表已删除")
}

func (h *PlaylistHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound):
		response.NotFound(c, "播放列表不存在")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "用户不存在")
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, "视频不存在")
	case errors.Is(err, service.ErrNotPlaylistOwner):
		response.Forbidden(c, "只有播放列表所有者才能执行该操作")
	case errors.Is(err, repository.ErrVideoAlreadyInPlaylist):
		response.BadRequest(c, "视频已在播放列表中")
	case errors.Is(err, service.ErrVideoNotInPlaylist):
		response.BadRequest(c, "视频不在播放列表中")
	case errors.Is(err, service.ErrNoPlaylists):
		response.NotFound(c, "该用户还没有播放列表")
	default:
		logger.Error("播放列表接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
