package handler

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/response"
	"vidtube/internal/config"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const refreshTokenCookie = "refreshToken"

// UserHandler 用户与会话接口
type UserHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewUserHandler(auth *service.AuthService, users *service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "昵称"
// @Param email formData string true "邮箱"
// @Param username formData string true "用户名"
// @Param password formData string true "密码"
// @Param avatar formData file true "头像"
// @Param coverImage formData file false "主页封面"
// @Success 201 {object} response.Envelope
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	avatarPath, err := saveUpload(c, "avatar", true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	coverPath, err := saveUpload(c, "coverImage", false)
	if err != nil {
		removeTemp(avatarPath)
		response.BadRequest(c, err.Error())
		return
	}
	defer removeTemp(avatarPath, coverPath)

	user, err := h.auth.Register(c.Request.Context(), &req, avatarPath, coverPath)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, user, "注册成功")
}

// Login 用户登录
// @Summary 用户登录（用户名或邮箱）
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录请求"
// @Success 200 {object} response.Envelope
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if req.Identifier() == "" {
		response.BadRequest(c, "用户名或邮箱至少填写一个")
		return
	}

	data, err := h.auth.Login(req.Identifier(), req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setAuthCookies(c, data.AccessToken, data.RefreshToken)
	response.OK(c, data, "登录成功")
}

// Logout 用户登出
// @Summary 用户登出
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	if err := h.auth.Logout(user.ID); err != nil {
		h.handleError(c, err)
		return
	}

	h.clearAuthCookies(c)
	response.OK(c, nil, "登出成功")
}

// RefreshToken 轮换令牌
// @Summary 用刷新令牌换取新令牌对
// @Tags 用户
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /users/refresh-token [post]
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			token = cookie
		}
	}
	if token == "" {
		response.Unauthorized(c, "缺少刷新令牌")
		return
	}

	data, err := h.auth.Refresh(token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setAuthCookies(c, data.AccessToken, data.RefreshToken)
	response.OK(c, data, "令牌已轮换")
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.ChangePasswordRequest true "修改密码请求"
// @Success 200 {object} response.Envelope
// @Router /users/change-password [post]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	if err := h.users.ChangePassword(user, req.OldPassword, req.NewPassword); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil, "密码修改成功")
}

// GetCurrentUser 获取当前登录用户
// @Summary 获取当前登录用户
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Router /users/current-user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	response.OK(c, gin.H{
		"id":            user.ID,
		"username":      user.UserName,
		"email":         user.Email,
		"fullName":      user.FullName,
		"avatarUrl":     user.AvatarURL,
		"coverImageUrl": user.CoverImageURL,
		"createdAt":     user.CreatedAt,
		"updatedAt":     user.UpdatedAt,
	}, "获取成功")
}

// UpdateAccount 更新账户资料
// @Summary 更新昵称与邮箱
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.UpdateAccountRequest true "更新请求"
// @Success 200 {object} response.Envelope
// @Router /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.users.UpdateAccount(user.ID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "账户资料已更新")
}

// UpdateAvatar 更新头像
// @Summary 更新头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param avatar formData file true "新头像"
// @Success 200 {object} response.Envelope
// @Router /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	avatarPath, err := saveUpload(c, "avatar", true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer removeTemp(avatarPath)

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.users.UpdateAvatar(c.Request.Context(), user, avatarPath)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "头像已更新")
}

// UpdateCoverImage 更新主页封面
// @Summary 更新主页封面
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param coverImage formData file true "新封面"
// @Success 200 {object} response.Envelope
// @Router /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	coverPath, err := saveUpload(c, "coverImage", true)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer removeTemp(coverPath)

	user, _ := middleware.GetCurrentUser(c)
	info, err := h.users.UpdateCoverImage(c.Request.Context(), user, coverPath)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, info, "主页封面已更新")
}

// GetChannelProfile 频道主页
// @Summary 按用户名查看频道主页
// @Tags 用户
// @Produce json
// @Param username path string true "频道用户名"
// @Success 200 {object} response.Envelope
// @Router /users/c/{username} [get]
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.BadRequest(c, "用户名不能为空")
		return
	}

	data, err := h.users.GetChannelProfile(username, middleware.GetCurrentUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, data, "获取成功")
}

// GetWatchHistory 观看历史
// @Summary 获取观看历史
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} response.Envelope
// @Router /users/history [get]
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	user, _ := middleware.GetCurrentUser(c)
	videos, err := h.users.GetWatchHistory(user.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, videos, "获取成功")
}

// setAuthCookies 写入令牌 Cookie（httpOnly，release 模式下 secure）
func (h *UserHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	jwtCfg := config.GetJWT()
	secure := config.GetApp().Mode == "release"
	c.SetCookie(middleware.AccessTokenCookie, accessToken,
		int(jwtCfg.AccessExpireDuration().Seconds()), "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, refreshToken,
		int(jwtCfg.RefreshExpireDuration().Seconds()), "/", "", secure, true)
}

func (h *UserHandler) clearAuthCookies(c *gin.Context) {
	secure := config.GetApp().Mode == "release"
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", secure, true)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, "用户名或邮箱已被占用")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "用户不存在")
	case errors.Is(err, service.ErrPasswordIncorrect):
		response.Unauthorized(c, "密码错误")
	case errors.Is(err, service.ErrInvalidRefreshToken):
		response.Unauthorized(c, "无效或过期的刷新令牌")
	default:
		logger.Error("用户接口内部错误", zap.Error(err))
		response.InternalError(c, "服务器内部错误")
	}
}
