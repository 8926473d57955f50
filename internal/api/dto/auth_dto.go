package dto

// RegisterRequest 注册请求（multipart/form-data，头像文件另行提取）
type RegisterRequest struct {
	FullName string `form:"fullName" binding:"required,notblank"`
	Email    string `form:"email" binding:"required,email"`
	Username string `form:"username" binding:"required,notblank,min=1,max=255"`
	Password string `form:"password" binding:"required,notblank,min=6,max=255"`
}

// LoginRequest 登录请求，用户名或邮箱任填其一
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Identifier 返回用于查找用户的标识（用户名优先）
func (r *LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// RefreshRequest 令牌轮换请求（刷新令牌也可经 Cookie 携带）
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenData 登录 / 轮换成功返回的令牌信息
type TokenData struct {
	User         *UserInfo `json:"user,omitempty"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}
