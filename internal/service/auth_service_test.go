package service

import (
	"context"
	"testing"

	"vidtube/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &dto.RegisterRequest{
		FullName: "张三",
		Email:    "zhangsan@example.com",
		Username: "ZhangSan",
		Password: "password123",
	}

	user, err := env.auth.Register(ctx, req, "avatar.png", "cover.png")
	require.NoError(t, err)
	assert.Equal(t, "zhangsan", user.Username, "用户名应统一小写存储")
	assert.NotNil(t, user.CoverImageURL)
	assert.Equal(t, 2, env.media.uploads)

	// 用户名重复
	dup := &dto.RegisterRequest{FullName: "李四", Email: "lisi@example.com", Username: "zhangsan", Password: "password123"}
	_, err = env.auth.Register(ctx, dup, "avatar.png", "")
	assert.ErrorIs(t, err, ErrUserExists)

	// 邮箱重复
	dup = &dto.RegisterRequest{FullName: "李四", Email: "zhangsan@example.com", Username: "lisi", Password: "password123"}
	_, err = env.auth.Register(ctx, dup, "avatar.png", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")

	// 用户名登录
	data, err := env.auth.Login("alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, data.User.ID)
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)

	// 邮箱登录
	_, err = env.auth.Login("alice@example.com", "password123")
	require.NoError(t, err)

	// 密码错误
	_, err = env.auth.Login("alice", "wrong-password")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	// 用户不存在
	_, err = env.auth.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRefreshRotation(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice")

	data, err := env.auth.Login("alice", "password123")
	require.NoError(t, err)

	rotated, err := env.auth.Refresh(data.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// 轮换后旧刷新令牌作废
	_, err = env.auth.Refresh(data.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// 新刷新令牌可以继续轮换
	_, err = env.auth.Refresh(rotated.RefreshToken)
	require.NoError(t, err)
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")

	data, err := env.auth.Login("alice", "password123")
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(user.ID))

	_, err = env.auth.Refresh(data.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
