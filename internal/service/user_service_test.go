package service

import (
	"context"
	"testing"

	"vidtube/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")

	err := env.user.ChangePassword(user, "wrong-old", "newpassword")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	require.NoError(t, env.user.ChangePassword(user, "password123", "newpassword"))

	// 新密码生效，旧密码失效
	_, err = env.auth.Login("alice", "newpassword")
	require.NoError(t, err)
	_, err = env.auth.Login("alice", "password123")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestUpdateAccount(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")

	info, err := env.user.UpdateAccount(user.ID, &dto.UpdateAccountRequest{
		FullName: "爱丽丝",
		Email:    "new-alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "爱丽丝", info.FullName)
	assert.Equal(t, "new-alice@example.com", info.Email)
}

func TestUpdateAvatarEnqueuesOldObject(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "alice")
	oldAvatar := user.AvatarURL

	info, err := env.user.UpdateAvatar(context.Background(), user, "new-avatar.png")
	require.NoError(t, err)
	assert.NotEqual(t, oldAvatar, info.AvatarURL)
	assert.Contains(t, env.cleanup.urls, oldAvatar, "旧头像应进入清理队列")
}

func TestChannelProfile(t *testing.T) {
	env := newTestEnv(t)
	channel := env.seedUser(t, "channel")
	fan := env.seedUser(t, "fan")

	_, err := env.subscription.Toggle(fan.ID, channel.ID)
	require.NoError(t, err)

	// 已订阅的调用方
	profile, err := env.user.GetChannelProfile("channel", fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)

	// 游客视角布尔位恒为 false
	profile, err = env.user.GetChannelProfile("channel", 0)
	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)

	_, err = env.user.GetChannelProfile("nobody", 0)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestWatchHistoryOrderAndIdempotence(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	viewer := env.seedUser(t, "viewer")
	v1 := env.seedVideo(t, owner, "first")
	v2 := env.seedVideo(t, owner, "second")

	_, err := env.video.GetDetail(v1.ID, viewer)
	require.NoError(t, err)
	_, err = env.video.GetDetail(v2.ID, viewer)
	require.NoError(t, err)
	// 重复观看不重复入表
	_, err = env.video.GetDetail(v1.ID, viewer)
	require.NoError(t, err)

	history, err := env.user.GetWatchHistory(viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, v1.ID, history[0].ID)
	assert.Equal(t, v2.ID, history[1].ID)
}
