package service

import (
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistLifecycle(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	intruder := env.seedUser(t, "intruder")

	playlist, err := env.playlist.Create(owner, &dto.PlaylistCreateRequest{Name: "收藏", Description: "精选"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, playlist.OwnerID)
	assert.Empty(t, playlist.Videos)

	// 非所有者不能更新 / 删除
	_, err = env.playlist.Update(intruder, playlist.ID, &dto.PlaylistUpdateRequest{Name: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrNotPlaylistOwner)
	err = env.playlist.Delete(intruder, playlist.ID)
	assert.ErrorIs(t, err, ErrNotPlaylistOwner)

	updated, err := env.playlist.Update(owner, playlist.ID, &dto.PlaylistUpdateRequest{Name: "新名字", Description: "新描述"})
	require.NoError(t, err)
	assert.Equal(t, "新名字", updated.Name)

	require.NoError(t, env.playlist.Delete(owner, playlist.ID))
	_, err = env.playlist.GetByID(playlist.ID)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
}

func TestPlaylistAddRemoveVideos(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	intruder := env.seedUser(t, "intruder")
	v1 := env.seedVideo(t, owner, "first")
	v2 := env.seedVideo(t, owner, "second")

	playlist, err := env.playlist.Create(owner, &dto.PlaylistCreateRequest{Name: "列表", Description: "d"})
	require.NoError(t, err)

	// 非所有者不能添加
	_, err = env.playlist.AddVideo(intruder, playlist.ID, v1.ID)
	assert.ErrorIs(t, err, ErrNotPlaylistOwner)

	info, err := env.playlist.AddVideo(owner, playlist.ID, v1.ID)
	require.NoError(t, err)
	require.Len(t, info.Videos, 1)

	info, err = env.playlist.AddVideo(owner, playlist.ID, v2.ID)
	require.NoError(t, err)
	require.Len(t, info.Videos, 2)
	assert.Equal(t, v1.ID, info.Videos[0].ID, "按加入顺序")
	assert.Equal(t, v2.ID, info.Videos[1].ID)

	// 重复加入被拒绝
	_, err = env.playlist.AddVideo(owner, playlist.ID, v1.ID)
	assert.ErrorIs(t, err, repository.ErrVideoAlreadyInPlaylist)

	// 不存在的视频
	_, err = env.playlist.AddVideo(owner, playlist.ID, 9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	// 移除后重新加入排到末尾
	info, err = env.playlist.RemoveVideo(owner, playlist.ID, v1.ID)
	require.NoError(t, err)
	require.Len(t, info.Videos, 1)

	info, err = env.playlist.AddVideo(owner, playlist.ID, v1.ID)
	require.NoError(t, err)
	require.Len(t, info.Videos, 2)
	assert.Equal(t, v2.ID, info.Videos[0].ID)
	assert.Equal(t, v1.ID, info.Videos[1].ID)

	// 不在列表里的视频无法移除
	v3 := env.seedVideo(t, owner, "third")
	_, err = env.playlist.RemoveVideo(owner, playlist.ID, v3.ID)
	assert.ErrorIs(t, err, ErrVideoNotInPlaylist)
}

func TestGetUserPlaylists(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	video := env.seedVideo(t, owner, "demo")

	// 还没有任何播放列表按未找到处理
	_, err := env.playlist.GetUserPlaylists(owner.ID)
	assert.ErrorIs(t, err, ErrNoPlaylists)

	playlist, err := env.playlist.Create(owner, &dto.PlaylistCreateRequest{Name: "列表", Description: "d"})
	require.NoError(t, err)
	_, err = env.playlist.AddVideo(owner, playlist.ID, video.ID)
	require.NoError(t, err)

	infos, err := env.playlist.GetUserPlaylists(owner.ID)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Len(t, infos[0].Videos, 1)
	assert.Equal(t, video.ID, infos[0].Videos[0].ID)
	require.NotNil(t, infos[0].Owner)
	assert.Equal(t, "owner", infos[0].Owner.Username)

	_, err = env.playlist.GetUserPlaylists(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
