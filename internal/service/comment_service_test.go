package service

import (
	"fmt"
	"testing"

	"vidtube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentListPagination(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	video := env.seedVideo(t, owner, "demo")

	// 没有评论的视频：第一页也按未找到处理
	_, err := env.comment.List(video.ID, 0, 1, 10)
	assert.ErrorIs(t, err, ErrNoCommentsOnPage)

	for i := 0; i < 5; i++ {
		_, err := env.comment.Add(owner, video.ID, fmt.Sprintf("评论 %d", i))
		require.NoError(t, err)
	}

	data, err := env.comment.List(video.ID, owner.ID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), data.Total)
	assert.Len(t, data.Comments, 3)
	assert.Equal(t, int64(2), data.TotalPages)
	for _, c := range data.Comments {
		assert.True(t, c.IsOwner)
		require.NotNil(t, c.Owner)
	}

	data, err = env.comment.List(video.ID, 0, 2, 3)
	require.NoError(t, err)
	assert.Len(t, data.Comments, 2)

	// 翻过最后一页
	_, err = env.comment.List(video.ID, 0, 3, 3)
	assert.ErrorIs(t, err, ErrNoCommentsOnPage)

	_, err = env.comment.List(9999, 0, 1, 10)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestCommentLikedByUserFlag(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	fan := env.seedUser(t, "fan")
	video := env.seedVideo(t, owner, "demo")

	comment, err := env.comment.Add(owner, video.ID, "顶")
	require.NoError(t, err)
	_, err = env.like.ToggleCommentLike(fan.ID, comment.ID)
	require.NoError(t, err)

	data, err := env.comment.List(video.ID, fan.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, data.Comments, 1)
	assert.True(t, data.Comments[0].LikedByUser)
	assert.Equal(t, int64(1), data.Comments[0].TotalLikes)
	assert.False(t, data.Comments[0].IsOwner)

	// 游客视角
	data, err = env.comment.List(video.ID, 0, 1, 10)
	require.NoError(t, err)
	assert.False(t, data.Comments[0].LikedByUser)
}

func TestCommentUpdateAndDeleteOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	intruder := env.seedUser(t, "intruder")
	video := env.seedVideo(t, owner, "demo")

	comment, err := env.comment.Add(owner, video.ID, "原始内容")
	require.NoError(t, err)

	// 非作者：拒绝且实体不变
	_, err = env.comment.Update(intruder, comment.ID, "篡改")
	assert.ErrorIs(t, err, ErrNotCommentOwner)
	err = env.comment.Delete(intruder, comment.ID)
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	unchanged, err := env.comments.GetByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "原始内容", unchanged.Content)

	// 作者更新
	updated, err := env.comment.Update(owner, comment.ID, "改过的内容")
	require.NoError(t, err)
	assert.Equal(t, "改过的内容", updated.Content)

	// 删除评论连带清掉评论上的点赞
	_, err = env.like.ToggleCommentLike(intruder.ID, comment.ID)
	require.NoError(t, err)
	require.NoError(t, env.comment.Delete(owner, comment.ID))

	_, err = env.comments.GetByID(comment.ID)
	assert.Error(t, err)
	count, err := env.likes.CountByTarget(model.LikeTargetComment, comment.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = env.comment.Update(owner, 9999, "x")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
