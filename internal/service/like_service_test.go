package service

import (
	"testing"

	"vidtube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleVideoLike(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	fan := env.seedUser(t, "fan")
	video := env.seedVideo(t, owner, "demo")

	// 第一次 toggle：点赞
	data, err := env.like.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)
	assert.True(t, data.Liked)
	require.NotNil(t, data.Like)
	assert.Equal(t, "video", data.Like.TargetType)

	count, err := env.likes.CountByTarget(model.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 第二次 toggle：取消，回到初始状态
	data, err = env.like.ToggleVideoLike(fan.ID, video.ID)
	require.NoError(t, err)
	assert.False(t, data.Liked)
	assert.Nil(t, data.Like)

	count, err = env.likes.CountByTarget(model.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = env.like.ToggleVideoLike(fan.ID, 9999)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestToggleCommentAndTweetLike(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	video := env.seedVideo(t, owner, "demo")

	comment, err := env.comment.Add(owner, video.ID, "первый")
	require.NoError(t, err)
	tweet, err := env.tweet.Create(owner, "一条推文")
	require.NoError(t, err)

	data, err := env.like.ToggleCommentLike(owner.ID, comment.ID)
	require.NoError(t, err)
	assert.True(t, data.Liked)

	data, err = env.like.ToggleTweetLike(owner.ID, tweet.ID)
	require.NoError(t, err)
	assert.True(t, data.Liked)

	_, err = env.like.ToggleCommentLike(owner.ID, 9999)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	_, err = env.like.ToggleTweetLike(owner.ID, 9999)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestTogglePersistsTaggedTarget(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	video := env.seedVideo(t, owner, "demo")

	comment, err := env.comment.Add(owner, video.ID, "评论")
	require.NoError(t, err)
	tweet, err := env.tweet.Create(owner, "推文")
	require.NoError(t, err)

	_, err = env.like.ToggleVideoLike(owner.ID, video.ID)
	require.NoError(t, err)
	_, err = env.like.ToggleCommentLike(owner.ID, comment.ID)
	require.NoError(t, err)
	_, err = env.like.ToggleTweetLike(owner.ID, tweet.ID)
	require.NoError(t, err)

	// 落库的记录必须恰好指向三类目标之一
	var likes []model.Like
	require.NoError(t, env.db.Order("id").Find(&likes).Error)
	require.Len(t, likes, 3)
	assert.Equal(t, model.LikeTargetVideo, likes[0].TargetType)
	assert.Equal(t, video.ID, likes[0].TargetID)
	assert.Equal(t, model.LikeTargetComment, likes[1].TargetType)
	assert.Equal(t, comment.ID, likes[1].TargetID)
	assert.Equal(t, model.LikeTargetTweet, likes[2].TargetType)
	assert.Equal(t, tweet.ID, likes[2].TargetID)
}

func TestGetLikedVideos(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	fan := env.seedUser(t, "fan")

	// 一个都没有按未找到处理
	_, err := env.like.GetLikedVideos(fan.ID)
	assert.ErrorIs(t, err, ErrNoLikedVideos)

	v1 := env.seedVideo(t, owner, "first")
	v2 := env.seedVideo(t, owner, "second")
	_, err = env.like.ToggleVideoLike(fan.ID, v1.ID)
	require.NoError(t, err)
	_, err = env.like.ToggleVideoLike(fan.ID, v2.ID)
	require.NoError(t, err)

	liked, err := env.like.GetLikedVideos(fan.ID)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	ids := []int64{liked[0].Video.ID, liked[1].Video.ID}
	assert.ElementsMatch(t, []int64{v1.ID, v2.ID}, ids)

	// 取消点赞后列表随之缩短
	_, err = env.like.ToggleVideoLike(fan.ID, v1.ID)
	require.NoError(t, err)
	liked, err = env.like.GetLikedVideos(fan.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, v2.ID, liked[0].Video.ID)
}
