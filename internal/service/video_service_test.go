package service

import (
	"context"
	"testing"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchVideos(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")

	for i, title := range []string{"Go 入门", "Go 进阶", "Rust 入门"} {
		v := env.seedVideo(t, owner, title)
		_, err := env.videos.Update(v.ID, map[string]interface{}{"views": int64(i + 1)})
		require.NoError(t, err)
	}
	// 未发布的视频不进检索结果
	hidden := env.seedVideo(t, owner, "Go 未发布")
	_, err := env.videos.Update(hidden.ID, map[string]interface{}{"is_published": false})
	require.NoError(t, err)

	q := &dto.SearchVideosQuery{Page: 1, Limit: 10, Query: "go", SortBy: "views", SortType: -1}
	data, err := env.video.Search(q)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.Total)
	require.Len(t, data.Videos, 2)
	assert.Equal(t, "Go 进阶", data.Videos[0].Title, "按播放量降序")
	assert.NotNil(t, data.Videos[0].Owner)

	// 翻过最后一页按未找到处理
	q.Page = 5
	_, err = env.video.Search(q)
	assert.ErrorIs(t, err, ErrNoVideosMatched)

	// 排序字段白名单
	q.Page = 1
	q.SortBy = "password"
	_, err = env.video.Search(q)
	assert.ErrorIs(t, err, ErrInvalidSortField)

	// 按作者过滤
	other := env.seedUser(t, "other")
	q = &dto.SearchVideosQuery{Page: 1, Limit: 10, SortBy: "createdAt", SortType: -1, OwnerID: &other.ID}
	_, err = env.video.Search(q)
	assert.ErrorIs(t, err, ErrNoVideosMatched)
}

func TestPublishVideo(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")

	info, err := env.video.Publish(context.Background(), owner.ID,
		&dto.PublishVideoRequest{Title: "新视频", Description: "描述"},
		"clip.mp4", "thumb.png")
	require.NoError(t, err)
	assert.Equal(t, 42, info.Duration, "时长来自上传探测")
	assert.True(t, info.IsPublished)
	assert.Equal(t, 2, env.media.uploads)
}

func TestGetDetailViewsAndFlags(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	viewer := env.seedUser(t, "viewer")
	video := env.seedVideo(t, owner, "demo")

	// 游客视角：布尔位恒为 false
	detail, err := env.video.GetDetail(video.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Views, "每次获取播放量 +1")
	assert.False(t, detail.LikedByUser)
	assert.False(t, detail.IsSubscribedTo)

	// 点赞 + 订阅后布尔位翻转
	_, err = env.like.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	_, err = env.subscription.Toggle(viewer.ID, owner.ID)
	require.NoError(t, err)

	detail, err = env.video.GetDetail(video.ID, viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.Views)
	assert.Equal(t, int64(1), detail.TotalLikes)
	assert.Equal(t, int64(1), detail.TotalSubscribers)
	assert.True(t, detail.LikedByUser)
	assert.True(t, detail.IsSubscribedTo)

	_, err = env.video.GetDetail(9999, nil)
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestGetDetailUnpublishedOnlyOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	other := env.seedUser(t, "other")
	video := env.seedVideo(t, owner, "draft")
	_, err := env.videos.Update(video.ID, map[string]interface{}{"is_published": false})
	require.NoError(t, err)

	_, err = env.video.GetDetail(video.ID, other)
	assert.ErrorIs(t, err, ErrVideoNotFound)
	_, err = env.video.GetDetail(video.ID, nil)
	assert.ErrorIs(t, err, ErrVideoNotFound)

	detail, err := env.video.GetDetail(video.ID, owner)
	require.NoError(t, err)
	assert.False(t, detail.IsPublished)
}

func TestUpdateDetailsOwnershipAndThumbnailSwap(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	intruder := env.seedUser(t, "intruder")
	video := env.seedVideo(t, owner, "demo")
	oldThumbnail := video.ThumbnailURL

	req := &dto.UpdateVideoRequest{Title: "改过的标题", Description: "改过的描述"}

	// 非作者：拒绝且实体不变
	_, err := env.video.UpdateDetails(context.Background(), intruder, video.ID, req, "thumb.png")
	assert.ErrorIs(t, err, ErrNotVideoOwner)
	unchanged, err := env.videos.GetByID(video.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo", unchanged.Title)
	assert.Equal(t, oldThumbnail, unchanged.ThumbnailURL)

	// 作者：更新成功，旧封面进清理队列
	info, err := env.video.UpdateDetails(context.Background(), owner, video.ID, req, "thumb.png")
	require.NoError(t, err)
	assert.Equal(t, "改过的标题", info.Title)
	assert.NotEqual(t, oldThumbnail, info.ThumbnailURL)
	assert.Contains(t, env.cleanup.urls, oldThumbnail)
}

func TestDeleteVideoCascade(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	viewer := env.seedUser(t, "viewer")
	video := env.seedVideo(t, owner, "doomed")

	comment, err := env.comment.Add(viewer, video.ID, "不错")
	require.NoError(t, err)
	_, err = env.like.ToggleVideoLike(viewer.ID, video.ID)
	require.NoError(t, err)
	_, err = env.like.ToggleCommentLike(owner.ID, comment.ID)
	require.NoError(t, err)

	playlist, err := env.playlist.Create(owner, &dto.PlaylistCreateRequest{Name: "收藏", Description: "d"})
	require.NoError(t, err)
	_, err = env.playlist.AddVideo(owner, playlist.ID, video.ID)
	require.NoError(t, err)

	_, err = env.video.GetDetail(video.ID, viewer)
	require.NoError(t, err)

	// 非作者不能删除
	err = env.video.Delete(context.Background(), viewer, video.ID)
	assert.ErrorIs(t, err, ErrNotVideoOwner)

	require.NoError(t, env.video.Delete(context.Background(), owner, video.ID))

	// 视频本体与全部关联数据清零
	_, err = env.videos.GetByID(video.ID)
	assert.Error(t, err)
	count, err := env.likes.CountByTarget(model.LikeTargetVideo, video.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = env.likes.CountByTarget(model.LikeTargetComment, comment.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = env.comments.CountByVideo(video.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	detail, err := env.playlist.GetByID(playlist.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Videos)

	history, err := env.user.GetWatchHistory(viewer.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	// 媒体对象进清理队列
	assert.Contains(t, env.cleanup.urls, video.VideoURL)
	assert.Contains(t, env.cleanup.urls, video.ThumbnailURL)
}

func TestTogglePublish(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "owner")
	intruder := env.seedUser(t, "intruder")
	video := env.seedVideo(t, owner, "demo")

	_, err := env.video.TogglePublish(intruder, video.ID)
	assert.ErrorIs(t, err, ErrNotVideoOwner)

	info, err := env.video.TogglePublish(owner, video.ID)
	require.NoError(t, err)
	assert.False(t, info.IsPublished)

	info, err = env.video.TogglePublish(owner, video.ID)
	require.NoError(t, err)
	assert.True(t, info.IsPublished)
}
