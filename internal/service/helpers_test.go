package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"vidtube/internal/config"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	config.Set(&config.Config{
		App: config.AppConfig{Name: "vidtube-test", Mode: "test"},
		JWT: config.JWTConfig{
			AccessSecret:       "test-access-secret",
			RefreshSecret:      "test-refresh-secret",
			AccessExpireHours:  1,
			RefreshExpireHours: 24,
		},
	})
}

// fakeMediaStore 内存版媒体存储，记录上传与删除的调用
type fakeMediaStore struct {
	uploads int
	removed []string
}

func (f *fakeMediaStore) Upload(_ context.Context, localPath string, kind MediaKind) (*UploadResult, error) {
	f.uploads++
	duration := 0
	if kind == MediaKindVideo {
		duration = 42
	}
	return &UploadResult{
		URL:      fmt.Sprintf("http://media.test/%s/%d-%s", kind, f.uploads, filepath.Base(localPath)),
		Duration: duration,
	}, nil
}

func (f *fakeMediaStore) Remove(_ context.Context, url string) error {
	f.removed = append(f.removed, url)
	return nil
}

// fakeCleanupQueue 内存版清理队列
type fakeCleanupQueue struct {
	urls []string
}

func (f *fakeCleanupQueue) Enqueue(_ context.Context, urls ...string) error {
	f.urls = append(f.urls, urls...)
	return nil
}

// testEnv 测试环境：内存库 + 全部仓储与服务
type testEnv struct {
	db      *gorm.DB
	media   *fakeMediaStore
	cleanup *fakeCleanupQueue

	users     *repository.UserRepository
	videos    *repository.VideoRepository
	comments  *repository.CommentRepository
	likes     *repository.LikeRepository
	tweets    *repository.TweetRepository
	subs      *repository.SubscriptionRepository
	playlists *repository.PlaylistRepository
	history   *repository.HistoryRepository

	auth         *AuthService
	user         *UserService
	video        *VideoService
	comment      *CommentService
	like         *LikeService
	tweet        *TweetService
	subscription *SubscriptionService
	playlist     *PlaylistService
	dashboard    *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Like{},
		&model.Tweet{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.WatchHistory{},
	))

	env := &testEnv{
		db:        db,
		media:     &fakeMediaStore{},
		cleanup:   &fakeCleanupQueue{},
		users:     repository.NewUserRepository(db),
		videos:    repository.NewVideoRepository(db),
		comments:  repository.NewCommentRepository(db),
		likes:     repository.NewLikeRepository(db),
		tweets:    repository.NewTweetRepository(db),
		subs:      repository.NewSubscriptionRepository(db),
		playlists: repository.NewPlaylistRepository(db),
		history:   repository.NewHistoryRepository(db),
	}

	env.auth = NewAuthService(env.users, env.media, env.cleanup)
	env.user = NewUserService(env.users, env.subs, env.videos, env.history, env.media, env.cleanup)
	env.video = NewVideoService(env.videos, env.likes, env.comments, env.subs, env.history, env.media, env.cleanup)
	env.comment = NewCommentService(env.comments, env.videos, env.likes)
	env.like = NewLikeService(env.likes, env.videos, env.comments, env.tweets)
	env.tweet = NewTweetService(env.tweets, env.users, env.likes)
	env.subscription = NewSubscriptionService(env.subs, env.users)
	env.playlist = NewPlaylistService(env.playlists, env.videos, env.users)
	env.dashboard = NewDashboardService(env.videos, env.likes, env.subs)

	return env
}

// seedUser 直接入库一个用户，密码统一为 password123
func (e *testEnv) seedUser(t *testing.T, username string) *model.User {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &model.User{
		UserName:  username,
		Email:     username + "@example.com",
		Password:  hash,
		FullName:  "用户 " + username,
		AvatarURL: "http://media.test/image/" + username + "-avatar.png",
	}
	require.NoError(t, e.users.Create(user))
	return user
}

// seedVideo 直接入库一个已发布视频
func (e *testEnv) seedVideo(t *testing.T, owner *model.User, title string) *model.Video {
	t.Helper()

	video := &model.Video{
		OwnerID:      owner.ID,
		VideoURL:     "http://media.test/video/" + title + ".mp4",
		ThumbnailURL: "http://media.test/image/" + title + ".png",
		Title:        title,
		Description:  "描述 " + title,
		Duration:     42,
		IsPublished:  true,
	}
	require.NoError(t, e.videos.Create(video))
	return video
}
