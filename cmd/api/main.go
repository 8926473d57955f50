package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"
	"vidtube/internal/api/router"
	"vidtube/internal/config"
	"vidtube/internal/infra/database"
	"vidtube/internal/infra/kafka"
	redisinfra "vidtube/internal/infra/redis"
	"vidtube/internal/infra/storage"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// @title VidTube API
// @version 1.0
// @description 视频分享社区后端接口
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.App.TempDir, 0o755); err != nil {
		logger.Fatal("创建上传暂存目录失败", zap.Error(err))
	}

	if err := database.Init(); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	if err := redisinfra.Init(); err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}
	defer redisinfra.Close()

	ctx := context.Background()
	if err := storage.Init(ctx); err != nil {
		logger.Fatal("初始化对象存储失败", zap.Error(err))
	}

	if err := kafka.InitProducer(); err != nil {
		logger.Fatal("初始化 Kafka 生产者失败", zap.Error(err))
	}
	defer kafka.GetProducer().Close()

	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	mediaStore := storage.Get()
	cleanupQueue := kafka.GetProducer()

	authService := service.NewAuthService(userRepo, mediaStore, cleanupQueue)
	userService := service.NewUserService(userRepo, subRepo, videoRepo, historyRepo, mediaStore, cleanupQueue)
	videoService := service.NewVideoService(videoRepo, likeRepo, commentRepo, subRepo, historyRepo, mediaStore, cleanupQueue)
	commentService := service.NewCommentService(commentRepo, videoRepo, likeRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo)
	tweetService := service.NewTweetService(tweetRepo, userRepo, likeRepo)
	subService := service.NewSubscriptionService(subRepo, userRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	dashboardService := service.NewDashboardService(videoRepo, likeRepo, subRepo)

	handlers := &router.Handlers{
		Health:       handler.NewHealthHandler(),
		User:         handler.NewUserHandler(authService, userService),
		Video:        handler.NewVideoHandler(videoService),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		Tweet:        handler.NewTweetHandler(tweetService),
		Subscription: handler.NewSubscriptionHandler(subService),
		Playlist:     handler.NewPlaylistHandler(playlistService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}

	fetchUser := middleware.UserFetcher(func(userID int64) (*model.User, error) {
		return userRepo.GetPublicByID(userID)
	})

	engine := router.Setup(handlers, fetchUser, redisinfra.Get())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: engine,
	}

	go func() {
		logger.Info("服务启动", zap.Int("port", cfg.App.Port), zap.String("mode", cfg.App.Mode))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("开始优雅关闭")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("优雅关闭失败", zap.Error(err))
	}
	logger.Info("服务已退出")
}
