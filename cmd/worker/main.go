package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidtube/internal/config"
	"vidtube/internal/infra/kafka"
	"vidtube/internal/infra/storage"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// 媒体清理 worker：消费清理队列，删除业务侧废弃的远端媒体对象
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := storage.Init(ctx); err != nil {
		logger.Fatal("初始化对象存储失败", zap.Error(err))
	}

	consumer, err := kafka.NewConsumer("media-cleanup-worker", storage.Get())
	if err != nil {
		logger.Fatal("初始化 Kafka 消费者失败", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("媒体清理 worker 启动")
	if err := consumer.Run(ctx); err != nil {
		logger.Fatal("消费循环异常退出", zap.Error(err))
	}
	logger.Info("媒体清理 worker 已退出")
}
