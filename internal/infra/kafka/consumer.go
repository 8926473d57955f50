package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Remover 远端对象删除能力，由存储层提供
type Remover interface {
	Remove(ctx context.Context, url string) error
}

// Consumer 媒体清理 worker：消费清理任务并删除远端对象
type Consumer struct {
	reader  *kafka.Reader
	remover Remover
}

// NewConsumer 创建清理任务消费者
func NewConsumer(groupID string, remover Remover) (*Consumer, error) {
	cfg := config.GetKafka()
	topic, ok := cfg.Topics[TopicMediaCleanup]
	if !ok {
		return nil, fmt.Errorf("kafka topic %q not configured", TopicMediaCleanup)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: groupID,
		Topic:   topic,
	})

	return &Consumer{reader: reader, remover: remover}, nil
}

// Run 消费循环，ctx 取消后退出。
// 单个对象删除失败只记日志不重试，漏删的对象可以靠存储端
// 的周期巡检兜底，不值得阻塞整个队列。
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		var task CleanupTask
		if err := json.Unmarshal(msg.Value, &task); err != nil {
			logger.Error("清理任务解析失败，跳过", zap.Error(err))
		} else {
			for _, url := range task.URLs {
				if err := c.remover.Remove(ctx, url); err != nil {
					logger.Error("远端对象删除失败", zap.String("url", url), zap.Error(err))
					continue
				}
				logger.Info("远端对象已删除", zap.String("url", url))
			}
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("位点提交失败", zap.Error(err))
		}
	}
}

// Close 关闭消费者
func (c *Consumer) Close() error {
	return c.reader.Close()
}
