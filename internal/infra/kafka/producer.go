package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
)

// TopicMediaCleanup 媒体清理主题在配置里的键名
const TopicMediaCleanup = "media_cleanup"

// CleanupTask 媒体清理任务：待删除的远端对象地址
type CleanupTask struct {
	URLs       []string  `json:"urls"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Producer 清理任务生产者，实现 service.CleanupQueue
type Producer struct {
	writer *kafka.Writer
}

var producer *Producer

// InitProducer 初始化清理任务生产者
func InitProducer() error {
	cfg := config.GetKafka()
	topic, ok := cfg.Topics[TopicMediaCleanup]
	if !ok {
		return fmt.Errorf("kafka topic %q not configured", TopicMediaCleanup)
	}

	producer = &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}

	logger.Info("Kafka 生产者初始化成功")
	return nil
}

// GetProducer 获取生产者实例
func GetProducer() *Producer {
	if producer == nil {
		panic("kafka producer not initialized, please call InitProducer() first")
	}
	return producer
}

// Enqueue 投递清理任务
func (p *Producer) Enqueue(ctx context.Context, urls ...string) error {
	if len(urls) == 0 {
		return nil
	}

	payload, err := json.Marshal(CleanupTask{URLs: urls, EnqueuedAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal cleanup task: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{Value: payload})
}

// Close 关闭生产者
func (p *Producer) Close() error {
	return p.writer.Close()
}
