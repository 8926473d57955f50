package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"vidtube/internal/config"
	"vidtube/internal/media"
	"vidtube/internal/service"
	"vidtube/pkg/logger"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store 基于 MinIO 的媒体存储，实现 service.MediaStore
type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

var store *Store

// Init 初始化 MinIO 连接，确保桶存在且允许匿名读取
func Init(ctx context.Context) error {
	cfg := config.GetMinIO()

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		policy := fmt.Sprintf(`{
			"Version": "2012-10-17",
			"Statement": [{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}]
		}`, cfg.Bucket)
		if err := client.SetBucketPolicy(ctx, cfg.Bucket, policy); err != nil {
			return fmt.Errorf("failed to set bucket policy: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	store = &Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
	}

	logger.Info("MinIO 连接成功")
	return nil
}

// Get 获取存储实例
func Get() *Store {
	if store == nil {
		panic("storage not initialized, please call Init() first")
	}
	return store
}

// Upload 上传本地暂存文件，返回公开地址；视频同时探测时长
func (s *Store) Upload(ctx context.Context, localPath string, kind service.MediaKind) (*service.UploadResult, error) {
	ext := filepath.Ext(localPath)
	objectKey := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	duration := 0
	if kind == service.MediaKindVideo {
		d, err := media.ProbeDuration(ctx, localPath)
		if err != nil {
			return nil, err
		}
		duration = d
	}

	_, err := s.client.FPutObject(ctx, s.bucket, objectKey, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &service.UploadResult{
		URL:      fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectKey),
		Duration: duration,
	}, nil
}

// Remove 按公开地址删除远端对象，非本存储的地址直接忽略
func (s *Store) Remove(ctx context.Context, url string) error {
	prefix := fmt.Sprintf("%s/%s/", s.baseURL, s.bucket)
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	objectKey := strings.TrimPrefix(url, prefix)
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}
