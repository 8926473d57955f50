package service

import "context"

// MediaKind 上传媒体的类别
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindImage MediaKind = "image"
)

// UploadResult 上传成功后的远端地址与探测出的时长（秒，图片为 0）
type UploadResult struct {
	URL      string
	Duration int
}

// MediaStore 媒体存储抽象：上传本地暂存文件，按公开地址删除远端对象
type MediaStore interface {
	Upload(ctx context.Context, localPath string, kind MediaKind) (*UploadResult, error)
	Remove(ctx context.Context, url string) error
}

// CleanupQueue 媒体异步清理队列。
// 业务写入成功后把废弃对象的地址投递进队列，由 worker 慢慢删，
// 失败只记日志，不影响请求本身。
type CleanupQueue interface {
	Enqueue(ctx context.Context, urls ...string) error
}
