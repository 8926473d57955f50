package service

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/repository"

	"golang.org/x/sync/errgroup"
)

var ErrNoChannelVideos = errors.New("no channel videos")

// DashboardService 创作者仪表盘
type DashboardService struct {
	videos *repository.VideoRepository
	likes  *repository.LikeRepository
	subs   *repository.SubscriptionRepository
}

func NewDashboardService(videos *repository.VideoRepository, likes *repository.LikeRepository, subs *repository.SubscriptionRepository) *DashboardService {
	return &DashboardService{videos: videos, likes: likes, subs: subs}
}

// GetChannelStats 频道聚合统计，三路独立统计并发执行后按键合并
func (s *DashboardService) GetChannelStats(ctx context.Context, ownerID int64) (*dto.ChannelStats, error) {
	var (
		totalVideos, totalViews, comments int64
		videoLikes, commentLikes          int64
		subscribers                       int64
	)
	g, _ := errgroup.WithContext(ctx)

	// 每路只写自己的变量，无需加锁
	g.Go(func() error {
		var err error
		totalVideos, totalViews, err = s.videos.OwnerVideoStats(ownerID)
		return err
	})

	g.Go(func() error {
		var err error
		if videoLikes, err = s.likes.CountLikesOnOwnedVideos(ownerID); err != nil {
			return err
		}
		if commentLikes, err = s.likes.CountLikesOnOwnedVideoComments(ownerID); err != nil {
			return err
		}
		comments, err = s.videos.CountCommentsOnOwnedVideos(ownerID)
		return err
	})

	g.Go(func() error {
		var err error
		subscribers, err = s.subs.CountSubscribers(ownerID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 视频那一路命中了行，它统计的键才存在；此时播放量等键值可以为零。
	// 评论点赞键跟着"名下视频有没有评论"走，订阅键跟着订阅数走。
	stats := &dto.ChannelStats{}
	if totalVideos > 0 {
		stats.TotalVideos = &totalVideos
		stats.TotalViews = &totalViews
		stats.TotalComments = &comments
		stats.TotalVideoLikes = &videoLikes
	}
	if comments > 0 {
		stats.TotalCommentLikes = &commentLikes
	}
	if subscribers > 0 {
		stats.TotalSubscribers = &subscribers
	}
	return stats, nil
}

// GetChannelVideos 当前用户的全部视频（含未发布）；一个都没有按未找到处理
func (s *DashboardService) GetChannelVideos(ownerID int64) ([]dto.VideoInfo, error) {
	videos, err := s.videos.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, ErrNoChannelVideos
	}
	return toVideoInfos(videos), nil
}
