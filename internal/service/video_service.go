package service

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound    = errors.New("video not found")
	ErrNotVideoOwner    = errors.New("not the video owner")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrNoVideosMatched  = errors.New("no videos matched")
)

// videoSortColumns 检索排序字段白名单，键是对外参数名
var videoSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

// VideoService 视频发布、检索、聚合视图与生命周期
type VideoService struct {
	videos   *repository.VideoRepository
	likes    *repository.LikeRepository
	comments *repository.CommentRepository
	subs     *repository.SubscriptionRepository
	history  *repository.HistoryRepository
	media    MediaStore
	cleanup  CleanupQueue
}

func NewVideoService(
	videos *repository.VideoRepository,
	likes *repository.LikeRepository,
	comments *repository.CommentRepository,
	subs *repository.SubscriptionRepository,
	history *repository.HistoryRepository,
	media MediaStore,
	cleanup CleanupQueue,
) *VideoService {
	return &VideoService{
		videos:   videos,
		likes:    likes,
		comments: comments,
		subs:     subs,
		history:  history,
		media:    media,
		cleanup:  cleanup,
	}
}

// Search 已发布视频检索。排序字段必须在白名单内；
// 命中为空（包括翻过了最后一页）按未找到处理。
func (s *VideoService) Search(q *dto.SearchVideosQuery) (*dto.VideoListData, error) {
	sortColumn, ok := videoSortColumns[q.SortBy]
	if !ok {
		return nil, ErrInvalidSortField
	}

	skip := (q.Page - 1) * q.Limit
	videos, total, err := s.videos.Search(skip, q.Limit, q.OwnerID, q.Query, sortColumn, q.SortType > 0)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, ErrNoVideosMatched
	}

	totalPages := (total + int64(q.Limit) - 1) / int64(q.Limit)
	return &dto.VideoListData{
		Videos:     toVideoInfos(videos),
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}, nil
}

// Publish 上传视频与封面并创建记录，时长在上传时探测
func (s *VideoService) Publish(ctx context.Context, ownerID int64, req *dto.PublishVideoRequest, videoPath, thumbnailPath string) (*dto.VideoInfo, error) {
	uploadedVideo, err := s.media.Upload(ctx, videoPath, MediaKindVideo)
	if err != nil {
		return nil, err
	}

	uploadedThumb, err := s.media.Upload(ctx, thumbnailPath, MediaKindImage)
	if err != nil {
		s.discard(ctx, uploadedVideo.URL)
		return nil, err
	}

	video := &model.Video{
		OwnerID:      ownerID,
		VideoURL:     uploadedVideo.URL,
		ThumbnailURL: uploadedThumb.URL,
		Title:        req.Title,
		Description:  req.Description,
		Duration:     uploadedVideo.Duration,
		IsPublished:  true,
	}
	if err := s.videos.Create(video); err != nil {
		s.discard(ctx, uploadedVideo.URL, uploadedThumb.URL)
		return nil, err
	}

	logger.Info("视频发布成功", zap.Int64("video_id", video.ID), zap.Int64("owner_id", ownerID))
	info := toVideoInfo(video)
	return &info, nil
}

// GetDetail 视频聚合视图：基础信息 + 互动统计 + 相对调用方的布尔位。
// 每次成功获取都会把播放量 +1（至少一次语义），登录用户同时追加观看历史。
func (s *VideoService) GetDetail(videoID int64, viewer *model.User) (*dto.VideoDetailData, error) {
	viewerID := int64(0)
	if viewer != nil {
		viewerID = viewer.ID
	}

	video, err := s.videos.GetPublishedWithOwner(videoID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// 未发布的视频只有作者本人可见
		hidden, err2 := s.videos.GetByID(videoID)
		if err2 != nil || viewer == nil || hidden.OwnerID != viewer.ID {
			return nil, ErrVideoNotFound
		}
		hidden.Owner = *viewer
		video = hidden
	}

	totalLikes, err := s.likes.CountByTarget(model.LikeTargetVideo, video.ID)
	if err != nil {
		return nil, err
	}
	totalComments, err := s.comments.CountByVideo(video.ID)
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := s.subs.CountSubscribers(video.OwnerID)
	if err != nil {
		return nil, err
	}
	likedByUser, err := s.likes.LikedByUser(viewerID, model.LikeTargetVideo, video.ID)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := s.subs.IsSubscribed(viewerID, video.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.videos.IncrementViews(video.ID); err != nil {
		return nil, err
	}
	video.Views++

	if viewerID != 0 {
		if err := s.history.Append(viewerID, video.ID); err != nil {
			return nil, err
		}
	}

	return &dto.VideoDetailData{
		VideoInfo:        toVideoInfo(video),
		TotalLikes:       totalLikes,
		TotalComments:    totalComments,
		TotalSubscribers: totalSubscribers,
		LikedByUser:      likedByUser,
		IsSubscribedTo:   isSubscribed,
	}, nil
}

// UpdateDetails 替换标题、描述与封面。新封面先上传，
// 存储写入在一个事务内完成，成功后旧封面交给清理队列；
// 写入失败则清理刚上传的新封面，不留孤儿对象。
func (s *VideoService) UpdateDetails(ctx context.Context, user *model.User, videoID int64, req *dto.UpdateVideoRequest, thumbnailPath string) (*dto.VideoInfo, error) {
	video, err := s.getOwned(user, videoID)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.media.Upload(ctx, thumbnailPath, MediaKindImage)
	if err != nil {
		return nil, err
	}

	updated, err := s.videos.ReplaceDetails(videoID, req.Title, req.Description, uploaded.URL)
	if err != nil {
		s.discard(ctx, uploaded.URL)
		return nil, err
	}

	s.discard(ctx, video.ThumbnailURL)
	info := toVideoInfo(updated)
	return &info, nil
}

// Delete 级联删除视频及其评论、点赞、播放列表条目和观看历史，
// 远端媒体对象交给清理队列
func (s *VideoService) Delete(ctx context.Context, user *model.User, videoID int64) error {
	video, err := s.getOwned(user, videoID)
	if err != nil {
		return err
	}

	if err := s.videos.CascadeDelete(videoID); err != nil {
		return err
	}

	s.discard(ctx, video.VideoURL, video.ThumbnailURL)
	logger.Info("视频已删除", zap.Int64("video_id", videoID), zap.Int64("owner_id", user.ID))
	return nil
}

// TogglePublish 翻转发布状态
func (s *VideoService) TogglePublish(user *model.User, videoID int64) (*dto.VideoInfo, error) {
	video, err := s.getOwned(user, videoID)
	if err != nil {
		return nil, err
	}

	updated, err := s.videos.Update(videoID, map[string]interface{}{"is_published": !video.IsPublished})
	if err != nil {
		return nil, err
	}

	info := toVideoInfo(updated)
	return &info, nil
}

// getOwned 加载视频并校验所有权
func (s *VideoService) getOwned(user *model.User, videoID int64) (*model.Video, error) {
	video, err := s.videos.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.OwnerID != user.ID {
		return nil, ErrNotVideoOwner
	}
	return video, nil
}

func (s *VideoService) discard(ctx context.Context, urls ...string) {
	if err := s.cleanup.Enqueue(ctx, urls...); err != nil {
		logger.Warn("孤儿媒体清理任务投递失败", zap.Strings("urls", urls), zap.Error(err))
	}
}
