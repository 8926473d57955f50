package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var ErrNoLikedVideos = errors.New("no liked videos")

// LikeService 点赞 toggle 与点赞列表。
// toggle 实现为先删后建：删到了记录说明本次是取消点赞，
// 否则创建一条新记录。
type LikeService struct {
	likes    *repository.LikeRepository
	videos   *repository.VideoRepository
	comments *repository.CommentRepository
	tweets   *repository.TweetRepository
}

func NewLikeService(
	likes *repository.LikeRepository,
	videos *repository.VideoRepository,
	comments *repository.CommentRepository,
	tweets *repository.TweetRepository,
) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets}
}

// ToggleVideoLike 对视频点赞 / 取消点赞
func (s *LikeService) ToggleVideoLike(userID, videoID int64) (*dto.ToggleLikeData, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.toggle(model.NewVideoLike(userID, videoID))
}

// ToggleCommentLike 对评论点赞 / 取消点赞
func (s *LikeService) ToggleCommentLike(userID, commentID int64) (*dto.ToggleLikeData, error) {
	if _, err := s.comments.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return s.toggle(model.NewCommentLike(userID, commentID))
}

// ToggleTweetLike 对推文点赞 / 取消点赞
func (s *LikeService) ToggleTweetLike(userID, tweetID int64) (*dto.ToggleLikeData, error) {
	if _, err := s.tweets.GetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	return s.toggle(model.NewTweetLike(userID, tweetID))
}

// GetLikedVideos 当前用户点赞过的视频，按点赞时间倒序；一个都没有按未找到处理
func (s *LikeService) GetLikedVideos(userID int64) ([]dto.LikedVideoInfo, error) {
	likes, err := s.likes.ListVideoLikes(userID)
	if err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return nil, ErrNoLikedVideos
	}

	ids := make([]int64, 0, len(likes))
	for i := range likes {
		ids = append(ids, likes[i].TargetID)
	}
	videos, err := s.videos.GetByIDsWithOwner(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	result := make([]dto.LikedVideoInfo, 0, len(likes))
	for i := range likes {
		video, ok := byID[likes[i].TargetID]
		if !ok {
			continue
		}
		result = append(result, dto.LikedVideoInfo{
			LikeID:  likes[i].ID,
			LikedAt: likes[i].CreatedAt,
			Video:   toVideoInfo(video),
		})
	}
	return result, nil
}

// toggle 接收 NewXXXLike 构造出的点赞记录，保证目标变体合法
func (s *LikeService) toggle(like *model.Like) (*dto.ToggleLikeData, error) {
	deleted, err := s.likes.DeleteByUserAndTarget(like.UserID, like.TargetType, like.TargetID)
	if err != nil {
		return nil, err
	}
	if deleted {
		return &dto.ToggleLikeData{Liked: false}, nil
	}

	if err := s.likes.Create(like); err != nil {
		return nil, err
	}
	return &dto.ToggleLikeData{Liked: true, Like: toLikeInfo(like)}, nil
}
