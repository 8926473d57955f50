package service

import (
	"context"
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 账户资料、频道主页与观看历史
type UserService struct {
	users   *repository.UserRepository
	subs    *repository.SubscriptionRepository
	videos  *repository.VideoRepository
	history *repository.HistoryRepository
	media   MediaStore
	cleanup CleanupQueue
}

func NewUserService(
	users *repository.UserRepository,
	subs *repository.SubscriptionRepository,
	videos *repository.VideoRepository,
	history *repository.HistoryRepository,
	media MediaStore,
	cleanup CleanupQueue,
) *UserService {
	return &UserService{users: users, subs: subs, videos: videos, history: history, media: media, cleanup: cleanup}
}

// ChangePassword 校验旧密码后更新密码哈希
func (s *UserService) ChangePassword(user *model.User, oldPassword, newPassword string) error {
	// 中间件挂的是公开视图，这里重新加载含哈希的完整记录
	full, err := s.users.GetByID(user.ID)
	if err != nil {
		return err
	}
	if !utils.VerifyPassword(oldPassword, full.Password) {
		return ErrPasswordIncorrect
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(user.ID, hash)
}

// UpdateAccount 更新昵称与邮箱
func (s *UserService) UpdateAccount(userID int64, req *dto.UpdateAccountRequest) (*dto.UserInfo, error) {
	user, err := s.users.Update(userID, map[string]interface{}{
		"full_name": req.FullName,
		"email":     req.Email,
	})
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateAvatar 上传新头像并替换，旧头像交给清理队列
func (s *UserService) UpdateAvatar(ctx context.Context, user *model.User, localPath string) (*dto.UserInfo, error) {
	uploaded, err := s.media.Upload(ctx, localPath, MediaKindImage)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(user.ID, map[string]interface{}{"avatar_url": uploaded.URL})
	if err != nil {
		s.discard(ctx, uploaded.URL)
		return nil, err
	}

	if user.AvatarURL != "" {
		s.discard(ctx, user.AvatarURL)
	}
	return toUserInfo(updated), nil
}

// UpdateCoverImage 上传新主页封面并替换，旧封面交给清理队列
func (s *UserService) UpdateCoverImage(ctx context.Context, user *model.User, localPath string) (*dto.UserInfo, error) {
	uploaded, err := s.media.Upload(ctx, localPath, MediaKindImage)
	if err != nil {
		return nil, err
	}

	updated, err := s.users.Update(user.ID, map[string]interface{}{"cover_image_url": uploaded.URL})
	if err != nil {
		s.discard(ctx, uploaded.URL)
		return nil, err
	}

	if user.CoverImageURL != nil && *user.CoverImageURL != "" {
		s.discard(ctx, *user.CoverImageURL)
	}
	return toUserInfo(updated), nil
}

// GetChannelProfile 频道主页聚合视图：公开资料 + 订阅统计 +
// 调用方是否已订阅（未登录恒为 false）
func (s *UserService) GetChannelProfile(username string, viewerID int64) (*dto.ChannelProfileData, error) {
	channel, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscribers, err := s.subs.CountSubscribers(channel.ID)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := s.subs.CountSubscribedTo(channel.ID)
	if err != nil {
		return nil, err
	}
	isSubscribed, err := s.subs.IsSubscribed(viewerID, channel.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ChannelProfileData{
		UserInfo:          *toUserInfo(channel),
		SubscribersCount:  subscribers,
		SubscribedToCount: subscribedTo,
		IsSubscribed:      isSubscribed,
	}, nil
}

// GetWatchHistory 观看历史，按插入顺序（最新的在最后）
func (s *UserService) GetWatchHistory(userID int64) ([]dto.VideoInfo, error) {
	ids, err := s.history.ListVideoIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.VideoInfo{}, nil
	}

	videos, err := s.videos.GetByIDsWithOwner(ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	ordered := make([]dto.VideoInfo, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, toVideoInfo(v))
		}
	}
	return ordered, nil
}

func (s *UserService) discard(ctx context.Context, urls ...string) {
	if err := s.cleanup.Enqueue(ctx, urls...); err != nil {
		logger.Warn("孤儿媒体清理任务投递失败", zap.Strings("urls", urls), zap.Error(err))
	}
}
