package service

import (
	"context"
	"errors"
	"strings"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"
	"vidtube/pkg/logger"
	"vidtube/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUserExists          = errors.New("username or email already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordIncorrect   = errors.New("password incorrect")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthService 注册登录与会话生命周期
type AuthService struct {
	users   *repository.UserRepository
	media   MediaStore
	cleanup CleanupQueue
}

func NewAuthService(users *repository.UserRepository, media MediaStore, cleanup CleanupQueue) *AuthService {
	return &AuthService{users: users, media: media, cleanup: cleanup}
}

// Register 注册新用户。头像必传，主页封面可选；
// 用户名统一小写存储，用户名或邮箱任一已被占用即拒绝。
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, avatarPath, coverPath string) (*dto.UserInfo, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	exists, err := s.users.ExistsByUsernameOrEmail(username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	avatar, err := s.media.Upload(ctx, avatarPath, MediaKindImage)
	if err != nil {
		return nil, err
	}

	var coverURL *string
	if coverPath != "" {
		cover, err := s.media.Upload(ctx, coverPath, MediaKindImage)
		if err != nil {
			s.discard(ctx, avatar.URL)
			return nil, err
		}
		coverURL = &cover.URL
	}

	user := &model.User{
		UserName:      username,
		Email:         req.Email,
		Password:      hash,
		FullName:      req.FullName,
		AvatarURL:     avatar.URL,
		CoverImageURL: coverURL,
	}
	if err := s.users.Create(user); err != nil {
		urls := []string{avatar.URL}
		if coverURL != nil {
			urls = append(urls, *coverURL)
		}
		s.discard(ctx, urls...)
		return nil, err
	}

	logger.Info("用户注册成功", zap.Int64("user_id", user.ID), zap.String("username", username))
	return toUserInfo(user), nil
}

// Login 用户名或邮箱登录，签发令牌对并持久化刷新令牌（同一用户只保留最新一个）
func (s *AuthService) Login(identifier, password string) (*dto.TokenData, error) {
	user, err := s.users.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.VerifyPassword(password, user.Password) {
		return nil, ErrPasswordIncorrect
	}

	pair, err := utils.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveRefreshToken(user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	logger.Info("用户登录成功", zap.Int64("user_id", user.ID))
	return &dto.TokenData{
		User:         toUserInfo(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Refresh 轮换令牌：校验刷新令牌与持久化副本一致后签发全新令牌对，
// 旧刷新令牌随之作废。
func (s *AuthService) Refresh(refreshToken string) (*dto.TokenData, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	pair, err := utils.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.users.SaveRefreshToken(user.ID, pair.RefreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenData{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout 清除持久化的刷新令牌，使当前会话不可再轮换
func (s *AuthService) Logout(userID int64) error {
	return s.users.ClearRefreshToken(userID)
}

// discard 把写库失败后留下的孤儿对象投递给清理队列
func (s *AuthService) discard(ctx context.Context, urls ...string) {
	if err := s.cleanup.Enqueue(ctx, urls...); err != nil {
		logger.Warn("孤儿媒体清理任务投递失败", zap.Strings("urls", urls), zap.Error(err))
	}
}
