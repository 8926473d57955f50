package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrTweetNotFound = errors.New("tweet not found")
	ErrNotTweetOwner = errors.New("not the tweet owner")
	ErrNoTweetsFound = errors.New("no tweets found")
)

// TweetService 推文发布与作者推文列表
type TweetService struct {
	tweets *repository.TweetRepository
	users  *repository.UserRepository
	likes  *repository.LikeRepository
}

func NewTweetService(tweets *repository.TweetRepository, users *repository.UserRepository, likes *repository.LikeRepository) *TweetService {
	return &TweetService{tweets: tweets, users: users, likes: likes}
}

// Create 发布推文
func (s *TweetService) Create(user *model.User, content string) (*dto.TweetInfo, error) {
	tweet := &model.Tweet{Content: content, OwnerID: user.ID}
	if err := s.tweets.Create(tweet); err != nil {
		return nil, err
	}
	info := s.toTweetInfo(tweet, 0)
	return &info, nil
}

// GetUserTweets 某用户的推文聚合视图，按创建顺序；
// 一条都没有按未找到处理
func (s *TweetService) GetUserTweets(ownerID, viewerID int64) (*dto.UserTweetsData, error) {
	owner, err := s.users.GetPublicByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	tweets, err := s.tweets.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return nil, ErrNoTweetsFound
	}

	infos := make([]dto.TweetInfo, 0, len(tweets))
	for i := range tweets {
		totalLikes, err := s.likes.CountByTarget(model.LikeTargetTweet, tweets[i].ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, s.toTweetInfo(&tweets[i], totalLikes))
	}

	return &dto.UserTweetsData{
		Tweets: infos,
		TweetedBy: dto.TweetAuthor{
			OwnerBrief:   *toOwnerBrief(owner),
			IsTweetOwner: viewerID != 0 && viewerID == ownerID,
		},
	}, nil
}

// Update 更新推文内容，仅作者可操作
func (s *TweetService) Update(user *model.User, tweetID int64, content string) (*dto.TweetInfo, error) {
	if err := s.checkOwner(user, tweetID); err != nil {
		return nil, err
	}

	updated, err := s.tweets.UpdateContent(tweetID, content)
	if err != nil {
		return nil, err
	}

	totalLikes, err := s.likes.CountByTarget(model.LikeTargetTweet, tweetID)
	if err != nil {
		return nil, err
	}
	info := s.toTweetInfo(updated, totalLikes)
	return &info, nil
}

// Delete 删除推文及其点赞，仅作者可操作
func (s *TweetService) Delete(user *model.User, tweetID int64) error {
	if err := s.checkOwner(user, tweetID); err != nil {
		return err
	}
	return s.tweets.CascadeDelete(tweetID)
}

func (s *TweetService) checkOwner(user *model.User, tweetID int64) error {
	tweet, err := s.tweets.GetByID(tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTweetNotFound
		}
		return err
	}
	if tweet.OwnerID != user.ID {
		return ErrNotTweetOwner
	}
	return nil
}

func (s *TweetService) toTweetInfo(t *model.Tweet, totalLikes int64) dto.TweetInfo {
	return dto.TweetInfo{
		ID:         t.ID,
		Content:    t.Content,
		OwnerID:    t.OwnerID,
		TotalLikes: totalLikes,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
