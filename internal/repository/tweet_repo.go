package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

// GetByID 根据 ID 获取推文
func (r *TweetRepository) GetByID(id int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := r.db.Where("id = ?", id).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// Create 创建推文
func (r *TweetRepository) Create(tweet *model.Tweet) error {
	return r.db.Create(tweet).Error
}

// UpdateContent 更新推文内容
func (r *TweetRepository) UpdateContent(id int64, content string) (*model.Tweet, error) {
	result := r.db.Model(&model.Tweet{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// CascadeDelete 删除推文及其点赞，在一个事务内完成
func (r *TweetRepository) CascadeDelete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_type = ? AND target_id = ?", model.LikeTargetTweet, id).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Tweet{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListByOwner 某用户的全部推文，按创建顺序
func (r *TweetRepository) ListByOwner(ownerID int64) ([]model.Tweet, error) {
	var tweets []model.Tweet
	err := r.db.Where("owner_id = ?", ownerID).Order("id ASC").Find(&tweets).Error
	return tweets, err
}
