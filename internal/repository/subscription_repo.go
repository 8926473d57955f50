package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 创建订阅关系
func (r *SubscriptionRepository) Create(sub *model.Subscription) error {
	return r.db.Create(sub).Error
}

// DeleteBySubscriberAndChannel 删除订阅关系，返回是否有记录被删除（toggle 前半步）
func (r *SubscriptionRepository) DeleteBySubscriberAndChannel(subscriberID, channelID int64) (bool, error) {
	result := r.db.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsSubscribed 某用户是否订阅了某频道；subscriberID 为 0 时恒为 false
func (r *SubscriptionRepository) IsSubscribed(subscriberID, channelID int64) (bool, error) {
	if subscriberID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountSubscribers 某频道的订阅者数量
func (r *SubscriptionRepository) CountSubscribers(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountSubscribedTo 某用户订阅的频道数量
func (r *SubscriptionRepository) CountSubscribedTo(subscriberID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

// ListSubscribers 某频道的订阅者列表（含订阅者公开信息）
func (r *SubscriptionRepository) ListSubscribers(channelID int64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Preload("Subscriber", publicUserPreload).
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

// ListSubscribedChannels 某用户订阅的频道列表（含频道公开信息）
func (r *SubscriptionRepository) ListSubscribedChannels(subscriberID int64) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.Preload("Channel", publicUserPreload).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}
