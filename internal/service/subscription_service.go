package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrChannelNotFound     = errors.New("channel not found")
	ErrNotChannelOwner     = errors.New("not the channel owner")
	ErrNotSubscriptionSelf = errors.New("can only view own subscriptions")
)

// SubscriptionService 订阅 toggle 与订阅列表
type SubscriptionService struct {
	subs  *repository.SubscriptionRepository
	users *repository.UserRepository
}

func NewSubscriptionService(subs *repository.SubscriptionRepository, users *repository.UserRepository) *SubscriptionService {
	return &SubscriptionService{subs: subs, users: users}
}

// Toggle 订阅 / 取消订阅频道，先删后建
func (s *SubscriptionService) Toggle(subscriberID, channelID int64) (*dto.ToggleSubscriptionData, error) {
	if _, err := s.users.GetPublicByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	deleted, err := s.subs.DeleteBySubscriberAndChannel(subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if deleted {
		return &dto.ToggleSubscriptionData{Subscribed: false}, nil
	}

	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := s.subs.Create(sub); err != nil {
		return nil, err
	}
	return &dto.ToggleSubscriptionData{Subscribed: true, Subscription: toSubscriptionInfo(sub)}, nil
}

// GetChannelSubscribers 频道订阅者列表，只有频道所有者本人可以查看
func (s *SubscriptionService) GetChannelSubscribers(requesterID, channelID int64) (*dto.SubscribersData, error) {
	if _, err := s.users.GetPublicByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	if requesterID != channelID {
		return nil, ErrNotChannelOwner
	}

	subs, err := s.subs.ListSubscribers(channelID)
	if err != nil {
		return nil, err
	}

	subscribers := make([]dto.OwnerBrief, 0, len(subs))
	for i := range subs {
		subscribers = append(subscribers, *toOwnerBrief(&subs[i].Subscriber))
	}
	return &dto.SubscribersData{
		Subscribers:      subscribers,
		SubscribersCount: int64(len(subscribers)),
	}, nil
}

// GetSubscribedChannels 订阅的频道列表，只能查看自己的
func (s *SubscriptionService) GetSubscribedChannels(requesterID, subscriberID int64) (*dto.SubscribedChannelsData, error) {
	if requesterID != subscriberID {
		return nil, ErrNotSubscriptionSelf
	}

	subs, err := s.subs.ListSubscribedChannels(subscriberID)
	if err != nil {
		return nil, err
	}

	channels := make([]dto.OwnerBrief, 0, len(subs))
	for i := range subs {
		channels = append(channels, *toOwnerBrief(&subs[i].Channel))
	}
	return &dto.SubscribedChannelsData{
		Channels:      channels,
		ChannelsCount: int64(len(channels)),
	}, nil
}
