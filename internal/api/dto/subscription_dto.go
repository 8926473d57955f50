package dto

import "time"

// SubscriptionInfo 订阅关系视图
type SubscriptionInfo struct {
	ID           int64     `json:"id"`
	SubscriberID int64     `json:"subscriberId"`
	ChannelID    int64     `json:"channelId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToggleSubscriptionData toggle 结果：subscribed 为 true 时带上新建的订阅关系
type ToggleSubscriptionData struct {
	Subscribed   bool              `json:"subscribed"`
	Subscription *SubscriptionInfo `json:"subscription,omitempty"`
}

// SubscribersData 频道订阅者列表
type SubscribersData struct {
	Subscribers      []OwnerBrief `json:"subscribers"`
	SubscribersCount int64        `json:"subscribersCount"`
}

// SubscribedChannelsData 用户订阅的频道列表
type SubscribedChannelsData struct {
	Channels      []OwnerBrief `json:"channelsSubscribedTo"`
	ChannelsCount int64        `json:"channelsSubscribedToCount"`
}
