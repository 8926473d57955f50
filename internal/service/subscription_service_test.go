package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSubscription(t *testing.T) {
	env := newTestEnv(t)
	channel := env.seedUser(t, "channel")
	fan := env.seedUser(t, "fan")

	data, err := env.subscription.Toggle(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, data.Subscribed)
	require.NotNil(t, data.Subscription)
	assert.Equal(t, channel.ID, data.Subscription.ChannelID)

	subscribed, err := env.subs.IsSubscribed(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.True(t, subscribed)

	// 再次 toggle 回到初始状态
	data, err = env.subscription.Toggle(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, data.Subscribed)

	subscribed, err = env.subs.IsSubscribed(fan.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	_, err = env.subscription.Toggle(fan.ID, 9999)
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestGetChannelSubscribersOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	channel := env.seedUser(t, "channel")
	fan := env.seedUser(t, "fan")

	_, err := env.subscription.Toggle(fan.ID, channel.ID)
	require.NoError(t, err)

	// 非频道所有者不能看
	_, err = env.subscription.GetChannelSubscribers(fan.ID, channel.ID)
	assert.ErrorIs(t, err, ErrNotChannelOwner)

	data, err := env.subscription.GetChannelSubscribers(channel.ID, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.SubscribersCount)
	require.Len(t, data.Subscribers, 1)
	assert.Equal(t, "fan", data.Subscribers[0].Username)
}

func TestGetSubscribedChannelsSelfOnly(t *testing.T) {
	env := newTestEnv(t)
	channel := env.seedUser(t, "channel")
	fan := env.seedUser(t, "fan")

	_, err := env.subscription.Toggle(fan.ID, channel.ID)
	require.NoError(t, err)

	_, err = env.subscription.GetSubscribedChannels(channel.ID, fan.ID)
	assert.ErrorIs(t, err, ErrNotSubscriptionSelf)

	data, err := env.subscription.GetSubscribedChannels(fan.ID, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.ChannelsCount)
	require.Len(t, data.Channels, 1)
	assert.Equal(t, "channel", data.Channels[0].Username)
}
