package dto

// ChannelStats 仪表盘聚合统计。
// 三路独立统计按键合并：没命中任何行的一路不贡献键，
// 字段为 nil 时序列化省略对应键。命中了行的键总是存在，值可以为零。
type ChannelStats struct {
	TotalVideos       *int64 `json:"totalVideosCount,omitempty"`
	TotalViews        *int64 `json:"totalViewsOnVideos,omitempty"`
	TotalComments     *int64 `json:"totalCommentsOnVideos,omitempty"`
	TotalVideoLikes   *int64 `json:"totalLikesOnVideos,omitempty"`
	TotalCommentLikes *int64 `json:"totalLikesOnVideoComments,omitempty"`
	TotalSubscribers  *int64 `json:"totalSubscribersCount,omitempty"`
}
