package dto

import "time"

// TweetCreateRequest 发布推文请求
type TweetCreateRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// TweetUpdateRequest 更新推文请求
type TweetUpdateRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// TweetInfo 推文视图（点赞数读取时联查统计）
type TweetInfo struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	OwnerID    int64     `json:"ownerId"`
	TotalLikes int64     `json:"totalTweetLikes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TweetAuthor 推文作者信息，附带"调用方是否作者本人"标记
type TweetAuthor struct {
	OwnerBrief
	IsTweetOwner bool `json:"isTweetOwner"`
}

// UserTweetsData 某用户的推文聚合视图
type UserTweetsData struct {
	Tweets    []TweetInfo `json:"tweets"`
	TweetedBy TweetAuthor `json:"tweetedBy"`
}
