package dto

import "time"

// LikeInfo 点赞记录视图
type LikeInfo struct {
	ID         int64     `json:"id"`
	TargetType string    `json:"targetType"`
	TargetID   int64     `json:"targetId"`
	LikedBy    int64     `json:"likedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToggleLikeData toggle 结果：liked 为 true 时带上新建的点赞记录
type ToggleLikeData struct {
	Liked bool      `json:"liked"`
	Like  *LikeInfo `json:"like,omitempty"`
}

// LikedVideoInfo 点赞过的视频条目
type LikedVideoInfo struct {
	LikeID  int64     `json:"likeId"`
	LikedAt time.Time `json:"likedAt"`
	Video   VideoInfo `json:"video"`
}
