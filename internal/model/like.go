package model

import "time"

// LikeTargetType 点赞目标类型
type LikeTargetType string

const (
	LikeTargetVideo   LikeTargetType = "video"
	LikeTargetComment LikeTargetType = "comment"
	LikeTargetTweet   LikeTargetType = "tweet"
)

// Like 点赞模型
//
// 目标是 (target_type, target_id) 标签化变体，恰好指向视频 / 评论 / 推文之一，
// 由 NewXXXLike 构造函数保证。(user, target) 的唯一性靠 toggle 语义维护，
// 表上没有唯一约束。
type Like struct {
	ID         int64          `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	TargetType LikeTargetType `gorm:"size:20;not null;index:idx_likes_target,priority:1;comment:点赞目标类型" json:"target_type"`
	TargetID   int64          `gorm:"not null;index:idx_likes_target,priority:2;comment:点赞目标ID" json:"target_id"`
	UserID     int64          `gorm:"not null;index:idx_likes_user_id;comment:点赞用户ID" json:"liked_by"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}

// NewVideoLike 创建指向视频的点赞
func NewVideoLike(userID, videoID int64) *Like {
	return &Like{TargetType: LikeTargetVideo, TargetID: videoID, UserID: userID}
}

// NewCommentLike 创建指向评论的点赞
func NewCommentLike(userID, commentID int64) *Like {
	return &Like{TargetType: LikeTargetComment, TargetID: commentID, UserID: userID}
}

// NewTweetLike 创建指向推文的点赞
func NewTweetLike(userID, tweetID int64) *Like {
	return &Like{TargetType: LikeTargetTweet, TargetID: tweetID, UserID: userID}
}
