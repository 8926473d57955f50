package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// CommentUpdateRequest 更新评论请求
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// CommentInfo 评论聚合视图
type CommentInfo struct {
	ID          int64       `json:"id"`
	Content     string      `json:"content"`
	VideoID     int64       `json:"videoId"`
	Owner       *OwnerBrief `json:"owner,omitempty"`
	TotalLikes  int64       `json:"totalLikesOnComment"`
	LikedByUser bool        `json:"likedByUser"`
	IsOwner     bool        `json:"isOwner"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CommentListData 评论分页结果
type CommentListData struct {
	Comments   []CommentInfo `json:"comments"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int64         `json:"totalPages"`
}
