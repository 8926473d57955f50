package dto

import "time"

// PublishVideoRequest 视频发布请求（multipart/form-data，文件另行提取）
type PublishVideoRequest struct {
	Title       string `form:"title" binding:"required,notblank"`
	Description string `form:"description" binding:"required,notblank"`
}

// UpdateVideoRequest 视频资料更新请求（multipart/form-data，新封面必传）
type UpdateVideoRequest struct {
	Title       string `form:"title" binding:"required,notblank"`
	Description string `form:"description" binding:"required,notblank"`
}

// SearchVideosQuery 视频检索参数，除 userId 外全部必填
type SearchVideosQuery struct {
	Page     int
	Limit    int
	Query    string
	SortBy   string
	SortType int // +1 升序 / -1 降序
	OwnerID  *int64
}

// VideoInfo 视频基础视图
type VideoInfo struct {
	ID           int64       `json:"id"`
	VideoURL     string      `json:"videoUrl"`
	ThumbnailURL string      `json:"thumbnailUrl"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Duration     int         `json:"duration"`
	Views        int64       `json:"views"`
	IsPublished  bool        `json:"isPublished"`
	OwnerID      int64       `json:"ownerId"`
	Owner        *OwnerBrief `json:"owner,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// VideoDetailData 视频聚合视图：基础信息 + 互动统计 + 相对调用方的布尔位
type VideoDetailData struct {
	VideoInfo
	TotalLikes       int64 `json:"totalLikesOnVideo"`
	TotalComments    int64 `json:"totalComments"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	LikedByUser      bool  `json:"likedByUser"`
	IsSubscribedTo   bool  `json:"isSubscribedTo"`
}

// VideoListData 视频检索结果
type VideoListData struct {
	Videos     []VideoInfo `json:"videos"`
	Total      int64       `json:"matchedVideosCount"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int64       `json:"totalPages"`
}
