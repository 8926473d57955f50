package model

import "time"

// WatchHistory 观看历史，按插入顺序保存，最新的在最后；同一视频只记一次
type WatchHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:记录ID" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_watch_histories_user_id;comment:用户ID" json:"user_id"`
	VideoID   int64     `gorm:"not null;comment:视频ID" json:"video_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:观看时间" json:"created_at"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
