package model

import "time"

// Playlist 播放列表模型
type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:播放列表ID" json:"id"`
	Name        string    `gorm:"size:200;not null;comment:名称" json:"name"`
	Description string    `gorm:"type:text;not null;comment:描述" json:"description"`
	OwnerID     int64     `gorm:"not null;index:idx_playlists_owner_id;comment:所有者ID" json:"owner_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表条目，position 保持加入顺序，同一视频不允许重复加入
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:条目ID" json:"id"`
	PlaylistID int64     `gorm:"not null;index:idx_playlist_videos_playlist_id;comment:播放列表ID" json:"playlist_id"`
	VideoID    int64     `gorm:"not null;comment:视频ID" json:"video_id"`
	Position   int       `gorm:"not null;comment:加入顺序" json:"position"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:加入时间" json:"created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
