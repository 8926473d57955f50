package model

import "time"

// User 用户模型
type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName      string    `gorm:"size:255;not null;uniqueIndex;comment:用户名（小写）" json:"username"`
	Email         string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱" json:"email"`
	Password      string    `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码
	FullName      string    `gorm:"size:255;not null;comment:昵称" json:"full_name"`
	AvatarURL     string    `gorm:"size:500;not null;comment:头像地址" json:"avatar_url"`
	CoverImageURL *string   `gorm:"size:500;comment:主页封面地址" json:"cover_image_url"`
	RefreshToken  *string   `gorm:"size:1000;comment:当前有效的刷新令牌" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Videos    []Video    `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
	Tweets    []Tweet    `gorm:"foreignKey:OwnerID" json:"tweets,omitempty"`
	Comments  []Comment  `gorm:"foreignKey:OwnerID" json:"comments,omitempty"`
	Playlists []Playlist `gorm:"foreignKey:OwnerID" json:"playlists,omitempty"`
}

func (User) TableName() string {
	return "users"
}
