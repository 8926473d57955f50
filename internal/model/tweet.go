package model

import "time"

// Tweet 推文模型
type Tweet struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:推文ID" json:"id"`
	Content   string    `gorm:"type:text;not null;comment:推文内容" json:"content"`
	OwnerID   int64     `gorm:"not null;index:idx_tweets_owner_id;comment:作者ID" json:"owner_id"`
	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
}

func (Tweet) TableName() string {
	return "tweets"
}
