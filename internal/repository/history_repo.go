package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append 幂等追加观看记录：已看过的视频不会重复入表，顺序由自增主键保持
func (r *HistoryRepository) Append(userID, videoID int64) error {
	var count int64
	err := r.db.Model(&model.WatchHistory{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&model.WatchHistory{UserID: userID, VideoID: videoID}).Error
}

// ListVideoIDs 某用户的观看历史视频 ID，按插入顺序（最新的在最后）
func (r *HistoryRepository) ListVideoIDs(userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.WatchHistory{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("video_id", &ids).Error
	return ids, err
}
