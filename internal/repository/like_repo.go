package repository

import (
	"vidtube/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Create 创建点赞记录
func (r *LikeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

// DeleteByUserAndTarget 删除某用户对某目标的点赞，返回是否有记录被删除。
// toggle 的前半步：先尝试删除，删到了说明本次是取消点赞。
// 两个并发 toggle 可能都删空然后各建一条，这个竞态是沿用的既有语义，
// 表上有意不加唯一约束。
func (r *LikeRepository) DeleteByUserAndTarget(userID int64, targetType model.LikeTargetType, targetID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByTarget 删除某目标上的全部点赞（级联清理用）
func (r *LikeRepository) DeleteByTarget(targetType model.LikeTargetType, targetID int64) error {
	return r.db.Where("target_type = ? AND target_id = ?", targetType, targetID).
		Delete(&model.Like{}).Error
}

// CountByTarget 统计某目标的点赞数，读取时联查而不是维护计数列
func (r *LikeRepository) CountByTarget(targetType model.LikeTargetType, targetID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// LikedByUser 某用户是否点赞过某目标；userID 为 0（未登录）时恒为 false
func (r *LikeRepository) LikedByUser(userID int64, targetType model.LikeTargetType, targetID int64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Count(&count).Error
	return count > 0, err
}

// BatchLikedByUser 批量查询点赞状态
func (r *LikeRepository) BatchLikedByUser(userID int64, targetType model.LikeTargetType, targetIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	if userID == 0 || len(targetIDs) == 0 {
		return result, nil
	}

	var likedIDs []int64
	err := r.db.Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id IN ?", userID, targetType, targetIDs).
		Pluck("target_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	for _, id := range likedIDs {
		result[id] = true
	}
	return result, nil
}

// ListVideoLikes 某用户对视频的点赞记录，按点赞时间倒序
func (r *LikeRepository) ListVideoLikes(userID int64) ([]model.Like, error) {
	var likes []model.Like
	err := r.db.Where("user_id = ? AND target_type = ?", userID, model.LikeTargetVideo).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

// CountLikesOnOwnedVideos 某作者全部视频收到的点赞总数
func (r *LikeRepository) CountLikesOnOwnedVideos(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id").
		Where("likes.target_type = ? AND videos.owner_id = ?", model.LikeTargetVideo, ownerID).
		Count(&count).Error
	return count, err
}

// CountLikesOnOwnedVideoComments 某作者视频下全部评论收到的点赞总数
func (r *LikeRepository) CountLikesOnOwnedVideoComments(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Joins("JOIN comments ON comments.id = likes.target_id").
		Joins("JOIN videos ON videos.id = comments.video_id").
		Where("likes.target_type = ? AND videos.owner_id = ?", model.LikeTargetComment, ownerID).
		Count(&count).Error
	return count, err
}
