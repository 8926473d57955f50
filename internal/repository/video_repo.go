package repository

import (
	"strings"

	"vidtube/internal/model"

	"gorm.io/gorm"
)

// publicUserPreload 关联用户只投影公开字段
func publicUserPreload(db *gorm.DB) *gorm.DB {
	return db.Select(publicUserColumns)
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	if err := r.db.Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetPublishedWithOwner 获取已发布视频（含作者公开信息）
func (r *VideoRepository) GetPublishedWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner", publicUserPreload).
		Where("id = ? AND is_published = ?", id, true).
		First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDsWithOwner 批量获取视频（含作者公开信息）
func (r *VideoRepository) GetByIDsWithOwner(ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.Preload("Owner", publicUserPreload).
		Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Update 更新视频字段
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// ReplaceDetails 在单个事务内替换标题 / 描述 / 封面地址。
// 事务边界只包住存储写入，远端旧对象的删除由调用方在提交成功后另行处理。
func (r *VideoRepository) ReplaceDetails(id int64, title, description, thumbnailURL string) (*model.Video, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Video{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":         title,
			"description":   description,
			"thumbnail_url": thumbnailURL,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// CascadeDelete 级联删除视频：先删评论上的点赞，再删评论、视频上的点赞、
// 播放列表条目和观看历史，最后删除视频本体，整体在一个事务内完成。
func (r *VideoRepository) CascadeDelete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []int64
		if err := tx.Model(&model.Comment{}).Where("video_id = ?", id).
			Pluck("id", &commentIDs).Error; err != nil {
			return err
		}

		if len(commentIDs) > 0 {
			if err := tx.Where("target_type = ? AND target_id IN ?", model.LikeTargetComment, commentIDs).
				Delete(&model.Like{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_type = ? AND target_id = ?", model.LikeTargetVideo, id).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", id).Delete(&model.WatchHistory{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.Video{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IncrementViews 播放量 +1
func (r *VideoRepository) IncrementViews(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// Search 已发布视频检索：文本谓词 + 可选作者过滤 + 调用方指定的排序，分页返回。
// sortColumn 必须是白名单列，由 service 层校验。
func (r *VideoRepository) Search(skip, limit int, ownerID *int64, query, sortColumn string, ascending bool) ([]model.Video, int64, error) {
	q := r.db.Model(&model.Video{}).Where("is_published = ?", true)

	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}
	if query != "" {
		// LOWER + LIKE 交给存储层的索引，不引入独立搜索引擎
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	direction := "DESC"
	if ascending {
		direction = "ASC"
	}

	var videos []model.Video
	err := q.Order(sortColumn + " " + direction).
		Offset(skip).Limit(limit).
		Preload("Owner", publicUserPreload).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// ListByOwner 某作者的全部视频（含未发布，仪表盘用）
func (r *VideoRepository) ListByOwner(ownerID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// OwnerVideoStats 某作者的视频总数与总播放量
func (r *VideoRepository) OwnerVideoStats(ownerID int64) (totalVideos, totalViews int64, err error) {
	row := struct {
		TotalVideos int64
		TotalViews  int64
	}{}
	err = r.db.Model(&model.Video{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views").
		Where("owner_id = ?", ownerID).
		Scan(&row).Error
	return row.TotalVideos, row.TotalViews, err
}

// CountCommentsOnOwnedVideos 某作者全部视频收到的评论总数
func (r *VideoRepository) CountCommentsOnOwnedVideos(ownerID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).
		Joins("JOIN videos ON videos.id = comments.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error
	return count, err
}
