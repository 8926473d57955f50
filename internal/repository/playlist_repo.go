package repository

import (
	"errors"

	"vidtube/internal/model"

	"gorm.io/gorm"
)

// ErrVideoAlreadyInPlaylist 视频已在播放列表中（重复加入被拒绝）
var ErrVideoAlreadyInPlaylist = errors.New("video already in playlist")

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// GetByID 根据 ID 获取播放列表
func (r *PlaylistRepository) GetByID(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.db.Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetByIDWithOwner 根据 ID 获取播放列表（含所有者公开信息）
func (r *PlaylistRepository) GetByIDWithOwner(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.Preload("Owner", publicUserPreload).Where("id = ?", id).First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Create 创建播放列表
func (r *PlaylistRepository) Create(playlist *model.Playlist) error {
	return r.db.Create(playlist).Error
}

// Update 更新名称与描述
func (r *PlaylistRepository) Update(id int64, name, description string) (*model.Playlist, error) {
	result := r.db.Model(&model.Playlist{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除播放列表及其条目
func (r *PlaylistRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListByOwner 某用户的全部播放列表
func (r *PlaylistRepository) ListByOwner(ownerID int64) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&playlists).Error
	return playlists, err
}

// AddVideo 把视频追加到列表末尾，已存在则返回 ErrVideoAlreadyInPlaylist
func (r *PlaylistRepository) AddVideo(playlistID, videoID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrVideoAlreadyInPlaylist
		}

		var maxPosition int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistID).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		entry := &model.PlaylistVideo{
			PlaylistID: playlistID,
			VideoID:    videoID,
			Position:   int(maxPosition) + 1,
		}
		return tx.Create(entry).Error
	})
}

// RemoveVideo 从列表移除视频，返回是否有条目被删除
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID int64) (bool, error) {
	result := r.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListVideos 播放列表内的视频（含作者公开信息），按加入顺序
func (r *PlaylistRepository) ListVideos(playlistID int64) ([]model.Video, error) {
	var ids []int64
	err := r.db.Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Pluck("video_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var videos []model.Video
	err = r.db.Preload("Owner", publicUserPreload).Where("id IN ?", ids).Find(&videos).Error
	if err != nil {
		return nil, err
	}

	// 按 position 还原顺序
	byID := make(map[int64]model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = videos[i]
	}
	ordered := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}
