package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrNotPlaylistOwner   = errors.New("not the playlist owner")
	ErrVideoNotInPlaylist = errors.New("video not in playlist")
	ErrNoPlaylists        = errors.New("user has no playlists")
)

// PlaylistService 播放列表管理，条目按加入顺序维护
type PlaylistService struct {
	playlists *repository.PlaylistRepository
	videos    *repository.VideoRepository
	users     *repository.UserRepository
}

func NewPlaylistService(playlists *repository.PlaylistRepository, videos *repository.VideoRepository, users *repository.UserRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos, users: users}
}

// Create 创建播放列表
func (s *PlaylistService) Create(user *model.User, req *dto.PlaylistCreateRequest) (*dto.PlaylistInfo, error) {
	playlist := &model.Playlist{Name: req.Name, Description: req.Description, OwnerID: user.ID}
	if err := s.playlists.Create(playlist); err != nil {
		return nil, err
	}
	playlist.Owner = *user
	return s.assemble(playlist, []model.Video{}), nil
}

// GetUserPlaylists 某用户的全部播放列表（含各自的视频）；一个都没有按未找到处理
func (s *PlaylistService) GetUserPlaylists(ownerID int64) ([]dto.PlaylistInfo, error) {
	owner, err := s.users.GetPublicByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	playlists, err := s.playlists.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, ErrNoPlaylists
	}

	infos := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		playlists[i].Owner = *owner
		videos, err := s.playlists.ListVideos(playlists[i].ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *s.assemble(&playlists[i], videos))
	}
	return infos, nil
}

// GetByID 播放列表详情（含所有者与视频）
func (s *PlaylistService) GetByID(playlistID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.playlists.GetByIDWithOwner(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}

	videos, err := s.playlists.ListVideos(playlistID)
	if err != nil {
		return nil, err
	}
	return s.assemble(playlist, videos), nil
}

// AddVideo 把视频追加到列表末尾，重复加入返回 repository.ErrVideoAlreadyInPlaylist
func (s *PlaylistService) AddVideo(user *model.User, playlistID, videoID int64) (*dto.PlaylistInfo, error) {
	if err := s.checkOwner(user, playlistID); err != nil {
		return nil, err
	}
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.playlists.AddVideo(playlistID, videoID); err != nil {
		return nil, err
	}
	return s.GetByID(playlistID)
}

// RemoveVideo 从列表移除视频
func (s *PlaylistService) RemoveVideo(user *model.User, playlistID, videoID int64) (*dto.PlaylistInfo, error) {
	if err := s.checkOwner(user, playlistID); err != nil {
		return nil, err
	}

	removed, err := s.playlists.RemoveVideo(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrVideoNotInPlaylist
	}
	return s.GetByID(playlistID)
}

// Update 更新名称与描述，仅所有者可操作
func (s *PlaylistService) Update(user *model.User, playlistID int64, req *dto.PlaylistUpdateRequest) (*dto.PlaylistInfo, error) {
	if err := s.checkOwner(user, playlistID); err != nil {
		return nil, err
	}

	if _, err := s.playlists.Update(playlistID, req.Name, req.Description); err != nil {
		return nil, err
	}
	return s.GetByID(playlistID)
}

// Delete 删除播放列表及其条目，仅所有者可操作
func (s *PlaylistService) Delete(user *model.User, playlistID int64) error {
	if err := s.checkOwner(user, playlistID); err != nil {
		return err
	}
	return s.playlists.Delete(playlistID)
}

func (s *PlaylistService) checkOwner(user *model.User, playlistID int64) error {
	playlist, err := s.playlists.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	if playlist.OwnerID != user.ID {
		return ErrNotPlaylistOwner
	}
	return nil
}

func (s *PlaylistService) assemble(p *model.Playlist, videos []model.Video) *dto.PlaylistInfo {
	info := &dto.PlaylistInfo{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Videos:      toVideoInfos(videos),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Owner.ID != 0 {
		info.Owner = toOwnerBrief(&p.Owner)
	}
	return info
}
