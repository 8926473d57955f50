package service

import (
	"errors"

	"vidtube/internal/api/dto"
	"vidtube/internal/model"
	"vidtube/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentOwner  = errors.New("not the comment owner")
	ErrNoCommentsOnPage = errors.New("no comments on this page")
)

// CommentService 视频评论
type CommentService struct {
	comments *repository.CommentRepository
	videos   *repository.VideoRepository
	likes    *repository.LikeRepository
}

func NewCommentService(comments *repository.CommentRepository, videos *repository.VideoRepository, likes *repository.LikeRepository) *CommentService {
	return &CommentService{comments: comments, videos: videos, likes: likes}
}

// List 某视频的评论分页列表，带点赞统计与相对调用方的布尔位；
// 当前页为空按未找到处理
func (s *CommentService) List(videoID, viewerID int64, page, limit int) (*dto.CommentListData, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	skip := (page - 1) * limit
	comments, total, err := s.comments.ListByVideo(videoID, skip, limit)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNoCommentsOnPage
	}

	ids := make([]int64, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
	}
	likedSet, err := s.likes.BatchLikedByUser(viewerID, model.LikeTargetComment, ids)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		totalLikes, err := s.likes.CountByTarget(model.LikeTargetComment, c.ID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, dto.CommentInfo{
			ID:          c.ID,
			Content:     c.Content,
			VideoID:     c.VideoID,
			Owner:       toOwnerBrief(&c.Owner),
			TotalLikes:  totalLikes,
			LikedByUser: likedSet[c.ID],
			IsOwner:     viewerID != 0 && viewerID == c.OwnerID,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &dto.CommentListData{
		Comments:   infos,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Add 在视频下发表评论
func (s *CommentService) Add(user *model.User, videoID int64, content string) (*dto.CommentInfo, error) {
	if _, err := s.videos.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{Content: content, VideoID: videoID, OwnerID: user.ID}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}

	return &dto.CommentInfo{
		ID:        comment.ID,
		Content:   comment.Content,
		VideoID:   comment.VideoID,
		Owner:     toOwnerBrief(user),
		IsOwner:   true,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}, nil
}

// Update 更新评论内容，仅评论作者可操作
func (s *CommentService) Update(user *model.User, commentID int64, content string) (*dto.CommentInfo, error) {
	if err := s.checkOwner(user, commentID); err != nil {
		return nil, err
	}

	updated, err := s.comments.UpdateContent(commentID, content)
	if err != nil {
		return nil, err
	}

	return &dto.CommentInfo{
		ID:        updated.ID,
		Content:   updated.Content,
		VideoID:   updated.VideoID,
		Owner:     toOwnerBrief(user),
		IsOwner:   true,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
	}, nil
}

// Delete 删除评论及其点赞，仅评论作者可操作
func (s *CommentService) Delete(user *model.User, commentID int64) error {
	if err := s.checkOwner(user, commentID); err != nil {
		return err
	}
	return s.comments.CascadeDelete(commentID)
}

func (s *CommentService) checkOwner(user *model.User, commentID int64) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if comment.OwnerID != user.ID {
		return ErrNotCommentOwner
	}
	return nil
}
