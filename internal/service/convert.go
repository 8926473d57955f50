package service

import (
	"vidtube/internal/api/dto"
	"vidtube/internal/model"
)

func toUserInfo(u *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:            u.ID,
		Username:      u.UserName,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func toOwnerBrief(u *model.User) *dto.OwnerBrief {
	return &dto.OwnerBrief{
		ID:        u.ID,
		Username:  u.UserName,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toVideoInfo(v *model.Video) dto.VideoInfo {
	info := dto.VideoInfo{
		ID:           v.ID,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Title:        v.Title,
		Description:  v.Description,
		Duration:     v.Duration,
		Views:        v.Views,
		IsPublished:  v.IsPublished,
		OwnerID:      v.OwnerID,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.Owner.ID != 0 {
		info.Owner = toOwnerBrief(&v.Owner)
	}
	return info
}

func toVideoInfos(videos []model.Video) []dto.VideoInfo {
	infos := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		infos = append(infos, toVideoInfo(&videos[i]))
	}
	return infos
}

func toLikeInfo(l *model.Like) *dto.LikeInfo {
	return &dto.LikeInfo{
		ID:         l.ID,
		TargetType: string(l.TargetType),
		TargetID:   l.TargetID,
		LikedBy:    l.UserID,
		CreatedAt:  l.CreatedAt,
	}
}

func toSubscriptionInfo(s *model.Subscription) *dto.SubscriptionInfo {
	return &dto.SubscriptionInfo{
		ID:           s.ID,
		SubscriberID: s.SubscriberID,
		ChannelID:    s.ChannelID,
		CreatedAt:    s.CreatedAt,
	}
}
