package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	interdb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	"VidHub.com/cmd/user/dal/db"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
)

type AnnouncementService struct {
	ctx context.Context
}

func NewAnnouncementService(ctx context.Context) *AnnouncementService {
	return &AnnouncementService{ctx: ctx}
}

type AnnouncementInfo struct {
	AnnouncementId int64     `json:"announcement_id"`
	UserId         int64     `json:"user_id"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`

	LikeCount    int64 `json:"like_count"`
	DislikeCount int64 `json:"dislike_count"`
	HasLiked     bool  `json:"has_liked"`
	HasDisliked  bool  `json:"has_disliked"`
}

func (service *AnnouncementService) AddAnnouncement(actorId int64, message string) (*model.Announcement, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	message = strings.TrimSpace(message)
	// 按字符数算长度, 多字节文本不吃亏
	if length := utf8.RuneCountInString(message); length < constants.MinMessageLen || length > constants.MaxMessageLen {
		return nil, errno.ParamErr.WithMessage("announcement length out of range")
	}

	announcement := &model.Announcement{
		AnnouncementId: utils.NewID(),
		UserId:         actorId,
		Message:        message,
	}
	if err := db.CreateAnnouncement(service.ctx, announcement); err != nil {
		return nil, errno.DBErr
	}
	return announcement, nil
}

// ListAnnouncements 频道公告, 逐条带上计数和观看者标记.
func (service *AnnouncementService) ListAnnouncements(channelId, viewerId int64) ([]*AnnouncementInfo, error) {
	announcements, err := db.ListAnnouncementsByUser(service.ctx, channelId)
	if err != nil {
		return nil, errno.DBErr
	}

	list := make([]*AnnouncementInfo, 0, len(announcements))
	for _, announcement := range announcements {
		info := &AnnouncementInfo{
			AnnouncementId: announcement.AnnouncementId,
			UserId:         announcement.UserId,
			Message:        announcement.Message,
			CreatedAt:      announcement.CreatedAt,
		}
		if info.LikeCount, err = interdb.CountAnnouncementEngagements(service.ctx, announcement.AnnouncementId, model.EngagementLike); err != nil {
			return nil, errno.DBErr
		}
		if info.DislikeCount, err = interdb.CountAnnouncementEngagements(service.ctx, announcement.AnnouncementId, model.EngagementDislike); err != nil {
			return nil, errno.DBErr
		}
		if viewerId > 0 {
			reaction, err := interdb.GetAnnouncementReaction(service.ctx, announcement.AnnouncementId, viewerId)
			if err != nil {
				return nil, errno.DBErr
			}
			info.HasLiked = reaction == model.EngagementLike
			info.HasDisliked = reaction == model.EngagementDislike
		}
		list = append(list, info)
	}
	return list, nil
}

// DeleteAnnouncement 只能删自己的
func (service *AnnouncementService) DeleteAnnouncement(actorId, announcementId int64) error {
	if actorId <= 0 {
		return errno.UnauthorizedErr
	}
	announcement, err := db.GetAnnouncementById(service.ctx, announcementId)
	if err != nil {
		return errno.AnnouncementNotFoundErr
	}
	if announcement.UserId != actorId {
		return errno.PermissionErr
	}
	if err := db.DeleteAnnouncement(service.ctx, announcementId); err != nil {
		return errno.DBErr
	}
	return nil
}
