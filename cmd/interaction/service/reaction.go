package service

import (
	"context"

	"VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	userdb "VidHub.com/cmd/user/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/errno"
	"gorm.io/gorm"
)

type ReactionService struct {
	ctx context.Context
}

func NewReactionService(ctx context.Context) *ReactionService {
	return &ReactionService{ctx: ctx}
}

// SetVideoReaction 点赞/点踩切换, 返回切换后的状态(0表示取消).
// 并发撞唯一键时重试一次, 第二次必然走到已有行的分支.
func (service *ReactionService) SetVideoReaction(videoId, actorId int64, kind int) (int, error) {
	if actorId <= 0 {
		return 0, errno.UnauthorizedErr
	}
	if !model.IsReaction(kind) {
		return 0, errno.ParamErr
	}
	if _, err := videodb.GetVideoById(service.ctx, videoId); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errno.VideoNotFoundErr
		}
		return 0, errno.DBErr
	}

	state, err := db.ToggleVideoReaction(service.ctx, videoId, actorId, kind)
	if err == gorm.ErrDuplicatedKey {
		state, err = db.ToggleVideoReaction(service.ctx, videoId, actorId, kind)
	}
	if err != nil {
		return 0, errno.DBErr
	}
	return state, nil
}

func (service *ReactionService) SetAnnouncementReaction(announcementId, actorId int64, kind int) (int, error) {
	if actorId <= 0 {
		return 0, errno.UnauthorizedErr
	}
	if !model.IsReaction(kind) {
		return 0, errno.ParamErr
	}
	if _, err := userdb.GetAnnouncementById(service.ctx, announcementId); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errno.AnnouncementNotFoundErr
		}
		return 0, errno.DBErr
	}

	state, err := db.ToggleAnnouncementReaction(service.ctx, announcementId, actorId, kind)
	if err == gorm.ErrDuplicatedKey {
		state, err = db.ToggleAnnouncementReaction(service.ctx, announcementId, actorId, kind)
	}
	if err != nil {
		return 0, errno.DBErr
	}
	return state, nil
}
