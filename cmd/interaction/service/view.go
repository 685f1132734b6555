package service

import (
	"context"

	"VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	playlistdb "VidHub.com/cmd/playlist/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
)

type ViewService struct {
	ctx context.Context
}

func NewViewService(ctx context.Context) *ViewService {
	return &ViewService{ctx: ctx}
}

// RecordView 每次播放记一行, 不去重. 登录用户同时往历史列表追加一条,
// 重复观看重复追加, 去重放在历史读取侧.
func (service *ViewService) RecordView(videoId, actorId int64) (int64, error) {
	if _, err := videodb.GetVideoById(service.ctx, videoId); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errno.VideoNotFoundErr
		}
		return 0, errno.DBErr
	}

	if err := db.CreateVideoView(service.ctx, videoId, actorId); err != nil {
		return 0, errno.DBErr
	}

	if actorId > 0 {
		history, err := playlistdb.GetOrCreateHistory(service.ctx, actorId)
		if err != nil {
			// 历史列表写不进去不影响计数
			hlog.CtxWarnf(service.ctx, "ensure history playlist failed: %v", err)
		} else if err := playlistdb.AppendHistoryEntry(service.ctx, history.PlaylistId, videoId); err != nil {
			hlog.CtxWarnf(service.ctx, "append history entry failed: %v", err)
		}
	}

	count, err := db.CountVideoEngagements(service.ctx, videoId, model.EngagementView)
	if err != nil {
		return 0, errno.DBErr
	}
	return count, nil
}
