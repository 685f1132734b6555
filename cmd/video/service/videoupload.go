package service

import (
	"context"
	"strings"

	interdb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	playlistdb "VidHub.com/cmd/playlist/dal/db"
	"VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
	"gorm.io/gorm"
)

type VideoUploadService struct {
	ctx context.Context
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx}
}

type UploadParam struct {
	Title        string
	Description  string
	VideoUrl     string
	ThumbnailUrl string
	Publish      bool
}

// AddVideo 新视频默认不发布, 编辑完元数据后再公开.
func (service *VideoUploadService) AddVideo(actorId int64, param *UploadParam) (*model.Video, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	title := strings.TrimSpace(param.Title)
	if title == "" || len(title) > constants.MaxTitleLen {
		return nil, errno.ParamErr.WithMessage("invalid title")
	}
	if len(param.Description) > constants.MaxDescriptionLen {
		return nil, errno.ParamErr.WithMessage("description too long")
	}

	video := &model.Video{
		VideoId:      utils.NewID(),
		UserId:       actorId,
		Title:        title,
		Description:  param.Description,
		VideoUrl:     param.VideoUrl,
		ThumbnailUrl: param.ThumbnailUrl,
		Publish:      param.Publish,
	}
	if err := db.CreateVideo(service.ctx, video); err != nil {
		return nil, errno.DBErr
	}
	return video, nil
}

// UpdateVideo 只有作者能改
func (service *VideoUploadService) UpdateVideo(actorId, videoId int64, param *UploadParam) (*model.Video, error) {
	video, err := service.ownedVideo(actorId, videoId)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(param.Title)
	if title == "" || len(title) > constants.MaxTitleLen {
		return nil, errno.ParamErr.WithMessage("invalid title")
	}
	video.Title = title
	video.Description = param.Description
	if param.VideoUrl != "" {
		video.VideoUrl = param.VideoUrl
	}
	if param.ThumbnailUrl != "" {
		video.ThumbnailUrl = param.ThumbnailUrl
	}
	video.Publish = param.Publish

	if err := db.UpdateVideo(service.ctx, video); err != nil {
		return nil, errno.DBErr
	}
	return video, nil
}

// DeleteVideo 连带清理互动记录, 评论和各列表里的条目
func (service *VideoUploadService) DeleteVideo(actorId, videoId int64) error {
	if _, err := service.ownedVideo(actorId, videoId); err != nil {
		return err
	}
	if err := db.DeleteVideo(service.ctx, videoId); err != nil {
		return errno.DBErr
	}
	if err := interdb.DeleteVideoEngagements(service.ctx, videoId); err != nil {
		return errno.DBErr
	}
	if err := interdb.DeleteCommentsByVideo(service.ctx, videoId); err != nil {
		return errno.DBErr
	}
	if err := playlistdb.RemoveVideoEverywhere(service.ctx, videoId); err != nil {
		return errno.DBErr
	}
	return nil
}

func (service *VideoUploadService) ownedVideo(actorId, videoId int64) (*model.Video, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	video, err := db.GetVideoById(service.ctx, videoId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errno.DBErr
	}
	if video.UserId != actorId {
		return nil, errno.PermissionErr
	}
	return video, nil
}
