package service

import (
	"context"

	interdb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	playlistdb "VidHub.com/cmd/playlist/dal/db"
	relationdb "VidHub.com/cmd/relation/dal/db"
	userdb "VidHub.com/cmd/user/dal/db"
	"VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/errno"
	"gorm.io/gorm"
)

type VideoInfoService struct {
	ctx context.Context
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx}
}

// GetVideoById 播放页聚合. 计数每次现算不缓存,
// viewerId为0时跳过所有观看者标记查询.
func (service *VideoInfoService) GetVideoById(videoId, viewerId int64) (*VideoDetail, error) {
	video, err := db.GetVideoById(service.ctx, videoId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errno.DBErr
	}
	// 未发布视频只有作者自己能看
	if !video.Publish && video.UserId != viewerId {
		return nil, errno.VideoNotFoundErr
	}

	detail := &VideoDetail{
		VideoId:      video.VideoId,
		Title:        video.Title,
		Description:  video.Description,
		VideoUrl:     video.VideoUrl,
		ThumbnailUrl: video.ThumbnailUrl,
		Publish:      video.Publish,
		CreatedAt:    video.CreatedAt,
	}

	uploader, err := userdb.GetUserById(service.ctx, video.UserId)
	if err == nil {
		detail.Uploader = &UploaderInfo{
			UserId:   uploader.UserId,
			UserName: uploader.UserName,
			Handle:   uploader.Handle,
			Image:    uploader.Image,
		}
	}

	if detail.ViewCount, err = interdb.CountVideoEngagements(service.ctx, videoId, model.EngagementView); err != nil {
		return nil, errno.DBErr
	}
	if detail.LikeCount, err = interdb.CountVideoEngagements(service.ctx, videoId, model.EngagementLike); err != nil {
		return nil, errno.DBErr
	}
	if detail.DislikeCount, err = interdb.CountVideoEngagements(service.ctx, videoId, model.EngagementDislike); err != nil {
		return nil, errno.DBErr
	}
	if detail.CommentCount, err = interdb.GetVideoCommentCount(service.ctx, videoId); err != nil {
		return nil, errno.DBErr
	}
	if detail.FollowerCount, err = relationdb.GetFollowerCount(service.ctx, video.UserId); err != nil {
		return nil, errno.DBErr
	}

	if viewerId > 0 {
		reaction, err := interdb.GetVideoReaction(service.ctx, videoId, viewerId)
		if err != nil {
			return nil, errno.DBErr
		}
		detail.HasLiked = reaction == model.EngagementLike
		detail.HasDisliked = reaction == model.EngagementDislike

		if detail.IsFollowing, err = relationdb.IsFollowing(service.ctx, viewerId, video.UserId); err != nil {
			return nil, errno.DBErr
		}
		if detail.HasSaved, err = playlistdb.HasVideoSaved(service.ctx, viewerId, videoId); err != nil {
			return nil, errno.DBErr
		}
	}
	return detail, nil
}
