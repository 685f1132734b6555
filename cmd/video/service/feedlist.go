package service

import (
	"context"
	"math/rand"

	interdb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	userdb "VidHub.com/cmd/user/dal/db"
	"VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/errno"
)

type FeedService struct {
	ctx context.Context
}

func NewFeedService(ctx context.Context) *FeedService {
	return &FeedService{ctx: ctx}
}

// GetRandomVideos 发现页: 取一批已发布视频, 应用层洗牌后截断.
// excludeId用于播放页侧边推荐时去掉当前视频.
func (service *FeedService) GetRandomVideos(count int, excludeId int64) ([]*VideoBrief, error) {
	if count <= 0 {
		count = constants.DefaultFeedCount
	}
	if count > constants.MaxFeedCount {
		count = constants.MaxFeedCount
	}

	videos, err := db.ListPublishedVideos(service.ctx, constants.MaxFeedCount*3)
	if err != nil {
		return nil, errno.DBErr
	}
	if excludeId > 0 {
		filtered := videos[:0]
		for _, video := range videos {
			if video.VideoId != excludeId {
				filtered = append(filtered, video)
			}
		}
		videos = filtered
	}
	rand.Shuffle(len(videos), func(i, j int) {
		videos[i], videos[j] = videos[j], videos[i]
	})
	if len(videos) > count {
		videos = videos[:count]
	}
	return attachBriefs(service.ctx, videos)
}

// attachBriefs 批量补齐作者信息和观看数
func attachBriefs(ctx context.Context, videos []*model.Video) ([]*VideoBrief, error) {
	userIds := make([]int64, 0, len(videos))
	for _, video := range videos {
		userIds = append(userIds, video.UserId)
	}
	users, err := userdb.GetUsersByIds(ctx, userIds)
	if err != nil {
		return nil, errno.DBErr
	}
	userMap := make(map[int64]*model.User, len(users))
	for _, user := range users {
		userMap[user.UserId] = user
	}

	list := make([]*VideoBrief, 0, len(videos))
	for _, video := range videos {
		brief := &VideoBrief{
			VideoId:      video.VideoId,
			Title:        video.Title,
			ThumbnailUrl: video.ThumbnailUrl,
			CreatedAt:    video.CreatedAt,
		}
		if brief.ViewCount, err = interdb.CountVideoEngagements(ctx, video.VideoId, model.EngagementView); err != nil {
			return nil, errno.DBErr
		}
		if user, ok := userMap[video.UserId]; ok {
			brief.Uploader = &UploaderInfo{
				UserId:   user.UserId,
				UserName: user.UserName,
				Handle:   user.Handle,
				Image:    user.Image,
			}
		}
		list = append(list, brief)
	}
	return list, nil
}
