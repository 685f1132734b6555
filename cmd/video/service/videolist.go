package service

import (
	"context"

	interdb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	"VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/errno"
)

type VideoListService struct {
	ctx context.Context
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx}
}

// GetVideosByUploader 频道页视频列表, 只有作者本人能看到未发布的.
func (service *VideoListService) GetVideosByUploader(userId, viewerId int64) ([]*VideoBrief, error) {
	videos, err := db.ListVideosByUser(service.ctx, userId, viewerId != userId)
	if err != nil {
		return nil, errno.DBErr
	}
	return attachBriefs(service.ctx, videos)
}

// SearchVideos 关键词搜索, 仅已发布
func (service *VideoListService) SearchVideos(keyword string) ([]*VideoBrief, error) {
	if keyword == "" {
		return []*VideoBrief{}, nil
	}
	videos, err := db.SearchVideos(service.ctx, keyword)
	if err != nil {
		return nil, errno.DBErr
	}
	return attachBriefs(service.ctx, videos)
}

// GetVideoHistory 观看历史: 去重后按最近观看排序.
func (service *VideoListService) GetVideoHistory(userId int64) ([]*VideoBrief, error) {
	if userId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	videoIds, err := interdb.ListViewedVideoIds(service.ctx, userId, constants.HistoryListLimit)
	if err != nil {
		return nil, errno.DBErr
	}
	return service.GetVideosByIdsInOrder(videoIds)
}

// GetLikedVideos 点赞过的视频, 按点赞时间倒序.
func (service *VideoListService) GetLikedVideos(userId int64) ([]*VideoBrief, error) {
	if userId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	videoIds, err := interdb.ListLikedVideoIds(service.ctx, userId)
	if err != nil {
		return nil, errno.DBErr
	}
	return service.GetVideosByIdsInOrder(videoIds)
}

// GetVideosByIdsInOrder 批量查出后按id列表原序排列
func (service *VideoListService) GetVideosByIdsInOrder(videoIds []int64) ([]*VideoBrief, error) {
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errno.DBErr
	}
	videoMap := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		videoMap[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(videoIds))
	for _, videoId := range videoIds {
		if video, ok := videoMap[videoId]; ok {
			ordered = append(ordered, video)
		}
	}
	return attachBriefs(service.ctx, ordered)
}
