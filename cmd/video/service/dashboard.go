package service

import (
	"context"
	"time"

	interdb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	relationdb "VidHub.com/cmd/relation/dal/db"
	"VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/errno"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

type DashboardVideo struct {
	VideoId      int64     `json:"video_id"`
	Title        string    `json:"title"`
	ThumbnailUrl string    `json:"thumbnail_url"`
	Publish      bool      `json:"publish"`
	CreatedAt    time.Time `json:"created_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	DislikeCount int64     `json:"dislike_count"`
	CommentCount int64     `json:"comment_count"`
}

type DashboardData struct {
	TotalViews     int64             `json:"total_views"`
	TotalLikes     int64             `json:"total_likes"`
	TotalFollowers int64             `json:"total_followers"`
	Videos         []*DashboardVideo `json:"videos"`
}

// GetDashboardData 创作者后台: 含未发布视频和逐条统计.
func (service *DashboardService) GetDashboardData(actorId int64) (*DashboardData, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}

	videos, err := db.ListVideosByUser(service.ctx, actorId, false)
	if err != nil {
		return nil, errno.DBErr
	}

	data := &DashboardData{Videos: make([]*DashboardVideo, 0, len(videos))}
	if data.TotalFollowers, err = relationdb.GetFollowerCount(service.ctx, actorId); err != nil {
		return nil, errno.DBErr
	}

	for _, video := range videos {
		item := &DashboardVideo{
			VideoId:      video.VideoId,
			Title:        video.Title,
			ThumbnailUrl: video.ThumbnailUrl,
			Publish:      video.Publish,
			CreatedAt:    video.CreatedAt,
		}
		if item.ViewCount, err = interdb.CountVideoEngagements(service.ctx, video.VideoId, model.EngagementView); err != nil {
			return nil, errno.DBErr
		}
		if item.LikeCount, err = interdb.CountVideoEngagements(service.ctx, video.VideoId, model.EngagementLike); err != nil {
			return nil, errno.DBErr
		}
		if item.DislikeCount, err = interdb.CountVideoEngagements(service.ctx, video.VideoId, model.EngagementDislike); err != nil {
			return nil, errno.DBErr
		}
		if item.CommentCount, err = interdb.GetVideoCommentCount(service.ctx, video.VideoId); err != nil {
			return nil, errno.DBErr
		}
		data.TotalViews += item.ViewCount
		data.TotalLikes += item.LikeCount
		data.Videos = append(data.Videos, item)
	}
	return data, nil
}
