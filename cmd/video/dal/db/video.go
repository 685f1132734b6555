package db

import (
	"context"

	"VidHub.com/cmd/model"
)

func CreateVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

func GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).
		First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// GetVideosByIds 批量查询, 调用方自行保持顺序
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	list := make([]*model.Video, 0)
	if len(videoIds) == 0 {
		return list, nil
	}
	if err := DB.WithContext(ctx).Where("video_id in ?", videoIds).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func UpdateVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", video.VideoId).
		Updates(map[string]interface{}{
			"title":         video.Title,
			"description":   video.Description,
			"video_url":     video.VideoUrl,
			"thumbnail_url": video.ThumbnailUrl,
			"publish":       video.Publish,
		}).Error
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.Video{}).Error
}

// ListVideosByUser publishedOnly为true时过滤未发布视频
func ListVideosByUser(ctx context.Context, userId int64, publishedOnly bool) ([]*model.Video, error) {
	list := make([]*model.Video, 0)
	query := DB.WithContext(ctx).Where("user_id = ?", userId)
	if publishedOnly {
		query = query.Where("publish = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListPublishedVideos 发现页的候选集, 随机性由service层洗牌实现
func ListPublishedVideos(ctx context.Context, limit int) ([]*model.Video, error) {
	list := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Where("publish = ?", true).
		Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// SearchVideos 标题模糊匹配, 只搜已发布视频
func SearchVideos(ctx context.Context, keyword string) ([]*model.Video, error) {
	list := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Where("publish = ? And title LIKE ?", true, "%"+keyword+"%").
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func CountVideosByUser(ctx context.Context, userId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
