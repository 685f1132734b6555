package db

import (
	"context"

	"VidHub.com/cmd/model"
	"gorm.io/gorm"
)

// ToggleVideoReaction 三态切换: 无->有, 同类->删, 异类->改.
// 返回切换后的状态, 0表示无反应.
// uk_video_reaction兜底并发下的重复插入.
func ToggleVideoReaction(ctx context.Context, videoId, userId int64, kind int) (int, error) {
	state := 0
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.VideoEngagement
		err := tx.Where("user_id = ? And reaction_key = ?", userId, videoId).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.EngagementType == kind {
				state = 0
				return tx.Delete(&model.VideoEngagement{}, existing.Id).Error
			}
			state = kind
			return tx.Model(&model.VideoEngagement{}).Where("id = ?", existing.Id).
				Update("engagement_type", kind).Error
		case err == gorm.ErrRecordNotFound:
			state = kind
			key := videoId
			return tx.Create(&model.VideoEngagement{
				VideoId:        videoId,
				UserId:         userId,
				EngagementType: kind,
				ReactionKey:    &key,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return 0, err
	}
	return state, nil
}

func ToggleAnnouncementReaction(ctx context.Context, announcementId, userId int64, kind int) (int, error) {
	state := 0
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.AnnouncementEngagement
		err := tx.Where("user_id = ? And reaction_key = ?", userId, announcementId).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.EngagementType == kind {
				state = 0
				return tx.Delete(&model.AnnouncementEngagement{}, existing.Id).Error
			}
			state = kind
			return tx.Model(&model.AnnouncementEngagement{}).Where("id = ?", existing.Id).
				Update("engagement_type", kind).Error
		case err == gorm.ErrRecordNotFound:
			state = kind
			key := announcementId
			return tx.Create(&model.AnnouncementEngagement{
				AnnouncementId: announcementId,
				UserId:         userId,
				EngagementType: kind,
				ReactionKey:    &key,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return 0, err
	}
	return state, nil
}

// CreateVideoView 观看记录只增不去重, 匿名观看userId为0.
func CreateVideoView(ctx context.Context, videoId, userId int64) error {
	return DB.WithContext(ctx).Create(&model.VideoEngagement{
		VideoId:        videoId,
		UserId:         userId,
		EngagementType: model.EngagementView,
	}).Error
}

func CountVideoEngagements(ctx context.Context, videoId int64, kind int) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.VideoEngagement{}).
		Where("video_id = ? And engagement_type = ?", videoId, kind).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetVideoReaction 查询用户对视频的当前反应, 没有则返回0.
func GetVideoReaction(ctx context.Context, videoId, userId int64) (int, error) {
	var kinds []int
	if err := DB.WithContext(ctx).Model(&model.VideoEngagement{}).
		Where("user_id = ? And reaction_key = ?", userId, videoId).
		Select("engagement_type").Scan(&kinds).Error; err != nil {
		return 0, err
	}
	if len(kinds) == 0 {
		return 0, nil
	}
	return kinds[0], nil
}

func CountAnnouncementEngagements(ctx context.Context, announcementId int64, kind int) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.AnnouncementEngagement{}).
		Where("announcement_id = ? And engagement_type = ?", announcementId, kind).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetAnnouncementReaction(ctx context.Context, announcementId, userId int64) (int, error) {
	var kinds []int
	if err := DB.WithContext(ctx).Model(&model.AnnouncementEngagement{}).
		Where("user_id = ? And reaction_key = ?", userId, announcementId).
		Select("engagement_type").Scan(&kinds).Error; err != nil {
		return 0, err
	}
	if len(kinds) == 0 {
		return 0, nil
	}
	return kinds[0], nil
}

// ListViewedVideoIds 按最近一次观看时间倒序, 同一视频只出现一次.
func ListViewedVideoIds(ctx context.Context, userId int64, limit int) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.VideoEngagement{}).
		Where("user_id = ? And engagement_type = ?", userId, model.EngagementView).
		Select("video_id").Group("video_id").
		Order("MAX(created_at) DESC").Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListLikedVideoIds 用户点赞过的视频, 按点赞时间倒序.
func ListLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.VideoEngagement{}).
		Where("user_id = ? And engagement_type = ?", userId, model.EngagementLike).
		Select("video_id").Order("updated_at DESC").
		Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteVideoEngagements 删除视频时清理互动行.
func DeleteVideoEngagements(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.VideoEngagement{}).Error
}
