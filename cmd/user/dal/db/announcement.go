package db

import (
	"context"

	"VidHub.com/cmd/model"
)

func CreateAnnouncement(ctx context.Context, announcement *model.Announcement) error {
	return DB.WithContext(ctx).Create(announcement).Error
}

func GetAnnouncementById(ctx context.Context, announcementId int64) (*model.Announcement, error) {
	announcement := &model.Announcement{}
	if err := DB.WithContext(ctx).Where("announcement_id = ?", announcementId).
		First(announcement).Error; err != nil {
		return nil, err
	}
	return announcement, nil
}

// ListAnnouncementsByUser 频道公告, 新的在前
func ListAnnouncementsByUser(ctx context.Context, userId int64) ([]*model.Announcement, error) {
	list := make([]*model.Announcement, 0)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func DeleteAnnouncement(ctx context.Context, announcementId int64) error {
	return DB.WithContext(ctx).Where("announcement_id = ?", announcementId).
		Delete(&model.Announcement{}).Error
}
