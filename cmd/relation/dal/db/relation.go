package db

import (
	"context"

	"VidHub.com/cmd/model"
	"gorm.io/gorm"
)

// ToggleFollow 已关注则取关, 未关注则建立关注. 返回切换后是否处于关注状态.
// 并发重复插入撞到uk_follow时视为已关注.
func ToggleFollow(ctx context.Context, followerId, followingId int64) (bool, error) {
	following := false
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? And following_id = ?", followerId, followingId).
			Delete(&model.FollowEngagement{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			following = false
			return nil
		}
		following = true
		return tx.Create(&model.FollowEngagement{
			FollowerId:     followerId,
			FollowingId:    followingId,
			EngagementType: model.EngagementFollow,
		}).Error
	})
	if err == gorm.ErrDuplicatedKey {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return following, nil
}

func IsFollowing(ctx context.Context, followerId, followingId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.FollowEngagement{}).
		Where("follower_id = ? And following_id = ?", followerId, followingId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowerCount 粉丝数
func GetFollowerCount(ctx context.Context, userId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.FollowEngagement{}).
		Where("following_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetFollowingCount 关注数
func GetFollowingCount(ctx context.Context, userId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.FollowEngagement{}).
		Where("follower_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetFollowingList 用户关注的所有频道id, 最近关注在前
func GetFollowingList(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.FollowEngagement{}).
		Where("follower_id = ?", userId).Select("following_id").
		Order("created_at DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetFollowerList 关注该频道的所有用户id
func GetFollowerList(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.FollowEngagement{}).
		Where("following_id = ?", userId).Select("follower_id").
		Order("created_at DESC").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
