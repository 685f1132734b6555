package db

import (
	"context"

	"VidHub.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).
		First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Where("user_name = ?", userName).
		First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	list := make([]*model.User, 0)
	if len(userIds) == 0 {
		return list, nil
	}
	if err := DB.WithContext(ctx).Where("user_id in ?", userIds).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CheckUserExist 注册前查重, 用户名或邮箱任一撞上即为存在
func CheckUserExist(ctx context.Context, userName, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_name = ? Or email = ?", userName, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateProfile 只更新资料字段, 密码与邮箱走单独流程
func UpdateProfile(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", user.UserId).
		Updates(map[string]interface{}{
			"user_name":        user.UserName,
			"description":      user.Description,
			"handle":           user.Handle,
			"image":            user.Image,
			"background_image": user.BackgroundImage,
		}).Error
}
