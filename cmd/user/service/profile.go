package service

import (
	"strings"

	"VidHub.com/cmd/model"
	"VidHub.com/cmd/user/dal/db"
	"VidHub.com/pkg/errno"
	"gorm.io/gorm"
)

type ProfileParam struct {
	UserName        string
	Description     string
	Handle          string
	Image           string
	BackgroundImage string
}

// UpdateProfile 本人才能改自己的资料.
func (service *UserService) UpdateProfile(actorId int64, param *ProfileParam) (*model.User, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	user, err := db.GetUserById(service.ctx, actorId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.UserNotFoundErr
		}
		return nil, errno.DBErr
	}

	if name := strings.TrimSpace(param.UserName); name != "" {
		user.UserName = name
	}
	if param.Handle != "" {
		user.Handle = param.Handle
	}
	user.Description = param.Description
	if param.Image != "" {
		user.Image = param.Image
	}
	if param.BackgroundImage != "" {
		user.BackgroundImage = param.BackgroundImage
	}

	if err := db.UpdateProfile(service.ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errno.UserExistErr
		}
		return nil, errno.DBErr
	}
	user.Password = ""
	return user, nil
}
