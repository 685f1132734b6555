package service

import (
	"context"
	"strings"

	"VidHub.com/cmd/model"
	"VidHub.com/cmd/user/dal/db"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

// CreateUser 注册. 密码bcrypt入库, handle默认取用户名.
func (service *UserService) CreateUser(userName, email, password string) (*model.User, error) {
	userName = strings.TrimSpace(userName)
	email = strings.TrimSpace(email)
	if userName == "" || email == "" || len(password) < 6 {
		return nil, errno.ParamErr
	}

	exist, err := db.CheckUserExist(service.ctx, userName, email)
	if err != nil {
		return nil, errno.DBErr
	}
	if exist {
		return nil, errno.UserExistErr
	}

	hashed, err := utils.Crypt(password)
	if err != nil {
		return nil, errno.ServiceErr
	}

	user := &model.User{
		UserId:   utils.NewID(),
		UserName: userName,
		Email:    email,
		Password: hashed,
		Handle:   "@" + userName,
	}
	if err := db.CreateUser(service.ctx, user); err != nil {
		return nil, errno.DBErr
	}
	user.Password = ""
	return user, nil
}
