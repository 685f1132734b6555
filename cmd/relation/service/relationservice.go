package service

import (
	"context"

	"VidHub.com/cmd/model"
	"VidHub.com/cmd/relation/dal/db"
	userdb "VidHub.com/cmd/user/dal/db"
	"VidHub.com/pkg/errno"
	"gorm.io/gorm"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleFollow 已关注则取关, 否则关注. 返回切换后的状态.
func (service *RelationService) ToggleFollow(actorId, channelId int64) (bool, error) {
	if actorId <= 0 {
		return false, errno.UnauthorizedErr
	}
	if actorId == channelId {
		return false, errno.SelfFollowErr
	}
	if _, err := userdb.GetUserById(service.ctx, channelId); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errno.UserNotFoundErr
		}
		return false, errno.DBErr
	}

	following, err := db.ToggleFollow(service.ctx, actorId, channelId)
	if err != nil {
		return false, errno.DBErr
	}
	return following, nil
}

type ChannelBrief struct {
	UserId        int64  `json:"user_id"`
	UserName      string `json:"user_name"`
	Handle        string `json:"handle"`
	Image         string `json:"image"`
	FollowerCount int64  `json:"follower_count"`
}

// GetFollowingChannels 用户关注的频道列表, 最近关注在前.
func (service *RelationService) GetFollowingChannels(userId int64) ([]*ChannelBrief, error) {
	channelIds, err := db.GetFollowingList(service.ctx, userId)
	if err != nil {
		return nil, errno.DBErr
	}
	users, err := userdb.GetUsersByIds(service.ctx, channelIds)
	if err != nil {
		return nil, errno.DBErr
	}
	userMap := make(map[int64]*model.User, len(users))
	for _, user := range users {
		userMap[user.UserId] = user
	}

	list := make([]*ChannelBrief, 0, len(channelIds))
	for _, channelId := range channelIds {
		user, ok := userMap[channelId]
		if !ok {
			continue
		}
		count, err := db.GetFollowerCount(service.ctx, channelId)
		if err != nil {
			return nil, errno.DBErr
		}
		list = append(list, &ChannelBrief{
			UserId:        user.UserId,
			UserName:      user.UserName,
			Handle:        user.Handle,
			Image:         user.Image,
			FollowerCount: count,
		})
	}
	return list, nil
}
