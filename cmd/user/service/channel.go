package service

import (
	"context"
	"time"

	relationdb "VidHub.com/cmd/relation/dal/db"
	"VidHub.com/cmd/user/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/errno"
	"gorm.io/gorm"
)

type ChannelService struct {
	ctx context.Context
}

func NewChannelService(ctx context.Context) *ChannelService {
	return &ChannelService{ctx: ctx}
}

type ChannelInfo struct {
	UserId          int64     `json:"user_id"`
	UserName        string    `json:"user_name"`
	Handle          string    `json:"handle"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
	BackgroundImage string    `json:"background_image"`
	CreatedAt       time.Time `json:"created_at"`

	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	VideoCount     int64 `json:"video_count"`
	IsFollowing    bool  `json:"is_following"`
}

// GetChannelById 频道主页信息, 匿名访问时IsFollowing恒为false.
func (service *ChannelService) GetChannelById(channelId, viewerId int64) (*ChannelInfo, error) {
	user, err := db.GetUserById(service.ctx, channelId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.UserNotFoundErr
		}
		return nil, errno.DBErr
	}

	info := &ChannelInfo{
		UserId:          user.UserId,
		UserName:        user.UserName,
		Handle:          user.Handle,
		Description:     user.Description,
		Image:           user.Image,
		BackgroundImage: user.BackgroundImage,
		CreatedAt:       user.CreatedAt,
	}
	if info.FollowerCount, err = relationdb.GetFollowerCount(service.ctx, channelId); err != nil {
		return nil, errno.DBErr
	}
	if info.FollowingCount, err = relationdb.GetFollowingCount(service.ctx, channelId); err != nil {
		return nil, errno.DBErr
	}
	if info.VideoCount, err = videodb.CountVideosByUser(service.ctx, channelId); err != nil {
		return nil, errno.DBErr
	}
	if viewerId > 0 && viewerId != channelId {
		if info.IsFollowing, err = relationdb.IsFollowing(service.ctx, viewerId, channelId); err != nil {
			return nil, errno.DBErr
		}
	}
	return info, nil
}
