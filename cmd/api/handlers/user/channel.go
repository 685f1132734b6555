package handlers

import (
	"context"

	"VidHub.com/cmd/user/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetChannel 频道主页
func GetChannel(ctx context.Context, c *app.RequestContext) {
	var req ChannelParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	viewerId := jwt.ActorId(ctx, c)

	info, err := service.NewChannelService(ctx).GetChannelById(req.ChannelId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, info)
}

// UpdateProfile 更新个人资料
func UpdateProfile(ctx context.Context, c *app.RequestContext) {
	var req UpdateProfileParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	user, err := service.NewUserService(ctx).UpdateProfile(actorId, &service.ProfileParam{
		UserName:        req.UserName,
		Description:     req.Description,
		Handle:          req.Handle,
		Image:           req.Image,
		BackgroundImage: req.BackgroundImage,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
