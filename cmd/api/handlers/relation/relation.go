package handlers

import (
	"context"

	"VidHub.com/cmd/relation/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// FollowAction 关注/取关切换
func FollowAction(ctx context.Context, c *app.RequestContext) {
	var req FollowParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	following, err := service.NewRelationService(ctx).ToggleFollow(actorId, req.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"following": following})
}

// FollowingList 我关注的频道
func FollowingList(ctx context.Context, c *app.RequestContext) {
	var req FollowingListParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	userId := req.UserId
	if userId <= 0 {
		userId = jwt.ActorId(ctx, c)
	}
	if userId <= 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	channels, err := service.NewRelationService(ctx).GetFollowingChannels(userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channels)
}
