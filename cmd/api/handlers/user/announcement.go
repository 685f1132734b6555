package handlers

import (
	"context"

	"VidHub.com/cmd/user/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// CreateAnnouncement 发布频道公告
func CreateAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req CreateAnnouncementParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	announcement, err := service.NewAnnouncementService(ctx).AddAnnouncement(actorId, req.Message)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, announcement)
}

// ListAnnouncements 频道公告流
func ListAnnouncements(ctx context.Context, c *app.RequestContext) {
	var req ListAnnouncementParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	viewerId := jwt.ActorId(ctx, c)

	announcements, err := service.NewAnnouncementService(ctx).ListAnnouncements(req.ChannelId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, announcements)
}

// DeleteAnnouncement 删除自己的公告
func DeleteAnnouncement(ctx context.Context, c *app.RequestContext) {
	var req DeleteAnnouncementParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	if err := service.NewAnnouncementService(ctx).DeleteAnnouncement(actorId, req.AnnouncementId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
