package handlers

import (
	"context"

	"VidHub.com/cmd/video/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// AddVideo 新建视频
func AddVideo(ctx context.Context, c *app.RequestContext) {
	var req UploadParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	video, err := service.NewVideoUploadService(ctx).AddVideo(actorId, &service.UploadParam{
		Title:        req.Title,
		Description:  req.Description,
		VideoUrl:     req.VideoUrl,
		ThumbnailUrl: req.ThumbnailUrl,
		Publish:      req.Publish,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// UpdateVideo 编辑元数据
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	var req UpdateVideoParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	video, err := service.NewVideoUploadService(ctx).UpdateVideo(actorId, req.VideoId, &service.UploadParam{
		Title:        req.Title,
		Description:  req.Description,
		VideoUrl:     req.VideoUrl,
		ThumbnailUrl: req.ThumbnailUrl,
		Publish:      req.Publish,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// DeleteVideo 删除视频及其互动数据
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	var req DeleteVideoParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	if err := service.NewVideoUploadService(ctx).DeleteVideo(actorId, req.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// Dashboard 创作者后台
func Dashboard(ctx context.Context, c *app.RequestContext) {
	actorId := jwt.ActorId(ctx, c)

	data, err := service.NewDashboardService(ctx).GetDashboardData(actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, data)
}
