package handlers

import (
	"context"

	"VidHub.com/cmd/video/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// UploaderVideos 频道页视频列表
func UploaderVideos(ctx context.Context, c *app.RequestContext) {
	var req UploaderParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	viewerId := jwt.ActorId(ctx, c)

	videos, err := service.NewVideoListService(ctx).GetVideosByUploader(req.UserId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

// SearchVideos 关键词搜索
func SearchVideos(ctx context.Context, c *app.RequestContext) {
	var req SearchParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	videos, err := service.NewVideoListService(ctx).SearchVideos(req.Keyword)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

// VideoHistory 观看历史
func VideoHistory(ctx context.Context, c *app.RequestContext) {
	actorId := jwt.ActorId(ctx, c)

	videos, err := service.NewVideoListService(ctx).GetVideoHistory(actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}

// LikedVideos 点赞过的视频
func LikedVideos(ctx context.Context, c *app.RequestContext) {
	actorId := jwt.ActorId(ctx, c)

	videos, err := service.NewVideoListService(ctx).GetLikedVideos(actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
