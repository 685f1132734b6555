package handlers

import (
	"context"

	"VidHub.com/cmd/video/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetVideo 播放页聚合数据
func GetVideo(ctx context.Context, c *app.RequestContext) {
	var req VideoIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	viewerId := jwt.ActorId(ctx, c)

	detail, err := service.NewVideoInfoService(ctx).GetVideoById(req.VideoId, viewerId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, detail)
}
