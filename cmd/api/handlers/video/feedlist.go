package handlers

import (
	"context"

	"VidHub.com/cmd/video/service"
	"VidHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// FeedList 发现页随机推荐
func FeedList(ctx context.Context, c *app.RequestContext) {
	var req FeedParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	videos, err := service.NewFeedService(ctx).GetRandomVideos(req.Count, req.ExcludeId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
