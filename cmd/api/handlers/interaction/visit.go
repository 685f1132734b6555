package handlers

import (
	"context"

	"VidHub.com/cmd/interaction/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// AddViewCount 播放上报, 匿名也计数
func AddViewCount(ctx context.Context, c *app.RequestContext) {
	var req ViewParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	count, err := service.NewViewService(ctx).RecordView(req.VideoId, actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"view_count": count})
}
