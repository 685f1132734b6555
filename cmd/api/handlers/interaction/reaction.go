package handlers

import (
	"context"

	"VidHub.com/cmd/interaction/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// VideoReaction 点赞/点踩, 重复操作即取消
func VideoReaction(ctx context.Context, c *app.RequestContext) {
	var req ReactionParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxInfof(ctx, "bind reaction param failed: %v", err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	state, err := service.NewReactionService(ctx).SetVideoReaction(req.VideoId, actorId, req.ActionType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"reaction": state})
}

func AnnouncementReaction(ctx context.Context, c *app.RequestContext) {
	var req AnnouncementReactionParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	state, err := service.NewReactionService(ctx).SetAnnouncementReaction(req.AnnouncementId, actorId, req.ActionType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"reaction": state})
}
