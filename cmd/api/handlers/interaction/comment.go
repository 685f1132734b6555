package handlers

import (
	"context"

	"VidHub.com/cmd/interaction/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// CreateComment 发评论, 返回最新的完整评论列表
func CreateComment(ctx context.Context, c *app.RequestContext) {
	var req CreateCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	comments, err := service.NewCommentService(ctx).AddComment(req.VideoId, actorId, req.Message)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comments)
}

// DeleteComment 删自己的评论
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var req DeleteCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	if err := service.NewCommentService(ctx).DeleteComment(actorId, req.CommentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	var req ListCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	comments, err := service.NewCommentService(ctx).ListComments(req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comments)
}
