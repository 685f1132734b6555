package handlers

import (
	"context"

	"VidHub.com/cmd/user/service"
	"VidHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Register 注册新用户
func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.BindAndValidate(&req); err != nil {
		hlog.CtxInfof(ctx, "bind register param failed: %v", err)
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	user, err := service.NewUserService(ctx).CreateUser(req.UserName, req.Email, req.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
