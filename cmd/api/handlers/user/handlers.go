package handlers

import (
	"VidHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type RegisterParam struct {
	UserName string `form:"user_name" json:"user_name" vd:"len($)>0"`
	Email    string `form:"email" json:"email" vd:"len($)>0"`
	Password string `form:"password" json:"password" vd:"len($)>5"`
}

type ChannelParam struct {
	ChannelId int64 `query:"channel_id" vd:"$>0"`
}

type UpdateProfileParam struct {
	UserName        string `form:"user_name" json:"user_name"`
	Description     string `form:"description" json:"description"`
	Handle          string `form:"handle" json:"handle"`
	Image           string `form:"image" json:"image"`
	BackgroundImage string `form:"background_image" json:"background_image"`
}

type CreateAnnouncementParam struct {
	Message string `form:"message" json:"message"`
}

type ListAnnouncementParam struct {
	ChannelId int64 `query:"channel_id" vd:"$>0"`
}

type DeleteAnnouncementParam struct {
	AnnouncementId int64 `form:"announcement_id" json:"announcement_id" vd:"$>0"`
}
