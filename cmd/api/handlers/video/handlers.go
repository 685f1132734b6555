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

type VideoIdParam struct {
	VideoId int64 `query:"video_id" vd:"$>0"`
}

type FeedParam struct {
	Count     int   `query:"count"`
	ExcludeId int64 `query:"exclude_id"`
}

type UploaderParam struct {
	UserId int64 `query:"user_id" vd:"$>0"`
}

type SearchParam struct {
	Keyword string `query:"keyword"`
}

type UploadParam struct {
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	VideoUrl     string `form:"video_url" json:"video_url"`
	ThumbnailUrl string `form:"thumbnail_url" json:"thumbnail_url"`
	Publish      bool   `form:"publish" json:"publish"`
}

type UpdateVideoParam struct {
	VideoId      int64  `form:"video_id" json:"video_id" vd:"$>0"`
	Title        string `form:"title" json:"title"`
	Description  string `form:"description" json:"description"`
	VideoUrl     string `form:"video_url" json:"video_url"`
	ThumbnailUrl string `form:"thumbnail_url" json:"thumbnail_url"`
	Publish      bool   `form:"publish" json:"publish"`
}

type DeleteVideoParam struct {
	VideoId int64 `form:"video_id" json:"video_id" vd:"$>0"`
}
