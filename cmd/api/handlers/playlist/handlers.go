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

type CreatePlaylistParam struct {
	Title       string `form:"title" json:"title" vd:"len($)>0"`
	Description string `form:"description" json:"description"`
	VideoId     int64  `form:"video_id" json:"video_id"`
}

type PlaylistIdParam struct {
	PlaylistId int64 `query:"playlist_id" vd:"$>0"`
}

type UserPlaylistsParam struct {
	UserId   int64 `query:"user_id"`
	Expanded bool  `query:"expanded"`
}

type SaveDialogParam struct {
	VideoId int64 `query:"video_id" vd:"$>0"`
}

type SetVideoParam struct {
	PlaylistId int64 `form:"playlist_id" json:"playlist_id" vd:"$>0"`
	VideoId    int64 `form:"video_id" json:"video_id" vd:"$>0"`
	Save       bool  `form:"save" json:"save"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `form:"playlist_id" json:"playlist_id" vd:"$>0"`
	Title       string `form:"title" json:"title" vd:"len($)>0"`
	Description string `form:"description" json:"description"`
}

type DeletePlaylistParam struct {
	PlaylistId int64 `form:"playlist_id" json:"playlist_id" vd:"$>0"`
}
