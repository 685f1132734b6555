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

type ReactionParam struct {
	VideoId    int64 `form:"video_id" json:"video_id" vd:"$>0"`
	ActionType int   `form:"action_type" json:"action_type" vd:"$==1||$==2"`
}

type AnnouncementReactionParam struct {
	AnnouncementId int64 `form:"announcement_id" json:"announcement_id" vd:"$>0"`
	ActionType     int   `form:"action_type" json:"action_type" vd:"$==1||$==2"`
}

type ViewParam struct {
	VideoId int64 `form:"video_id" json:"video_id" vd:"$>0"`
}

type CreateCommentParam struct {
	VideoId int64  `form:"video_id" json:"video_id" vd:"$>0"`
	Message string `form:"message" json:"message"`
}

type ListCommentParam struct {
	VideoId int64 `query:"video_id" vd:"$>0"`
}

type DeleteCommentParam struct {
	CommentId int64 `form:"comment_id" json:"comment_id" vd:"$>0"`
}
