package handlers

import (
	"context"

	"VidHub.com/cmd/playlist/service"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// CreatePlaylist 新建普通播放列表
func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req CreatePlaylistParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(actorId, req.Title, req.Description, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

// UserPlaylists 某用户的播放列表, 带封面预览
func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	var req UserPlaylistsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	userId := req.UserId
	if userId <= 0 {
		userId = jwt.ActorId(ctx, c)
	}
	if userId <= 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	playlists, err := service.NewPlaylistService(ctx).GetPlaylistsByUser(userId, req.Expanded)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

// PlaylistDetail 单个列表全部视频
func PlaylistDetail(ctx context.Context, c *app.RequestContext) {
	var req PlaylistIdParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).GetPlaylistById(req.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

// History 观看历史页
func History(ctx context.Context, c *app.RequestContext) {
	actorId := jwt.ActorId(ctx, c)

	playlist, err := service.NewPlaylistService(ctx).GetHistory(actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

// SaveDialog 保存视频弹窗数据
func SaveDialog(ctx context.Context, c *app.RequestContext) {
	var req SaveDialogParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	items, err := service.NewPlaylistService(ctx).GetSaveDialog(actorId, req.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, items)
}

// SetVideoInPlaylist 保存/移除视频
func SetVideoInPlaylist(ctx context.Context, c *app.RequestContext) {
	var req SetVideoParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	if err := service.NewPlaylistService(ctx).SetVideoInPlaylist(actorId, req.PlaylistId, req.VideoId, req.Save); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// UpdatePlaylist 编辑标题和描述
func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var req UpdatePlaylistParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	if err := service.NewPlaylistService(ctx).UpdatePlaylist(actorId, req.PlaylistId, req.Title, req.Description); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// DeletePlaylist 删除列表及其条目
func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var req DeletePlaylistParam
	if err := c.BindAndValidate(&req); err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	actorId := jwt.ActorId(ctx, c)

	if err := service.NewPlaylistService(ctx).DeletePlaylist(actorId, req.PlaylistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
