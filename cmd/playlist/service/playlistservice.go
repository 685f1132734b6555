package service

import (
	"context"
	"strings"
	"time"

	"VidHub.com/cmd/model"
	"VidHub.com/cmd/playlist/dal/db"
	videoservice "VidHub.com/cmd/video/service"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
	"gorm.io/gorm"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

type PlaylistInfo struct {
	PlaylistId  int64     `json:"playlist_id"`
	UserId      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoCount  int64     `json:"video_count"`
	CreatedAt   time.Time `json:"created_at"`

	Videos []*videoservice.VideoBrief `json:"videos,omitempty"`
}

// CreatePlaylist videoId大于0时顺带把该视频收进新列表 (保存弹窗里新建).
func (service *PlaylistService) CreatePlaylist(actorId int64, title, description string, videoId int64) (*model.Playlist, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	title = strings.TrimSpace(title)
	if title == "" || len(title) > constants.MaxTitleLen {
		return nil, errno.ParamErr.WithMessage("invalid title")
	}
	// 历史列表由系统维护, 不允许撞名创建
	if title == constants.HistoryPlaylistTitle {
		return nil, errno.ParamErr.WithMessage("reserved title")
	}

	playlist := &model.Playlist{
		PlaylistId:  utils.NewID(),
		UserId:      actorId,
		Title:       title,
		Description: description,
		Kind:        model.PlaylistNormal,
	}
	if err := db.CreatePlaylist(service.ctx, playlist); err != nil {
		return nil, errno.DBErr
	}
	if videoId > 0 {
		if err := db.AddVideoToPlaylist(service.ctx, playlist.PlaylistId, videoId); err != nil {
			return nil, errno.DBErr
		}
	}
	return playlist, nil
}

// GetPlaylistsByUser 列表页: 每个列表带前几个视频做封面预览.
// expanded为true时预览取6个, 否则1个.
func (service *PlaylistService) GetPlaylistsByUser(userId int64, expanded bool) ([]*PlaylistInfo, error) {
	playlists, err := db.ListPlaylistsByUser(service.ctx, userId)
	if err != nil {
		return nil, errno.DBErr
	}

	preview := constants.CollapsedPlaylistPreview
	if expanded {
		preview = constants.ExpandedPlaylistPreview
	}

	list := make([]*PlaylistInfo, 0, len(playlists))
	for _, playlist := range playlists {
		info, err := service.playlistInfo(playlist, preview)
		if err != nil {
			return nil, err
		}
		list = append(list, info)
	}
	return list, nil
}

// GetPlaylistById 详情页: 全部视频.
func (service *PlaylistService) GetPlaylistById(playlistId int64) (*PlaylistInfo, error) {
	playlist, err := db.GetPlaylistById(service.ctx, playlistId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.PlaylistNotFoundErr
		}
		return nil, errno.DBErr
	}
	return service.playlistInfo(playlist, 0)
}

// GetHistory 观看历史页. 列表本身惰性创建, 条目每次观看各记一行,
// 这里去重并按最近观看排序.
func (service *PlaylistService) GetHistory(actorId int64) (*PlaylistInfo, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	playlist, err := db.GetOrCreateHistory(service.ctx, actorId)
	if err != nil {
		return nil, errno.DBErr
	}

	videoIds, err := db.ListHistoryVideoIds(service.ctx, playlist.PlaylistId, constants.HistoryListLimit)
	if err != nil {
		return nil, errno.DBErr
	}
	videos, err := videoservice.NewVideoListService(service.ctx).GetVideosByIdsInOrder(videoIds)
	if err != nil {
		return nil, err
	}
	return &PlaylistInfo{
		PlaylistId: playlist.PlaylistId,
		UserId:     playlist.UserId,
		Title:      playlist.Title,
		VideoCount: int64(len(videos)),
		CreatedAt:  playlist.CreatedAt,
		Videos:     videos,
	}, nil
}

type SaveDialogItem struct {
	PlaylistId int64  `json:"playlist_id"`
	Title      string `json:"title"`
	HasVideo   bool   `json:"has_video"`
}

// GetSaveDialog 保存弹窗: 用户的普通列表, 标出视频已在哪些里面.
func (service *PlaylistService) GetSaveDialog(actorId, videoId int64) ([]*SaveDialogItem, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	playlists, err := db.ListPlaylistsByUser(service.ctx, actorId)
	if err != nil {
		return nil, errno.DBErr
	}
	containing, err := db.ListPlaylistIdsContainingVideo(service.ctx, actorId, videoId)
	if err != nil {
		return nil, errno.DBErr
	}
	containingSet := make(map[int64]bool, len(containing))
	for _, playlistId := range containing {
		containingSet[playlistId] = true
	}

	list := make([]*SaveDialogItem, 0, len(playlists))
	for _, playlist := range playlists {
		list = append(list, &SaveDialogItem{
			PlaylistId: playlist.PlaylistId,
			Title:      playlist.Title,
			HasVideo:   containingSet[playlist.PlaylistId],
		})
	}
	return list, nil
}

// SetVideoInPlaylist 勾选/取消勾选保存弹窗里的一项.
func (service *PlaylistService) SetVideoInPlaylist(actorId, playlistId, videoId int64, save bool) error {
	playlist, err := service.ownedPlaylist(actorId, playlistId)
	if err != nil {
		return err
	}
	// 历史列表内容由观看记录推导, 不接受手工增删
	if playlist.Kind != model.PlaylistNormal {
		return errno.PermissionErr
	}

	if save {
		if err := db.AddVideoToPlaylist(service.ctx, playlistId, videoId); err != nil {
			return errno.DBErr
		}
		return nil
	}
	if err := db.RemoveVideoFromPlaylist(service.ctx, playlistId, videoId); err != nil {
		return errno.DBErr
	}
	return nil
}

func (service *PlaylistService) UpdatePlaylist(actorId, playlistId int64, title, description string) error {
	playlist, err := service.ownedPlaylist(actorId, playlistId)
	if err != nil {
		return err
	}
	if playlist.Kind != model.PlaylistNormal {
		return errno.PermissionErr
	}
	title = strings.TrimSpace(title)
	if title == "" || len(title) > constants.MaxTitleLen {
		return errno.ParamErr.WithMessage("invalid title")
	}
	if err := db.UpdatePlaylist(service.ctx, playlistId, title, description); err != nil {
		return errno.DBErr
	}
	return nil
}

func (service *PlaylistService) DeletePlaylist(actorId, playlistId int64) error {
	playlist, err := service.ownedPlaylist(actorId, playlistId)
	if err != nil {
		return err
	}
	if playlist.Kind != model.PlaylistNormal {
		return errno.PermissionErr
	}
	if err := db.DeletePlaylist(service.ctx, playlistId); err != nil {
		return errno.DBErr
	}
	return nil
}

func (service *PlaylistService) ownedPlaylist(actorId, playlistId int64) (*model.Playlist, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	playlist, err := db.GetPlaylistById(service.ctx, playlistId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.PlaylistNotFoundErr
		}
		return nil, errno.DBErr
	}
	if playlist.UserId != actorId {
		return nil, errno.PermissionErr
	}
	return playlist, nil
}

func (service *PlaylistService) playlistInfo(playlist *model.Playlist, preview int) (*PlaylistInfo, error) {
	info := &PlaylistInfo{
		PlaylistId:  playlist.PlaylistId,
		UserId:      playlist.UserId,
		Title:       playlist.Title,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
	}
	count, err := db.CountPlaylistVideos(service.ctx, playlist.PlaylistId)
	if err != nil {
		return nil, errno.DBErr
	}
	info.VideoCount = count

	videoIds, err := db.ListPlaylistVideoIds(service.ctx, playlist.PlaylistId, preview)
	if err != nil {
		return nil, errno.DBErr
	}
	videos, err := videoservice.NewVideoListService(service.ctx).GetVideosByIdsInOrder(videoIds)
	if err != nil {
		return nil, err
	}
	info.Videos = videos
	return info, nil
}
