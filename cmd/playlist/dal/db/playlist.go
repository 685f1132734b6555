package db

import (
	"context"

	"VidHub.com/cmd/model"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func GetPlaylistById(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).
		First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetOrCreateHistory 每个用户恰好一个观看历史列表.
// OnConflict DoNothing挡住并发创建, 没插进去就回读已有的那条.
func GetOrCreateHistory(ctx context.Context, userId int64) (*model.Playlist, error) {
	owner := userId
	playlist := &model.Playlist{
		PlaylistId:     utils.NewID(),
		UserId:         userId,
		Title:          constants.HistoryPlaylistTitle,
		Kind:           model.PlaylistHistory,
		HistoryOwnerId: &owner,
	}
	res := DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(playlist)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		existing := &model.Playlist{}
		if err := DB.WithContext(ctx).
			Where("history_owner_id = ?", userId).
			First(existing).Error; err != nil {
			return nil, err
		}
		return existing, nil
	}
	return playlist, nil
}

// ListPlaylistsByUser 普通列表, 观看历史单独入口
func ListPlaylistsByUser(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	list := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).
		Where("user_id = ? And kind = ?", userId, model.PlaylistNormal).
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, title, description string) error {
	return DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ? And kind = ?", playlistId, model.PlaylistNormal).
		Updates(map[string]interface{}{
			"title":       title,
			"description": description,
		}).Error
}

func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).
			Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).
			Delete(&model.Playlist{}).Error
	})
}

// AddVideoToPlaylist 普通列表条目, 重复添加静默忽略
func AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	key := videoId
	return DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PlaylistVideo{
			PlaylistId: playlistId,
			VideoId:    videoId,
			MemberKey:  &key,
		}).Error
}

// AppendHistoryEntry 历史条目不带MemberKey, 重复观看重复记行
func AppendHistoryEntry(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).Create(&model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
	}).Error
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).
		Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
}

// ListPlaylistVideoIds 加入时间倒序
func ListPlaylistVideoIds(ctx context.Context, playlistId int64, limit int) ([]int64, error) {
	list := make([]int64, 0)
	query := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Select("video_id").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListHistoryVideoIds 按最近一次观看倒序去重, 同一毫秒内按条目id定序
func ListHistoryVideoIds(ctx context.Context, playlistId int64, limit int) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Select("video_id").Group("video_id").
		Order("MAX(created_at) DESC, MAX(id) DESC").
		Limit(limit).Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func CountPlaylistVideos(ctx context.Context, playlistId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasVideoSaved 视频是否被用户收进任意普通列表, 观看历史不算收藏.
func HasVideoSaved(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Joins("JOIN playlists ON playlists.playlist_id = playlist_videos.playlist_id").
		Where("playlists.user_id = ? And playlists.kind = ? And playlist_videos.video_id = ?",
			userId, model.PlaylistNormal, videoId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPlaylistIdsContainingVideo 保存弹窗用, 标出视频已在哪些列表里
func ListPlaylistIdsContainingVideo(ctx context.Context, userId, videoId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Joins("JOIN playlists ON playlists.playlist_id = playlist_videos.playlist_id").
		Where("playlists.user_id = ? And playlists.kind = ? And playlist_videos.video_id = ?",
			userId, model.PlaylistNormal, videoId).
		Select("playlist_videos.playlist_id").
		Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RemoveVideoEverywhere 删除视频时从所有列表移除
func RemoveVideoEverywhere(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.PlaylistVideo{}).Error
}
