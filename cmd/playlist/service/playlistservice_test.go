package service

import (
	"context"
	"testing"

	interactiondb "VidHub.com/cmd/interaction/dal/db"
	interactionservice "VidHub.com/cmd/interaction/service"
	"VidHub.com/cmd/model"
	playlistdb "VidHub.com/cmd/playlist/dal/db"
	userdb "VidHub.com/cmd/user/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/database"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// 内存库跟随连接, 池子收紧到单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	playlistdb.Init(db)
	interactiondb.Init(db)
	videodb.Init(db)
	userdb.Init(db)
}

func seedVideo(t *testing.T, title string) int64 {
	t.Helper()
	video := &model.Video{
		VideoId: utils.NewID(),
		UserId:  9,
		Title:   title,
		Publish: true,
	}
	require.NoError(t, videodb.CreateVideo(context.Background(), video))
	return video.VideoId
}

func TestCreatePlaylist(t *testing.T) {
	setup(t)
	service := NewPlaylistService(context.Background())

	playlist, err := service.CreatePlaylist(1, "watch later", "stuff", 0)
	require.NoError(t, err)
	assert.Equal(t, model.PlaylistNormal, playlist.Kind)
	assert.Nil(t, playlist.HistoryOwnerId)

	t.Run("reserved title rejected", func(t *testing.T) {
		_, err := service.CreatePlaylist(1, constants.HistoryPlaylistTitle, "", 0)
		require.Error(t, err)
		assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		_, err := service.CreatePlaylist(0, "x", "", 0)
		assert.Equal(t, errno.UnauthorizedErr, err)
	})

	t.Run("initial video saved", func(t *testing.T) {
		videoId := seedVideo(t, "seed")
		playlist, err := service.CreatePlaylist(1, "with video", "", videoId)
		require.NoError(t, err)
		detail, err := service.GetPlaylistById(playlist.PlaylistId)
		require.NoError(t, err)
		require.Len(t, detail.Videos, 1)
		assert.Equal(t, videoId, detail.Videos[0].VideoId)
	})
}

func TestSaveDialogFlow(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewPlaylistService(ctx)

	videoId := seedVideo(t, "v")
	favorites, err := service.CreatePlaylist(1, "favorites", "", 0)
	require.NoError(t, err)
	later, err := service.CreatePlaylist(1, "later", "", 0)
	require.NoError(t, err)

	require.NoError(t, service.SetVideoInPlaylist(1, favorites.PlaylistId, videoId, true))

	items, err := service.GetSaveDialog(1, videoId)
	require.NoError(t, err)
	require.Len(t, items, 2)
	byId := make(map[int64]bool, 2)
	for _, item := range items {
		byId[item.PlaylistId] = item.HasVideo
	}
	assert.True(t, byId[favorites.PlaylistId])
	assert.False(t, byId[later.PlaylistId])

	t.Run("uncheck removes", func(t *testing.T) {
		require.NoError(t, service.SetVideoInPlaylist(1, favorites.PlaylistId, videoId, false))
		items, err := service.GetSaveDialog(1, videoId)
		require.NoError(t, err)
		for _, item := range items {
			assert.False(t, item.HasVideo)
		}
	})

	t.Run("foreign playlist rejected", func(t *testing.T) {
		err := service.SetVideoInPlaylist(2, favorites.PlaylistId, videoId, true)
		assert.Equal(t, errno.PermissionErr, err)
	})
}

func TestGetHistory(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewPlaylistService(ctx)

	videoId := seedVideo(t, "watched")
	views := interactionservice.NewViewService(ctx)
	_, err := views.RecordView(videoId, 1)
	require.NoError(t, err)
	_, err = views.RecordView(videoId, 1)
	require.NoError(t, err)

	history, err := service.GetHistory(1)
	require.NoError(t, err)
	assert.Equal(t, constants.HistoryPlaylistTitle, history.Title)
	// 重复观看只出现一次
	require.Len(t, history.Videos, 1)
	assert.Equal(t, videoId, history.Videos[0].VideoId)

	t.Run("manual edit rejected", func(t *testing.T) {
		err := service.SetVideoInPlaylist(1, history.PlaylistId, videoId, true)
		assert.Equal(t, errno.PermissionErr, err)
	})

	t.Run("history not updatable", func(t *testing.T) {
		err := service.UpdatePlaylist(1, history.PlaylistId, "renamed", "")
		assert.Equal(t, errno.PermissionErr, err)
	})

	t.Run("history not deletable", func(t *testing.T) {
		err := service.DeletePlaylist(1, history.PlaylistId)
		assert.Equal(t, errno.PermissionErr, err)
	})
}

func TestGetPlaylistsByUser(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewPlaylistService(ctx)

	playlist, err := service.CreatePlaylist(1, "mix", "", 0)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		videoId := seedVideo(t, "v")
		require.NoError(t, service.SetVideoInPlaylist(1, playlist.PlaylistId, videoId, true))
	}

	t.Run("collapsed preview", func(t *testing.T) {
		list, err := service.GetPlaylistsByUser(1, false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(3), list[0].VideoCount)
		assert.Len(t, list[0].Videos, constants.CollapsedPlaylistPreview)
	})

	t.Run("expanded preview", func(t *testing.T) {
		list, err := service.GetPlaylistsByUser(1, true)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Len(t, list[0].Videos, 3)
	})

	t.Run("detail has all videos", func(t *testing.T) {
		detail, err := service.GetPlaylistById(playlist.PlaylistId)
		require.NoError(t, err)
		assert.Len(t, detail.Videos, 3)
	})
}

func TestUpdateAndDeletePlaylist(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewPlaylistService(ctx)

	playlist, err := service.CreatePlaylist(1, "old name", "", 0)
	require.NoError(t, err)

	require.NoError(t, service.UpdatePlaylist(1, playlist.PlaylistId, "new name", "desc"))
	detail, err := service.GetPlaylistById(playlist.PlaylistId)
	require.NoError(t, err)
	assert.Equal(t, "new name", detail.Title)

	err = service.UpdatePlaylist(2, playlist.PlaylistId, "hijack", "")
	assert.Equal(t, errno.PermissionErr, err)

	require.NoError(t, service.DeletePlaylist(1, playlist.PlaylistId))
	_, err = service.GetPlaylistById(playlist.PlaylistId)
	assert.Equal(t, errno.PlaylistNotFoundErr, err)
}
