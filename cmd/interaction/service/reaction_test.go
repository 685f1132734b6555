package service

import (
	"context"
	"strings"
	"testing"

	interactiondb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	playlistdb "VidHub.com/cmd/playlist/dal/db"
	userdb "VidHub.com/cmd/user/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"
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
	interactiondb.Init(db)
	videodb.Init(db)
	userdb.Init(db)
	playlistdb.Init(db)
}

func createVideo(t *testing.T, userId int64) int64 {
	t.Helper()
	video := &model.Video{
		VideoId: utils.NewID(),
		UserId:  userId,
		Title:   "test video",
		Publish: true,
	}
	require.NoError(t, videodb.CreateVideo(context.Background(), video))
	return video.VideoId
}

func TestSetVideoReaction(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewReactionService(ctx)
	videoId := createVideo(t, 9)

	t.Run("toggle and switch", func(t *testing.T) {
		state, err := service.SetVideoReaction(videoId, 1, model.EngagementLike)
		require.NoError(t, err)
		assert.Equal(t, model.EngagementLike, state)

		state, err = service.SetVideoReaction(videoId, 1, model.EngagementDislike)
		require.NoError(t, err)
		assert.Equal(t, model.EngagementDislike, state)

		state, err = service.SetVideoReaction(videoId, 1, model.EngagementDislike)
		require.NoError(t, err)
		assert.Equal(t, 0, state)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		_, err := service.SetVideoReaction(videoId, 0, model.EngagementLike)
		assert.Equal(t, errno.UnauthorizedErr, err)
	})

	t.Run("view is not a reaction", func(t *testing.T) {
		_, err := service.SetVideoReaction(videoId, 1, model.EngagementView)
		assert.Equal(t, errno.ParamErr, err)
	})

	t.Run("unknown video rejected", func(t *testing.T) {
		_, err := service.SetVideoReaction(424242, 1, model.EngagementLike)
		assert.Equal(t, errno.VideoNotFoundErr, err)
	})
}

func TestRecordView(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewViewService(ctx)
	videoId := createVideo(t, 9)

	t.Run("anonymous views count", func(t *testing.T) {
		count, err := service.RecordView(videoId, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = service.RecordView(videoId, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("logged-in view appends to history playlist", func(t *testing.T) {
		_, err := service.RecordView(videoId, 7)
		require.NoError(t, err)
		_, err = service.RecordView(videoId, 7)
		require.NoError(t, err)

		history, err := playlistdb.GetOrCreateHistory(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, model.PlaylistHistory, history.Kind)

		// 两次观看两条记录
		entries, err := playlistdb.CountPlaylistVideos(ctx, history.PlaylistId)
		require.NoError(t, err)
		assert.Equal(t, int64(2), entries)
	})

	t.Run("unknown video rejected", func(t *testing.T) {
		_, err := service.RecordView(424242, 1)
		assert.Equal(t, errno.VideoNotFoundErr, err)
	})
}

func TestAddComment(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewCommentService(ctx)
	videoId := createVideo(t, 9)

	require.NoError(t, userdb.CreateUser(ctx, &model.User{
		UserId: 7, UserName: "carol", Email: "carol@example.com", Password: "x",
	}))

	t.Run("too short rejected", func(t *testing.T) {
		_, err := service.AddComment(videoId, 7, "hi")
		require.Error(t, err)
		assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("newest first", func(t *testing.T) {
		_, err := service.AddComment(videoId, 7, "first comment")
		require.NoError(t, err)
		comments, err := service.AddComment(videoId, 7, "second comment")
		require.NoError(t, err)

		require.Len(t, comments, 2)
		assert.Equal(t, "second comment", comments[0].Message)
		assert.Equal(t, "carol", comments[0].UserName)
	})

	t.Run("length counted in runes", func(t *testing.T) {
		// 3个字9字节, 仍然太短
		_, err := service.AddComment(videoId, 7, strings.Repeat("好", 3))
		require.Error(t, err)
		assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)

		// 300个字900字节, 上限看字符数
		_, err = service.AddComment(videoId, 7, strings.Repeat("好", 300))
		require.NoError(t, err)
	})

	t.Run("delete own comment", func(t *testing.T) {
		comments, err := service.AddComment(videoId, 7, "delete me later")
		require.NoError(t, err)
		commentId := comments[0].CommentId

		err = service.DeleteComment(8, commentId)
		assert.Equal(t, errno.PermissionErr, err)

		require.NoError(t, service.DeleteComment(7, commentId))
		remaining, err := service.ListComments(videoId)
		require.NoError(t, err)
		for _, comment := range remaining {
			assert.NotEqual(t, commentId, comment.CommentId)
		}
	})

	t.Run("unknown comment", func(t *testing.T) {
		err := service.DeleteComment(7, 424242)
		assert.Equal(t, errno.CommentNotFoundErr, err)
	})
}
