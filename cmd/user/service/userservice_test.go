package service

import (
	"context"
	"strings"
	"testing"

	interactiondb "VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	relationdb "VidHub.com/cmd/relation/dal/db"
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
	userdb.Init(db)
	relationdb.Init(db)
	videodb.Init(db)
	interactiondb.Init(db)
}

func TestCreateUser(t *testing.T) {
	setup(t)
	service := NewUserService(context.Background())

	t.Run("register", func(t *testing.T) {
		user, err := service.CreateUser("alice", "alice@example.com", "secret123")
		require.NoError(t, err)
		assert.NotZero(t, user.UserId)
		assert.Equal(t, "@alice", user.Handle)
		assert.Empty(t, user.Password)

		// 库里存的是bcrypt散列
		stored, err := userdb.GetUserByName(context.Background(), "alice")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.True(t, utils.VerifyPassword("secret123", stored.Password))
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		_, err := service.CreateUser("alice", "other@example.com", "secret123")
		assert.Equal(t, errno.UserExistErr, err)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := service.CreateUser("bob", "bob@example.com", "123")
		assert.Equal(t, errno.ParamErr, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	setup(t)
	ctx := context.Background()
	service := NewUserService(ctx)

	user, err := service.CreateUser("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	updated, err := service.UpdateProfile(user.UserId, &ProfileParam{
		UserName:    "alice2",
		Description: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.UserName)
	assert.Equal(t, "hello", updated.Description)

	_, err = service.UpdateProfile(0, &ProfileParam{UserName: "x"})
	assert.Equal(t, errno.UnauthorizedErr, err)
}

func TestGetChannelById(t *testing.T) {
	setup(t)
	ctx := context.Background()
	userService := NewUserService(ctx)

	channel, err := userService.CreateUser("channel", "channel@example.com", "secret123")
	require.NoError(t, err)
	viewer, err := userService.CreateUser("viewer", "viewer@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, videodb.CreateVideo(ctx, &model.Video{
		VideoId: utils.NewID(), UserId: channel.UserId, Title: "v", Publish: true,
	}))
	_, err = relationdb.ToggleFollow(ctx, viewer.UserId, channel.UserId)
	require.NoError(t, err)

	t.Run("viewer sees following flag", func(t *testing.T) {
		info, err := NewChannelService(ctx).GetChannelById(channel.UserId, viewer.UserId)
		require.NoError(t, err)
		assert.Equal(t, int64(1), info.FollowerCount)
		assert.Equal(t, int64(1), info.VideoCount)
		assert.True(t, info.IsFollowing)
	})

	t.Run("anonymous gets no flag", func(t *testing.T) {
		info, err := NewChannelService(ctx).GetChannelById(channel.UserId, 0)
		require.NoError(t, err)
		assert.False(t, info.IsFollowing)
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := NewChannelService(ctx).GetChannelById(424242, 0)
		assert.Equal(t, errno.UserNotFoundErr, err)
	})
}

func TestAnnouncements(t *testing.T) {
	setup(t)
	ctx := context.Background()
	userService := NewUserService(ctx)

	channel, err := userService.CreateUser("channel", "channel@example.com", "secret123")
	require.NoError(t, err)
	viewer, err := userService.CreateUser("viewer", "viewer@example.com", "secret123")
	require.NoError(t, err)

	service := NewAnnouncementService(ctx)

	announcement, err := service.AddAnnouncement(channel.UserId, "new video on friday")
	require.NoError(t, err)

	_, err = interactiondb.ToggleAnnouncementReaction(ctx, announcement.AnnouncementId, viewer.UserId, model.EngagementLike)
	require.NoError(t, err)

	t.Run("list with viewer flags", func(t *testing.T) {
		list, err := service.ListAnnouncements(channel.UserId, viewer.UserId)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(1), list[0].LikeCount)
		assert.True(t, list[0].HasLiked)
		assert.False(t, list[0].HasDisliked)
	})

	t.Run("anonymous list", func(t *testing.T) {
		list, err := service.ListAnnouncements(channel.UserId, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.False(t, list[0].HasLiked)
	})

	t.Run("too short rejected", func(t *testing.T) {
		_, err := service.AddAnnouncement(channel.UserId, "hey")
		require.Error(t, err)
		assert.Equal(t, errno.ParamErrCode, errno.ConvertErr(err).ErrCode)
	})

	t.Run("length counted in runes", func(t *testing.T) {
		// 300个字900字节, 上限看字符数
		_, err := service.AddAnnouncement(channel.UserId, strings.Repeat("好", 300))
		require.NoError(t, err)
	})

	t.Run("only owner deletes", func(t *testing.T) {
		err := service.DeleteAnnouncement(viewer.UserId, announcement.AnnouncementId)
		assert.Equal(t, errno.PermissionErr, err)
		require.NoError(t, service.DeleteAnnouncement(channel.UserId, announcement.AnnouncementId))
	})
}
