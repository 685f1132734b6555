package service

import (
	"context"
	"testing"

	"VidHub.com/cmd/model"
	relationdb "VidHub.com/cmd/relation/dal/db"
	userdb "VidHub.com/cmd/user/dal/db"
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
	relationdb.Init(db)
	userdb.Init(db)
}

func createUser(t *testing.T, name string) int64 {
	t.Helper()
	user := &model.User{
		UserId:   utils.NewID(),
		UserName: name,
		Email:    name + "@example.com",
		Handle:   "@" + name,
		Password: "x",
	}
	require.NoError(t, userdb.CreateUser(context.Background(), user))
	return user.UserId
}

func TestRelationService_ToggleFollow(t *testing.T) {
	setup(t)
	service := NewRelationService(context.Background())

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")

	t.Run("follow unfollow roundtrip", func(t *testing.T) {
		following, err := service.ToggleFollow(alice, bob)
		require.NoError(t, err)
		assert.True(t, following)

		following, err = service.ToggleFollow(alice, bob)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("self follow rejected", func(t *testing.T) {
		_, err := service.ToggleFollow(alice, alice)
		assert.Equal(t, errno.SelfFollowErr, err)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		_, err := service.ToggleFollow(0, bob)
		assert.Equal(t, errno.UnauthorizedErr, err)
	})

	t.Run("unknown channel rejected", func(t *testing.T) {
		_, err := service.ToggleFollow(alice, 424242)
		assert.Equal(t, errno.UserNotFoundErr, err)
	})
}

func TestRelationService_GetFollowingChannels(t *testing.T) {
	setup(t)
	service := NewRelationService(context.Background())

	alice := createUser(t, "alice")
	bob := createUser(t, "bob")
	carol := createUser(t, "carol")

	_, err := service.ToggleFollow(alice, bob)
	require.NoError(t, err)
	_, err = service.ToggleFollow(alice, carol)
	require.NoError(t, err)
	_, err = service.ToggleFollow(carol, bob)
	require.NoError(t, err)

	channels, err := service.GetFollowingChannels(alice)
	require.NoError(t, err)
	require.Len(t, channels, 2)

	byId := make(map[int64]int64, len(channels))
	for _, channel := range channels {
		byId[channel.UserId] = channel.FollowerCount
	}
	assert.Equal(t, int64(2), byId[bob])
	assert.Equal(t, int64(1), byId[carol])
}
