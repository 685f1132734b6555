package db

import (
	"context"
	"testing"

	"VidHub.com/cmd/model"
	"VidHub.com/pkg/database"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestToggleFollow(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	t.Run("follow then unfollow", func(t *testing.T) {
		following, err := ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, following)

		ok, err := IsFollowing(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, ok)

		row := &model.FollowEngagement{}
		require.NoError(t, DB.Where("follower_id = ? And following_id = ?", 1, 2).
			First(row).Error)
		assert.Equal(t, model.EngagementFollow, row.EngagementType)

		following, err = ToggleFollow(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, following)

		ok, err = IsFollowing(ctx, 1, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("direction matters", func(t *testing.T) {
		_, err := ToggleFollow(ctx, 3, 4)
		require.NoError(t, err)

		ok, err := IsFollowing(ctx, 4, 3)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFollowCounts(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	for _, followerId := range []int64{1, 2, 3} {
		_, err := ToggleFollow(ctx, followerId, 9)
		require.NoError(t, err)
	}
	_, err := ToggleFollow(ctx, 1, 8)
	require.NoError(t, err)

	followers, err := GetFollowerCount(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3), followers)

	following, err := GetFollowingCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), following)

	list, err := GetFollowerList(ctx, 9)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, list)

	channels, err := GetFollowingList(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{8, 9}, channels)
}
