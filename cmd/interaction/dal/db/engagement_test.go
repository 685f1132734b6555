package db

import (
	"context"
	"testing"
	"time"

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

func TestToggleVideoReaction(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	t.Run("like then unlike", func(t *testing.T) {
		state, err := ToggleVideoReaction(ctx, 100, 1, model.EngagementLike)
		require.NoError(t, err)
		assert.Equal(t, model.EngagementLike, state)

		count, err := CountVideoEngagements(ctx, 100, model.EngagementLike)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		state, err = ToggleVideoReaction(ctx, 100, 1, model.EngagementLike)
		require.NoError(t, err)
		assert.Equal(t, 0, state)

		count, err = CountVideoEngagements(ctx, 100, model.EngagementLike)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("like then dislike switches", func(t *testing.T) {
		_, err := ToggleVideoReaction(ctx, 200, 1, model.EngagementLike)
		require.NoError(t, err)
		state, err := ToggleVideoReaction(ctx, 200, 1, model.EngagementDislike)
		require.NoError(t, err)
		assert.Equal(t, model.EngagementDislike, state)

		likes, err := CountVideoEngagements(ctx, 200, model.EngagementLike)
		require.NoError(t, err)
		dislikes, err2 := CountVideoEngagements(ctx, 200, model.EngagementDislike)
		require.NoError(t, err2)
		assert.Equal(t, int64(0), likes)
		assert.Equal(t, int64(1), dislikes)
	})

	t.Run("reactions are per user", func(t *testing.T) {
		_, err := ToggleVideoReaction(ctx, 300, 1, model.EngagementLike)
		require.NoError(t, err)
		_, err = ToggleVideoReaction(ctx, 300, 2, model.EngagementLike)
		require.NoError(t, err)

		count, err := CountVideoEngagements(ctx, 300, model.EngagementLike)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("reaction does not touch view rows", func(t *testing.T) {
		require.NoError(t, CreateVideoView(ctx, 400, 1))
		_, err := ToggleVideoReaction(ctx, 400, 1, model.EngagementLike)
		require.NoError(t, err)
		_, err = ToggleVideoReaction(ctx, 400, 1, model.EngagementLike)
		require.NoError(t, err)

		views, err := CountVideoEngagements(ctx, 400, model.EngagementView)
		require.NoError(t, err)
		assert.Equal(t, int64(1), views)
	})
}

func TestGetVideoReaction(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	kind, err := GetVideoReaction(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, kind)

	_, err = ToggleVideoReaction(ctx, 100, 1, model.EngagementDislike)
	require.NoError(t, err)

	kind, err = GetVideoReaction(ctx, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, model.EngagementDislike, kind)
}

func TestCreateVideoView(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	t.Run("repeat views accumulate", func(t *testing.T) {
		require.NoError(t, CreateVideoView(ctx, 100, 1))
		require.NoError(t, CreateVideoView(ctx, 100, 1))
		require.NoError(t, CreateVideoView(ctx, 100, 0))

		count, err := CountVideoEngagements(ctx, 100, model.EngagementView)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}

func TestListViewedVideoIds(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	insertView := func(videoId int64, at time.Time) {
		require.NoError(t, DB.Create(&model.VideoEngagement{
			VideoId:        videoId,
			UserId:         1,
			EngagementType: model.EngagementView,
			CreatedAt:      at,
		}).Error)
	}

	// 视频10看了两次, 第二次最近; 视频20在中间
	insertView(10, base)
	insertView(20, base.Add(10*time.Minute))
	insertView(10, base.Add(20*time.Minute))

	list, err := ListViewedVideoIds(ctx, 1, 60)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, list)

	t.Run("limit applies after dedup", func(t *testing.T) {
		list, err := ListViewedVideoIds(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{10}, list)
	})

	t.Run("other users invisible", func(t *testing.T) {
		list, err := ListViewedVideoIds(ctx, 2, 60)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestToggleAnnouncementReaction(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	state, err := ToggleAnnouncementReaction(ctx, 500, 1, model.EngagementLike)
	require.NoError(t, err)
	assert.Equal(t, model.EngagementLike, state)

	state, err = ToggleAnnouncementReaction(ctx, 500, 1, model.EngagementDislike)
	require.NoError(t, err)
	assert.Equal(t, model.EngagementDislike, state)

	state, err = ToggleAnnouncementReaction(ctx, 500, 1, model.EngagementDislike)
	require.NoError(t, err)
	assert.Equal(t, 0, state)

	count, err := CountAnnouncementEngagements(ctx, 500, model.EngagementDislike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestListLikedVideoIds(t *testing.T) {
	Init(newTestDB(t))
	ctx := context.Background()

	_, err := ToggleVideoReaction(ctx, 10, 1, model.EngagementLike)
	require.NoError(t, err)
	_, err = ToggleVideoReaction(ctx, 20, 1, model.EngagementDislike)
	require.NoError(t, err)
	_, err = ToggleVideoReaction(ctx, 30, 1, model.EngagementLike)
	require.NoError(t, err)

	list, err := ListLikedVideoIds(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 30}, list)
}
