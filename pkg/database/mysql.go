package database

import (
	"VidHub.com/cmd/model"
	"VidHub.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 连接MySQL并建表. TranslateError把驱动的重复键错误
// 统一成gorm.ErrDuplicatedKey, 上层toggle逻辑依赖这一点.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(utils.GetMysqlDsn()), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql failed")
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.VideoEngagement{},
		&model.AnnouncementEngagement{},
		&model.FollowEngagement{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Comment{},
		&model.Announcement{},
	)
	if err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}
	return nil
}
