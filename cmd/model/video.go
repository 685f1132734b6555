package model

import "time"

type Video struct {
	VideoId      int64  `gorm:"primaryKey;autoIncrement:false"`
	UserId       int64  `gorm:"not null;index:idx_video_user"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	VideoUrl     string `gorm:"size:512"`
	ThumbnailUrl string `gorm:"size:512"`
	Publish      bool   `gorm:"not null;default:false;index:idx_video_publish"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
