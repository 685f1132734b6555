package model

import "time"

type Comment struct {
	CommentId int64  `gorm:"primaryKey;autoIncrement:false"`
	VideoId   int64  `gorm:"not null;index:idx_comment_video"`
	UserId    int64  `gorm:"not null"`
	Message   string `gorm:"size:512;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
