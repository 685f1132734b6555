package model

import "time"

type Announcement struct {
	AnnouncementId int64  `gorm:"primaryKey;autoIncrement:false"`
	UserId         int64  `gorm:"not null;index:idx_announcement_user"`
	Message        string `gorm:"size:512;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
