package model

import "time"

type User struct {
	UserId          int64  `gorm:"primaryKey;autoIncrement:false"`
	UserName        string `gorm:"size:64;not null;uniqueIndex:uk_user_name"`
	Email           string `gorm:"size:128;not null;uniqueIndex:uk_user_email"`
	Password        string `gorm:"size:128;not null"`
	Description     string `gorm:"size:1024"`
	Handle          string `gorm:"size:64;uniqueIndex:uk_user_handle"`
	Image           string `gorm:"size:512"`
	BackgroundImage string `gorm:"size:512"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
