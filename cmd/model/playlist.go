package model

import "time"

// 播放列表种类
const (
	PlaylistNormal  = 0
	PlaylistHistory = 1
)

// Playlist HistoryOwnerId仅在Kind为History时等于UserId, 普通列表为NULL,
// uk_history_owner由此保证每个用户至多一个历史列表.
type Playlist struct {
	PlaylistId     int64  `gorm:"primaryKey;autoIncrement:false"`
	UserId         int64  `gorm:"not null;index:idx_playlist_user"`
	Title          string `gorm:"size:255;not null"`
	Description    string `gorm:"size:1024"`
	Kind           int    `gorm:"not null;default:0"`
	HistoryOwnerId *int64 `gorm:"uniqueIndex:uk_history_owner"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// PlaylistVideo 列表与视频的多对多.
// MemberKey 仅在普通列表条目上等于video_id, uk_playlist_member由此保证
// 同一视频同一列表只存一行; 历史条目为NULL, 每次观看各记一行, 去重在读取侧.
type PlaylistVideo struct {
	Id         int64  `gorm:"primaryKey"`
	PlaylistId int64  `gorm:"not null;uniqueIndex:uk_playlist_member,priority:10"`
	VideoId    int64  `gorm:"not null;index:idx_pv_video"`
	MemberKey  *int64 `gorm:"uniqueIndex:uk_playlist_member,priority:20"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
