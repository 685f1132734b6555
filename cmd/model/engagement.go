package model

import "time"

// 互动类型
const (
	EngagementLike    = 1
	EngagementDislike = 2
	EngagementView    = 3
	EngagementFollow  = 4
)

// IsReaction reports whether the kind participates in the like/dislike toggle.
func IsReaction(kind int) bool {
	return kind == EngagementLike || kind == EngagementDislike
}

// VideoEngagement
// 每行对应一次用户对视频的互动; VIEW行不去重, 匿名观看user_id为0.
// ReactionKey 仅在LIKE/DISLIKE行上等于video_id, VIEW行为NULL;
// uk_video_reaction 由此保证每个(视频,用户)至多一条LIKE/DISLIKE,
// 而NULL不参与唯一约束, VIEW行可以无限累积.
type VideoEngagement struct {
	Id             int64  `gorm:"primaryKey"`
	VideoId        int64  `gorm:"not null;index:idx_video_type,priority:10"`
	UserId         int64  `gorm:"not null;index:idx_user_type,priority:10;uniqueIndex:uk_video_reaction,priority:10"`
	EngagementType int    `gorm:"not null;index:idx_video_type,priority:20;index:idx_user_type,priority:20"`
	ReactionKey    *int64 `gorm:"uniqueIndex:uk_video_reaction,priority:20"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// AnnouncementEngagement 与VideoEngagement同构, 主体换成频道公告.
// 公告没有VIEW语义, 但保留同样的ReactionKey约束以防御重复行.
type AnnouncementEngagement struct {
	Id             int64  `gorm:"primaryKey"`
	AnnouncementId int64  `gorm:"not null;index:idx_announcement_type,priority:10"`
	UserId         int64  `gorm:"not null;uniqueIndex:uk_announcement_reaction,priority:10"`
	EngagementType int    `gorm:"not null;index:idx_announcement_type,priority:20"`
	ReactionKey    *int64 `gorm:"uniqueIndex:uk_announcement_reaction,priority:20"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
