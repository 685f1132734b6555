package model

import "time"

// FollowEngagement 关注关系, (follower, following)唯一.
// 取关即删行, 不做软删除. engagement_type恒为FOLLOW, 与其他互动表同构.
type FollowEngagement struct {
	Id             int64 `gorm:"primaryKey"`
	FollowerId     int64 `gorm:"not null;uniqueIndex:uk_follow,priority:10"`
	FollowingId    int64 `gorm:"not null;uniqueIndex:uk_follow,priority:20;index:idx_following"`
	EngagementType int   `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
