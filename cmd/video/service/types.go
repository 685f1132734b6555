package service

import "time"

// UploaderInfo 视频卡片上的作者摘要
type UploaderInfo struct {
	UserId   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Handle   string `json:"handle"`
	Image    string `json:"image"`
}

// VideoBrief 列表页使用的视频卡片
type VideoBrief struct {
	VideoId      int64         `json:"video_id"`
	Title        string        `json:"title"`
	ThumbnailUrl string        `json:"thumbnail_url"`
	ViewCount    int64         `json:"view_count"`
	CreatedAt    time.Time     `json:"created_at"`
	Uploader     *UploaderInfo `json:"uploader,omitempty"`
}

// VideoDetail 播放页聚合: 元数据+计数+观看者标记
type VideoDetail struct {
	VideoId      int64         `json:"video_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	VideoUrl     string        `json:"video_url"`
	ThumbnailUrl string        `json:"thumbnail_url"`
	Publish      bool          `json:"publish"`
	CreatedAt    time.Time     `json:"created_at"`
	Uploader     *UploaderInfo `json:"uploader"`

	ViewCount     int64 `json:"view_count"`
	LikeCount     int64 `json:"like_count"`
	DislikeCount  int64 `json:"dislike_count"`
	CommentCount  int64 `json:"comment_count"`
	FollowerCount int64 `json:"follower_count"`

	// 观看者标记, 匿名时全为false
	HasLiked    bool `json:"has_liked"`
	HasDisliked bool `json:"has_disliked"`
	IsFollowing bool `json:"is_following"`
	HasSaved    bool `json:"has_saved"`
}
