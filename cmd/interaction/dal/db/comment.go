package db

import (
	"context"

	"VidHub.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Where("comment_id = ?", commentId).
		Delete(&model.Comment{}).Error
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).
		First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListCommentsByVideo 新评论在前, 同一毫秒内按id定序
func ListCommentsByVideo(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	list := make([]*model.Comment, 0)
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteCommentsByVideo 删除视频时连带清掉评论区
func DeleteCommentsByVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).
		Delete(&model.Comment{}).Error
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
