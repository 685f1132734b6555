package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"VidHub.com/cmd/interaction/dal/db"
	"VidHub.com/cmd/model"
	userdb "VidHub.com/cmd/user/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"
	"VidHub.com/pkg/constants"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
	"gorm.io/gorm"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

type CommentInfo struct {
	CommentId int64     `json:"comment_id"`
	VideoId   int64     `json:"video_id"`
	Message   string    `json:"message"`
	UserId    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserImage string    `json:"user_image"`
	CreatedAt time.Time `json:"created_at"`
}

// AddComment 发表后返回该视频的完整评论列表, 前端直接整体刷新.
func (service *CommentService) AddComment(videoId, actorId int64, message string) ([]*CommentInfo, error) {
	if actorId <= 0 {
		return nil, errno.UnauthorizedErr
	}
	message = strings.TrimSpace(message)
	// 按字符数算长度, 多字节文本不吃亏
	if length := utf8.RuneCountInString(message); length < constants.MinMessageLen || length > constants.MaxMessageLen {
		return nil, errno.ParamErr.WithMessage("comment length out of range")
	}
	if _, err := videodb.GetVideoById(service.ctx, videoId); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errno.VideoNotFoundErr
		}
		return nil, errno.DBErr
	}

	comment := &model.Comment{
		CommentId: utils.NewID(),
		VideoId:   videoId,
		UserId:    actorId,
		Message:   message,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		return nil, errno.DBErr
	}
	return service.ListComments(videoId)
}

// DeleteComment 只能删自己的评论
func (service *CommentService) DeleteComment(actorId, commentId int64) error {
	if actorId <= 0 {
		return errno.UnauthorizedErr
	}
	comment, err := db.GetCommentInfo(service.ctx, commentId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errno.CommentNotFoundErr
		}
		return errno.DBErr
	}
	if comment.UserId != actorId {
		return errno.PermissionErr
	}
	if err := db.DeleteComment(service.ctx, commentId); err != nil {
		return errno.DBErr
	}
	return nil
}

func (service *CommentService) ListComments(videoId int64) ([]*CommentInfo, error) {
	comments, err := db.ListCommentsByVideo(service.ctx, videoId)
	if err != nil {
		return nil, errno.DBErr
	}

	userIds := make([]int64, 0, len(comments))
	for _, comment := range comments {
		userIds = append(userIds, comment.UserId)
	}
	users, err := userdb.GetUsersByIds(service.ctx, userIds)
	if err != nil {
		return nil, errno.DBErr
	}
	userMap := make(map[int64]*model.User, len(users))
	for _, user := range users {
		userMap[user.UserId] = user
	}

	list := make([]*CommentInfo, 0, len(comments))
	for _, comment := range comments {
		info := &CommentInfo{
			CommentId: comment.CommentId,
			VideoId:   comment.VideoId,
			Message:   comment.Message,
			UserId:    comment.UserId,
			CreatedAt: comment.CreatedAt,
		}
		if user, ok := userMap[comment.UserId]; ok {
			info.UserName = user.UserName
			info.UserImage = user.Image
		}
		list = append(list, info)
	}
	return list, nil
}
