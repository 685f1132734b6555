package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode      = int64(0)
	ServiceErrCode   = int64(10001)
	ParamErrCode     = int64(10002)
	NotFoundErrCode  = int64(10003)
	AuthErrCode      = int64(10004)
	ConflictErrCode  = int64(10005)
	DBErrCode        = int64(10006)
	PermissionCode   = int64(10007)
	UserExistErrCode = int64(10008)
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success         = NewErrNo(SuccessCode, "Success")
	ServiceErr      = NewErrNo(ServiceErrCode, "Service is unable to handle the request")
	ParamErr        = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	NotFoundErr     = NewErrNo(NotFoundErrCode, "Record not found")
	UnauthorizedErr = NewErrNo(AuthErrCode, "Authentication is required")
	ConflictErr     = NewErrNo(ConflictErrCode, "Record already exists")
	DBErr           = NewErrNo(DBErrCode, "Datastore unavailable")
	PermissionErr   = NewErrNo(PermissionCode, "No permission to operate on this resource")
	UserExistErr    = NewErrNo(UserExistErrCode, "User already exists")

	VideoNotFoundErr        = NewErrNo(NotFoundErrCode, "Video not found")
	AnnouncementNotFoundErr = NewErrNo(NotFoundErrCode, "Announcement not found")
	UserNotFoundErr         = NewErrNo(NotFoundErrCode, "User not found")
	PlaylistNotFoundErr     = NewErrNo(NotFoundErrCode, "Playlist not found")
	CommentNotFoundErr      = NewErrNo(NotFoundErrCode, "Comment not found")
	SelfFollowErr           = NewErrNo(ParamErrCode, "Cannot follow yourself")
)

// ConvertErr converts a plain error into an ErrNo; unrecognized errors are
// reported as ServiceErr with the original message attached.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	e := ErrNo{}
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}
