package jwt

import (
	"context"
	"time"

	"VidHub.com/cmd/model"
	"VidHub.com/cmd/user/dal/db"
	"VidHub.com/config"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzjwt "github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var AuthMiddleware *hertzjwt.HertzJWTMiddleware

type loginParam struct {
	UserName string `form:"user_name" json:"user_name" vd:"len($)>0"`
	Password string `form:"password" json:"password" vd:"len($)>0"`
}

func Init() {
	var err error
	AuthMiddleware, err = hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:         "vidhub",
		Key:           []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:       time.Duration(config.ConfigInfo.Jwt.ExpireMinutes) * time.Minute,
		MaxRefresh:    time.Hour,
		IdentityKey:   IdentityKey,
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",

		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var req loginParam
			if err := c.BindAndValidate(&req); err != nil {
				return nil, hertzjwt.ErrMissingLoginValues
			}
			user, err := db.GetUserByName(ctx, req.UserName)
			if err != nil {
				return nil, hertzjwt.ErrFailedAuthentication
			}
			if !utils.VerifyPassword(req.Password, user.Password) {
				return nil, hertzjwt.ErrFailedAuthentication
			}
			return user, nil
		},
		PayloadFunc: func(data interface{}) hertzjwt.MapClaims {
			if user, ok := data.(*model.User); ok {
				return hertzjwt.MapClaims{IdentityKey: user.UserId}
			}
			return hertzjwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hertzjwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.SuccessCode,
				"message": "success",
				"data": map[string]interface{}{
					"token":  token,
					"expire": expire.Format(time.RFC3339),
				},
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.AuthErrCode,
				"message": message,
			})
		},
	})
	if err != nil {
		hlog.Fatalf("jwt middleware init failed: %v", err)
	}
}

// ActorId 从JWT声明里取当前用户id, 未登录返回0.
func ActorId(ctx context.Context, c *app.RequestContext) int64 {
	claims := hertzjwt.ExtractClaims(ctx, c)
	return utils.Transfer(claims[IdentityKey])
}
