package middleware

import (
	"context"

	"VidHub.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// OptionalAuth 公开接口也能识别登录用户, 解析失败按匿名放行.
// 把claims放进请求上下文, 之后jwt.ActorId照常工作.
func OptionalAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if len(c.GetHeader("Authorization")) > 0 || len(c.Query("token")) > 0 {
			if claims, err := jwt.AuthMiddleware.GetClaimsFromJWT(ctx, c); err == nil {
				c.Set("JWT_PAYLOAD", claims)
			}
		}
		c.Next(ctx)
	}
}
