package middleware

import (
	"context"
	"fmt"
	"time"

	"VidHub.com/pkg/cache"
	"VidHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// RateLimit 固定窗口限流, 以客户端IP为key.
// redis不可用时直通, 限流失效好过接口全挂.
func RateLimit(maxRequests int64, window time.Duration) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if cache.Client == nil {
			c.Next(ctx)
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(window.Seconds()))
		count, err := cache.Client.Incr(ctx, key).Result()
		if err != nil {
			hlog.Warnf("ratelimit incr failed: %v", err)
			c.Next(ctx)
			return
		}
		if count == 1 {
			cache.Client.Expire(ctx, key, window)
		}
		if count > maxRequests {
			c.AbortWithStatusJSON(consts.StatusTooManyRequests, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": "too many requests",
			})
			return
		}
		c.Next(ctx)
	}
}
