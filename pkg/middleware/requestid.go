package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-ID"

// RequestId 没带请求id就补一个, 方便日志串联
func RequestId() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		requestId := string(c.GetHeader(RequestIdHeader))
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set("request_id", requestId)
		c.Header(RequestIdHeader, requestId)
		c.Next(ctx)
	}
}
