package main

import (
	"context"
	"fmt"

	interactiondb "VidHub.com/cmd/interaction/dal/db"
	playlistdb "VidHub.com/cmd/playlist/dal/db"
	relationdb "VidHub.com/cmd/relation/dal/db"
	userdb "VidHub.com/cmd/user/dal/db"
	videodb "VidHub.com/cmd/video/dal/db"

	"VidHub.com/cmd/api/router"
	"VidHub.com/config"
	"VidHub.com/pkg/cache"
	"VidHub.com/pkg/database"
	"VidHub.com/pkg/errno"
	"VidHub.com/pkg/jwt"
	"VidHub.com/pkg/middleware"
	"VidHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()

	if err := utils.InitSnowflake(config.ConfigInfo.Id.WorkerID, config.ConfigInfo.Id.DatacenterID); err != nil {
		logrus.Fatalf("init snowflake failed: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		logrus.Fatalf("init database failed: %v", err)
	}
	interactiondb.Init(db)
	relationdb.Init(db)
	videodb.Init(db)
	userdb.Init(db)
	playlistdb.Init(db)

	cache.Init()
	jwt.Init()
}

func main() {
	Init()
	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
	)

	r.Use(middleware.RequestId())

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
			})
		})))

	// 注册路由
	router.Register(r)

	r.Spin()
}
