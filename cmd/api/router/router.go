package router

import (
	"time"

	interaction "VidHub.com/cmd/api/handlers/interaction"
	playlist "VidHub.com/cmd/api/handlers/playlist"
	relation "VidHub.com/cmd/api/handlers/relation"
	user "VidHub.com/cmd/api/handlers/user"
	video "VidHub.com/cmd/api/handlers/video"
	"VidHub.com/pkg/jwt"
	"VidHub.com/pkg/middleware"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register 公开接口带可选鉴权, 写接口必须登录.
func Register(r *server.Hertz) {
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))

	auth := jwt.AuthMiddleware.MiddlewareFunc()
	optional := middleware.OptionalAuth()

	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", jwt.AuthMiddleware.LoginHandler)
		userGroup.GET("/channel", optional, user.GetChannel)
		userGroup.POST("/profile", auth, user.UpdateProfile)
	}

	announcementGroup := api.Group("/announcement")
	{
		announcementGroup.GET("/list", optional, user.ListAnnouncements)
		announcementGroup.POST("/create", auth, user.CreateAnnouncement)
		announcementGroup.POST("/delete", auth, user.DeleteAnnouncement)
		announcementGroup.POST("/reaction", auth, interaction.AnnouncementReaction)
	}

	videoGroup := api.Group("/video")
	{
		videoGroup.GET("/info", optional, video.GetVideo)
		videoGroup.GET("/feed", optional, video.FeedList)
		videoGroup.GET("/search", optional, video.SearchVideos)
		videoGroup.GET("/uploader", optional, video.UploaderVideos)
		videoGroup.GET("/history", auth, video.VideoHistory)
		videoGroup.GET("/liked", auth, video.LikedVideos)
		videoGroup.GET("/dashboard", auth, video.Dashboard)
		videoGroup.POST("/create", auth, video.AddVideo)
		videoGroup.POST("/update", auth, video.UpdateVideo)
		videoGroup.POST("/delete", auth, video.DeleteVideo)
		videoGroup.POST("/visit", optional, interaction.AddViewCount)
		videoGroup.POST("/reaction", auth, interaction.VideoReaction)
	}

	commentGroup := api.Group("/comment")
	{
		commentGroup.GET("/list", interaction.ListComments)
		commentGroup.POST("/create", auth, interaction.CreateComment)
		commentGroup.POST("/delete", auth, interaction.DeleteComment)
	}

	relationGroup := api.Group("/relation")
	{
		relationGroup.POST("/follow", auth, relation.FollowAction)
		relationGroup.GET("/following", optional, relation.FollowingList)
	}

	playlistGroup := api.Group("/playlist")
	{
		playlistGroup.GET("/list", optional, playlist.UserPlaylists)
		playlistGroup.GET("/detail", optional, playlist.PlaylistDetail)
		playlistGroup.GET("/history", auth, playlist.History)
		playlistGroup.GET("/save_dialog", auth, playlist.SaveDialog)
		playlistGroup.POST("/create", auth, playlist.CreatePlaylist)
		playlistGroup.POST("/set_video", auth, playlist.SetVideoInPlaylist)
		playlistGroup.POST("/update", auth, playlist.UpdatePlaylist)
		playlistGroup.POST("/delete", auth, playlist.DeletePlaylist)
	}
}
