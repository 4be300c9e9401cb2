package router

import (
	"VidTube/config"
	"VidTube/internal/handler"
	"VidTube/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds the HTTP surface. Read views that make sense for
// anonymous viewers use the optional auth middleware so viewer-aware flags
// degrade instead of rejecting.
func InitRouter() *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	api := r.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", handler.Register)
		users.POST("/login",
			utils.RateLimitMiddleware(config.AppConfig.LoginRatePerMin, config.AppConfig.LoginRateBurst),
			handler.Login)
		users.POST("/logout", utils.AuthMiddleware(), handler.Logout)
		users.POST("/refresh-token", handler.RefreshToken)

		users.GET("/current", utils.AuthMiddleware(), handler.CurrentUser)
		users.GET("/history", utils.AuthMiddleware(), handler.WatchHistory)
		users.GET("/c/:channelId", utils.OptionalAuthMiddleware(), utils.VerifyChannel(), handler.ChannelProfile)

		users.PATCH("/change-password", utils.AuthMiddleware(), handler.ChangePassword)
		users.PATCH("/update-account", utils.AuthMiddleware(), handler.UpdateAccount)
		users.PATCH("/change-avatar", utils.AuthMiddleware(), handler.ChangeAvatar)
		users.PATCH("/change-cover", utils.AuthMiddleware(), handler.ChangeCoverImage)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", utils.OptionalAuthMiddleware(), handler.ListVideos)
		videos.GET("/:videoId", utils.OptionalAuthMiddleware(), utils.VerifyVideo(), handler.GetVideo)
		videos.GET("/:videoId/download", utils.AuthMiddleware(), utils.VerifyVideo(), handler.DownloadVideo)
		videos.POST("/upload", utils.AuthMiddleware(), handler.PublishVideo)
		videos.PATCH("/:videoId/details", utils.AuthMiddleware(), utils.VerifyVideo(), handler.UpdateVideo)
		videos.PATCH("/:videoId/thumbnail", utils.AuthMiddleware(), utils.VerifyVideo(), handler.UpdateThumbnail)
		videos.DELETE("/:videoId", utils.AuthMiddleware(), utils.VerifyVideo(), handler.DeleteVideo)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/video/:videoId", utils.OptionalAuthMiddleware(), utils.VerifyVideo(), handler.ListVideoComments)
		comments.POST("/video/:videoId", utils.AuthMiddleware(), utils.VerifyVideo(), handler.AddVideoComment)
		comments.GET("/tweet/:tweetId", utils.OptionalAuthMiddleware(), utils.VerifyTweet(), handler.ListTweetComments)
		comments.POST("/tweet/:tweetId", utils.AuthMiddleware(), utils.VerifyTweet(), handler.AddTweetComment)
		comments.PATCH("/:commentId", utils.AuthMiddleware(), utils.VerifyComment(), handler.UpdateComment)
		comments.DELETE("/:commentId", utils.AuthMiddleware(), utils.VerifyComment(), handler.DeleteComment)
	}

	likes := api.Group("/likes", utils.AuthMiddleware())
	{
		likes.POST("/toggle/v/:videoId", utils.VerifyVideo(), handler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", utils.VerifyComment(), handler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", utils.VerifyTweet(), handler.ToggleTweetLike)
		likes.GET("/videos", handler.LikedVideos)
		likes.GET("/comments", handler.LikedComments)
		likes.GET("/tweets", handler.LikedTweets)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/toggle/:channelId", utils.AuthMiddleware(), utils.VerifyChannel(), handler.ToggleSubscription)
		subscriptions.GET("/subscribers/:channelId", utils.OptionalAuthMiddleware(), utils.VerifyChannel(), handler.Subscribers)
		subscriptions.GET("/channels/:subscriberId", utils.OptionalAuthMiddleware(), utils.VerifySubscriber(), handler.SubscribedChannels)
		subscriptions.GET("/videos", utils.AuthMiddleware(), handler.SubscriptionVideos)
	}

	tweets := api.Group("/tweets")
	{
		tweets.GET("", utils.OptionalAuthMiddleware(), handler.AllTweets)
		tweets.POST("", utils.AuthMiddleware(), handler.CreateTweet)
		tweets.GET("/user/:userId", utils.OptionalAuthMiddleware(), utils.VerifyUser(), handler.UserTweets)
		tweets.PATCH("/:tweetId", utils.AuthMiddleware(), utils.VerifyTweet(), handler.UpdateTweet)
		tweets.DELETE("/:tweetId", utils.AuthMiddleware(), utils.VerifyTweet(), handler.DeleteTweet)
	}

	playlists := api.Group("/playlists", utils.AuthMiddleware())
	{
		playlists.POST("", handler.CreatePlaylist)
		playlists.GET("", handler.MyPlaylists)
		playlists.GET("/:playlistId", utils.VerifyPlaylist(), handler.GetPlaylist)
		playlists.PATCH("/:playlistId", utils.VerifyPlaylist(), handler.UpdatePlaylist)
		playlists.DELETE("/:playlistId", utils.VerifyPlaylist(), handler.DeletePlaylist)
		playlists.PATCH("/add-video/:playlistId", utils.VerifyPlaylist(), handler.AddPlaylistVideo)
		playlists.PATCH("/remove-video/:playlistId", utils.VerifyPlaylist(), handler.RemovePlaylistVideo)
	}

	return r
}
