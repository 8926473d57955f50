package router

import (
	"time"

	"vidtube/internal/api/handler"
	"vidtube/internal/api/middleware"
	"vidtube/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "vidtube/api/openapi" // swagger 文档
)

// Handlers 路由依赖的全部接口处理器
type Handlers struct {
	Health       *handler.HealthHandler
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Tweet        *handler.TweetHandler
	Subscription *handler.SubscriptionHandler
	Playlist     *handler.PlaylistHandler
	Dashboard    *handler.DashboardHandler
}

// Setup 装配 Gin 引擎与全部路由
func Setup(h *Handlers, fetchUser middleware.UserFetcher, redisClient *redis.Client) *gin.Engine {
	gin.SetMode(config.GetApp().Mode)

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthRequired(fetchUser)
	authOptional := middleware.AuthOptional(fetchUser)
	// 注册和登录走限流，防止暴力尝试
	loginLimit := middleware.RateLimit(redisClient, 10, time.Minute)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/healthcheck", h.Health.Check)

		users := v1.Group("/users")
		{
			users.POST("/register", loginLimit, h.User.Register)
			users.POST("/login", loginLimit, h.User.Login)
			users.POST("/refresh-token", h.User.RefreshToken)
			users.POST("/logout", authRequired, h.User.Logout)
			users.POST("/change-password", authRequired, h.User.ChangePassword)
			users.GET("/current-user", authRequired, h.User.GetCurrentUser)
			users.PATCH("/update-account", authRequired, h.User.UpdateAccount)
			users.PATCH("/avatar", authRequired, h.User.UpdateAvatar)
			users.PATCH("/cover-image", authRequired, h.User.UpdateCoverImage)
			users.GET("/c/:username", authOptional, h.User.GetChannelProfile)
			users.GET("/history", authRequired, h.User.GetWatchHistory)
		}

		videos := v1.Group("/videos")
		{
			videos.GET("", authOptional, h.Video.GetAll)
			videos.POST("", authRequired, h.Video.Publish)
			videos.GET("/:videoId", authOptional, h.Video.GetByID)
			videos.PATCH("/:videoId", authRequired, h.Video.Update)
			videos.DELETE("/:videoId", authRequired, h.Video.Delete)
			videos.PATCH("/toggle/publish/:videoId", authRequired, h.Video.TogglePublish)
		}

		comments := v1.Group("/comments")
		{
			comments.GET("/:videoId", authOptional, h.Comment.List)
			comments.POST("/:videoId", authRequired, h.Comment.Add)
			comments.PATCH("/c/:commentId", authRequired, h.Comment.Update)
			comments.DELETE("/c/:commentId", authRequired, h.Comment.Delete)
		}

		likes := v1.Group("/likes", authRequired)
		{
			likes.POST("/toggle/v/:videoId", h.Like.ToggleVideoLike)
			likes.POST("/toggle/c/:commentId", h.Like.ToggleCommentLike)
			likes.POST("/toggle/t/:tweetId", h.Like.ToggleTweetLike)
			likes.GET("/videos", h.Like.GetLikedVideos)
		}

		tweets := v1.Group("/tweets", authRequired)
		{
			tweets.POST("", h.Tweet.Create)
			tweets.GET("/user/:userId", h.Tweet.GetUserTweets)
			tweets.PATCH("/:tweetId", h.Tweet.Update)
			tweets.DELETE("/:tweetId", h.Tweet.Delete)
		}

		subscriptions := v1.Group("/subscriptions", authRequired)
		{
			subscriptions.POST("/c/:channelId", h.Subscription.Toggle)
			subscriptions.GET("/c/:channelId", h.Subscription.GetChannelSubscribers)
			subscriptions.GET("/u/:subscriberId", h.Subscription.GetSubscribedChannels)
		}

		playlist := v1.Group("/playlist", authRequired)
		{
			playlist.POST("", h.Playlist.Create)
			playlist.GET("/user/:userId", h.Playlist.GetUserPlaylists)
			playlist.GET("/:playlistId", h.Playlist.GetByID)
			playlist.PATCH("/add/:videoId/:playlistId", h.Playlist.AddVideo)
			playlist.PATCH("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo)
			playlist.PATCH("/:playlistId", h.Playlist.Update)
			playlist.DELETE("/:playlistId", h.Playlist.Delete)
		}

		dashboard := v1.Group("/dashboard", authRequired)
		{
			dashboard.GET("/stats", h.Dashboard.GetStats)
			dashboard.GET("/videos", h.Dashboard.GetVideos)
		}
	}

	return r
}
