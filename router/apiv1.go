package router

import (
	"github.com/gin-gonic/gin"

	"anke-go-api/controllers/app"
	"anke-go-api/middleware"
)

// InitApp mounts the public app surface under /api.
func InitApp(r *gin.Engine) {
	api := r.Group("/api")

	// guest-capable reads and submissions; uid is picked up when a
	// valid token is present
	public := api.Group("", middleware.OptionalAppAuth())
	{
		public.GET("/posts", app.ListPosts)
		public.GET("/posts/search", app.SearchPosts)
		public.GET("/posts/:id", app.PostDetail)
		public.GET("/posts/:id/comments", app.ListPostComments)
		public.POST("/posts/:id/comments", app.CreateComment)
		public.POST("/comment-likes", app.ToggleCommentLike)
		public.POST("/vote", app.Vote)

		public.POST("/auth/register", app.Register)
		public.POST("/auth/login", app.Login)
	}

	// authenticated app surface
	auth := api.Group("", middleware.AppJWTAuth())
	{
		auth.POST("/posts", app.CreatePost)
		auth.PUT("/posts", app.UpdatePost)

		auth.GET("/point-history", app.PointHistory)
		auth.POST("/point-exchange", app.PointExchange)

		auth.POST("/favorites/toggle", app.ToggleFavorite)
		auth.GET("/favorites/check", app.CheckFavorite)
		auth.GET("/favorites", app.ListFavorites)

		auth.GET("/notifications", app.ListNotifications)
		auth.POST("/notifications/mark-read", app.MarkNotificationRead)
	}
}
