package router

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"anke-go-api/controllers/admin"
	"anke-go-api/middleware"
)

// InitAdmin mounts the admin surface under /api/admin. The captcha flow
// needs cookie sessions; everything past login needs an admin token.
func InitAdmin(r *gin.Engine) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "anke-admin-session"
	}
	store := cookie.NewStore([]byte(secret))

	group := r.Group("/api/admin", sessions.Sessions("admin_session", store))

	group.GET("/auth/captcha", admin.Captcha)
	group.POST("/auth/login", admin.Login)

	authed := group.Group("", middleware.AdminJWTAuth(), middleware.AdminRequired())
	{
		authed.GET("/posts", admin.ListPosts)
		authed.POST("/posts/bulk-delete", admin.BulkDeletePosts)
		authed.POST("/posts/restore", admin.RestorePosts)

		authed.GET("/comments", admin.ListComments)
		authed.PUT("/comments", admin.UpdateComment)
		authed.POST("/comments/bulk-delete", admin.BulkDeleteComments)

		authed.GET("/users", admin.ListUsers)
		authed.GET("/users/search", admin.SearchUsers)
		authed.POST("/users/bulk-delete", admin.BulkDeleteUsers)
		authed.POST("/users/:id/avatar", admin.UploadUserAvatar)

		authed.POST("/points/grant", admin.GrantPoints)
		authed.DELETE("/points/:id", admin.DeletePoint)
		authed.POST("/points/bulk-delete", admin.BulkDeletePoints)
		authed.GET("/points/find-orphaned", admin.FindOrphanedPoints)
		authed.POST("/points/renumber-ids", admin.RenumberPointIDs)

		authed.GET("/exchanges", admin.ListExchangeRequests)
		authed.POST("/exchanges/:id/complete", admin.CompleteExchange)
		authed.POST("/exchanges/:id/reject", admin.RejectExchange)

		authed.GET("/ng-words", admin.ListNgWords)
		authed.POST("/ng-words", admin.CreateNgWord)
		authed.PUT("/ng-words", admin.UpdateNgWord)
		authed.DELETE("/ng-words/:id", admin.DeleteNgWord)

		authed.GET("/cleanup/count", admin.CountOrphans)
		authed.POST("/cleanup/execute", admin.ExecuteCleanup)
		authed.POST("/keywords/link", admin.LinkKeywords)

		authed.GET("/mail/settings", admin.GetMailSettings)
		authed.PUT("/mail/settings", admin.UpdateMailSettings)
		authed.POST("/mail/send", admin.SendMail)
		authed.GET("/mail/logs", admin.ListMailLogs)
	}
}
