package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/auth"
	"posts-admin/cmd/api/handlers"
	"posts-admin/cmd/api/middleware"
	"posts-admin/cmd/api/services"
)

// New builds the admin engine. jwt may be nil, in which case the admin group
// is served without authentication.
func New(ctrl *services.PostsController, jwt *auth.JWTManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.RequestLoggingMiddleware("/health"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := r.Group("/api/v1/admin", middleware.AdminAuthMiddleware(jwt))
	{
		admin.GET("/view", handlers.ViewHandler(ctrl))
		admin.GET("/state", handlers.StateHandler(ctrl))
		admin.POST("/search", handlers.SearchHandler(ctrl))
		admin.GET("/tags", handlers.TagsHandler(ctrl))

		admin.POST("/post-form/open", handlers.OpenPostFormHandler(ctrl))
		admin.PATCH("/post-form", handlers.EditPostFormHandler(ctrl))
		admin.POST("/post-form/submit", handlers.SubmitPostFormHandler(ctrl))
		admin.POST("/post-form/close", handlers.ClosePostFormHandler(ctrl))
		admin.DELETE("/posts/:id", handlers.DeletePostHandler(ctrl))

		admin.POST("/posts/:id/detail", handlers.OpenPostDetailHandler(ctrl))
		admin.POST("/post-detail/close", handlers.ClosePostDetailHandler(ctrl))

		admin.POST("/comment-form/open", handlers.OpenCommentFormHandler(ctrl))
		admin.PATCH("/comment-form", handlers.EditCommentFormHandler(ctrl))
		admin.POST("/comment-form/submit", handlers.SubmitCommentFormHandler(ctrl))
		admin.POST("/comment-form/close", handlers.CloseCommentFormHandler(ctrl))
		admin.DELETE("/posts/:id/comments/:commentId", handlers.DeleteCommentHandler(ctrl))
		admin.POST("/posts/:id/comments/:commentId/like", handlers.LikeCommentHandler(ctrl))

		admin.POST("/users/:id/profile", handlers.OpenUserProfileHandler(ctrl))
		admin.POST("/user-profile/close", handlers.CloseUserProfileHandler(ctrl))
	}

	return r
}
