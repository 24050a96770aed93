package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jwrfree/jatinotes-sub000/internal/comments"
	"github.com/jwrfree/jatinotes-sub000/internal/db"
	"github.com/jwrfree/jatinotes-sub000/internal/handlers"
	"github.com/jwrfree/jatinotes-sub000/internal/middleware"
	"github.com/jwrfree/jatinotes-sub000/internal/services"
	"github.com/jwrfree/jatinotes-sub000/internal/store"
)

func RegisterRoutes(r *gin.Engine, log zerolog.Logger) {
	// Comment pipeline wiring: the gate writes through an injected store and
	// notifies via mail + in-app notifications.
	commentStore := store.NewComments(db.DB)
	mailService := services.NewMailService(log)
	notifier := services.NewCommentNotifier(mailService, db.DB, log)
	gate := comments.NewGate(commentStore, notifier, log)

	// Handlers
	blogHandler := handlers.NewBlogHandler(commentStore)
	commentHandler := handlers.NewCommentHandler(gate)
	bookHandler := handlers.NewBookHandler()
	pageHandler := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler()
	adminHandler := handlers.NewAdminHandler(commentStore)
	notificationHandler := handlers.NewNotificationHandler()
	seoHandler := handlers.NewSEOHandler()

	// Public routes
	r.GET("/", blogHandler.Home)
	r.GET("/search", blogHandler.Search)
	r.GET("/p/:slug", blogHandler.Detail)
	r.POST("/p/:slug/comment", commentHandler.Create)
	r.GET("/c/:slug", blogHandler.ListByCategory)
	r.GET("/books", bookHandler.List)
	r.GET("/books/:slug", bookHandler.Detail)
	r.GET("/pages/:slug", pageHandler.Show)

	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXML)
	r.GET("/feed.xml", seoHandler.FeedXML)

	r.GET("/admin/login", authHandler.ShowLogin)
	r.POST("/admin/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.POST("/comments/:id/approve", adminHandler.ApproveComment)

		admin.GET("/notifications", notificationHandler.List)
		admin.POST("/notifications/:id/read", notificationHandler.Read)
		admin.POST("/notifications/read-all", notificationHandler.ReadAll)
	}
}
