package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/handlers"
	"github.com/pcrims/finpath-backend/internal/middleware"
)

// RegisterAdminRoutes exposes badge definition management to admins only.
func RegisterAdminRoutes(r gin.IRouter) {
	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/badges", handlers.ListAllBadges)
		admin.POST("/badges", handlers.UpsertBadge)
	}
}
