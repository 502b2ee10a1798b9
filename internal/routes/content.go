package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/handlers"
	"github.com/pcrims/finpath-backend/internal/middleware"
)

// RegisterContentRoutes exposes the read-only catalog. Public, but a valid
// token upgrades track and lesson responses with completion flags.
func RegisterContentRoutes(r gin.IRouter) {
	content := r.Group("/content", middleware.OptionalAuthMiddleware())
	{
		content.GET("/tracks", handlers.ListTracks)
		content.GET("/tracks/:trackId", handlers.GetTrack)
		content.GET("/tracks/:trackId/chapters/:chapterId/lessons/:lessonId", handlers.GetLesson)
	}
}
