package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/handlers"
	"github.com/pcrims/finpath-backend/internal/middleware"
)

func RegisterProgressRoutes(r gin.IRouter) {
	progress := r.Group("/progress")
	progress.Use(middleware.AuthMiddleware())
	{
		progress.GET("", handlers.GetProgress)
		progress.GET("/tracks/:trackId", handlers.GetTrackProgress)
		progress.POST("/tracks/:trackId/chapters/:chapterId/lessons/:lessonId/answers", handlers.RecordAnswer)
		progress.POST("/tracks/:trackId/chapters/:chapterId/lessons/:lessonId/complete", handlers.CompleteLesson)
	}
}
