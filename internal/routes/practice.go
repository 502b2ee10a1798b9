package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/handlers"
	"github.com/pcrims/finpath-backend/internal/middleware"
)

// RegisterPracticeRoutes sets up the end-of-track practice quiz endpoints.
// The quiz itself is public; submitting for a certificate requires auth.
func RegisterPracticeRoutes(r gin.IRouter) {
	practice := r.Group("/practice")
	{
		practice.GET("/tracks/:trackId", handlers.GetPracticeQuiz)
		practice.POST("/tracks/:trackId/submit", middleware.AuthMiddleware(), handlers.SubmitPracticeQuiz)
	}
}
