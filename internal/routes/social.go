package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/handlers"
	"github.com/pcrims/finpath-backend/internal/middleware"
)

func RegisterSocialRoutes(r gin.IRouter) {
	r.GET("/activity", handlers.GetActivityFeed)
	r.GET("/leaderboard", handlers.GetLeaderboard)
	r.POST("/onboarding", middleware.AuthMiddleware(), handlers.SubmitOnboarding)
}
