package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/handlers"
	"github.com/pcrims/finpath-backend/internal/middleware"
)

func RegisterGameRoutes(r gin.IRouter) {
	game := r.Group("/game")
	game.Use(middleware.AuthMiddleware())
	{
		game.GET("/state", handlers.GetGameState)
		game.PUT("/weekly/target", handlers.SetWeeklyTarget)
		game.GET("/badges", handlers.GetBadges)
		game.GET("/certificates", handlers.GetCertificates)
	}
}
