package game

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
)

// RegisterGameRoutes sets up public game reads and admin game management.
func RegisterGameRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewGameRepository(db)
	controller := NewGameController(repo)

	publicGames := router.Group("/games")
	{
		publicGames.GET("", controller.GetAllGames)
		publicGames.GET("/:game_id", controller.GetGameByID)
	}

	adminGames := router.Group("/games")
	adminGames.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db), rmiddleware.AdminOnly())
	{
		adminGames.POST("", controller.CreateGame)
	}
}
