package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
	"github.com/exoesports/exo-backend/pkg/uploader"
)

// RegisterPlayerRoutes sets up public player reads and staff player management.
func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, uploads uploader.Uploader) {
	repo := NewPlayerRepository(db)
	controller := NewPlayerController(repo, uploads)

	// Public player routes
	router.GET("/players", controller.GetAllPlayers)
	router.GET("/players/:player_id", controller.GetPlayerByID)

	staffPlayers := router.Group("/players")
	staffPlayers.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db), rmiddleware.Staff())
	{
		staffPlayers.PATCH("/:player_id", controller.UpdatePlayer)
		staffPlayers.DELETE("/:player_id", controller.DeletePlayer)
	}
}
