package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
	"github.com/exoesports/exo-backend/pkg/uploader"
)

// RegisterTeamRoutes sets up public team reads and staff team management.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, uploads uploader.Uploader) {
	repo := NewTeamRepository(db)
	controller := NewTeamController(repo, uploads)

	// Public team routes
	router.GET("/teams", controller.GetAllTeams)
	router.GET("/teams/:team_id", controller.GetTeamByID)

	staffTeams := router.Group("/teams")
	staffTeams.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db))
	{
		managed := staffTeams.Group("")
		managed.Use(rmiddleware.Staff())
		{
			managed.POST("", controller.CreateTeam)
			managed.PATCH("/:team_id", controller.UpdateTeam)
		}

		// Deletion is destructive (cascades achievements), admin only.
		adminOnly := staffTeams.Group("")
		adminOnly.Use(rmiddleware.AdminOnly())
		{
			adminOnly.DELETE("/:team_id", controller.DeleteTeam)
		}
	}
}
