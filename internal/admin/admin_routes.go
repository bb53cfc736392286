package admin

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
)

// RegisterAdminRoutes sets up the back-office recruitment and stats routes.
func RegisterAdminRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAdminRepository(db)
	controller := NewAdminController(repo)

	adminGroup := router.Group("/admin")
	adminGroup.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db))
	{
		recruit := adminGroup.Group("")
		recruit.Use(rmiddleware.AdminOnly())
		{
			recruit.POST("/recruit", controller.Recruit)
		}

		stats := adminGroup.Group("")
		stats.Use(rmiddleware.Staff())
		{
			stats.GET("/stats", controller.GetStats)
		}
	}
}
