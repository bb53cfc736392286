package achievement

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
)

// RegisterAchievementRoutes sets up public achievement reads, staff
// management, and the admin-namespaced mirror the back-office uses.
func RegisterAchievementRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAchievementRepository(db)
	controller := NewAchievementController(repo)

	// Public reads
	router.GET("/achievements", controller.GetAllAchievements)

	staff := router.Group("/achievements")
	staff.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db), rmiddleware.Staff())
	{
		staff.POST("", controller.CreateAchievement)
		staff.PATCH("/:achievement_id", controller.UpdateAchievement)
		staff.DELETE("/:achievement_id", controller.DeleteAchievement)
	}

	// Admin namespace, same handlers behind the back-office prefix
	admin := router.Group("/admin/achievements")
	admin.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db), rmiddleware.AdminOnly())
	{
		admin.GET("", controller.GetAllAchievements)
		admin.POST("", controller.CreateAchievement)
	}
}
