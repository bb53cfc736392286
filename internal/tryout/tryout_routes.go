package tryout

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
)

// RegisterTryoutRoutes sets up the public submission endpoint and the staff
// review endpoints.
func RegisterTryoutRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewTryoutRepository(db)
	controller := NewTryoutController(repo)

	// Public submission; OptionalAuth links the account when the visitor is
	// signed in and leaves user_id null otherwise.
	router.POST("/tryouts", mw.OptionalAuth(appConfig.JWT.SessionSecret, db), controller.CreateTryout)

	reviewed := router.Group("/tryouts")
	reviewed.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db))
	{
		staff := reviewed.Group("")
		staff.Use(rmiddleware.Staff())
		{
			staff.GET("", controller.GetAllTryouts)
		}

		admin := reviewed.Group("")
		admin.Use(rmiddleware.AdminOnly())
		{
			admin.PATCH("/:tryout_id", controller.UpdateTryoutStatus)
		}
	}
}
