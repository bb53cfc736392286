package user

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	mw "github.com/exoesports/exo-backend/internal/middleware"
	"github.com/exoesports/exo-backend/pkg/rmiddleware"
	"github.com/exoesports/exo-backend/pkg/uploader"
)

// RegisterUserRoutes sets up /me and admin user management routes.
func RegisterUserRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, uploads uploader.Uploader) {
	repo := NewUserRepository(db)
	controller := NewUserController(repo, appConfig, uploads)

	authed := router.Group("/")
	authed.Use(mw.RequireAuth(appConfig.JWT.SessionSecret, db))
	{
		authed.GET("/me", controller.GetMe)
		authed.PATCH("/me", controller.UpdateMe)

		adminUsers := authed.Group("/users")
		adminUsers.Use(rmiddleware.AdminOnly())
		{
			adminUsers.GET("", controller.GetAllUsers)
			adminUsers.DELETE("/:user_id", controller.DeleteUser)
		}
	}
}
