package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	"github.com/exoesports/exo-backend/internal/user"
)

// RegisterAuthRoutes sets up the public auth endpoints.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	users := user.NewUserRepository(db)
	controller := NewAuthController(users, appConfig)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/logout", controller.Logout)
	}
}
