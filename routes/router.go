package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/exoesports/exo-backend/config"
	"github.com/exoesports/exo-backend/internal/achievement"
	"github.com/exoesports/exo-backend/internal/admin"
	"github.com/exoesports/exo-backend/internal/auth"
	"github.com/exoesports/exo-backend/internal/game"
	"github.com/exoesports/exo-backend/internal/player"
	"github.com/exoesports/exo-backend/internal/team"
	"github.com/exoesports/exo-backend/internal/tryout"
	"github.com/exoesports/exo-backend/internal/user"
	"github.com/exoesports/exo-backend/pkg/uploader"
)

// SetupRoutes wires the engine: CORS for the frontend, static uploads,
// swagger, and every module's route registration.
func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()

	// Cookie-based sessions need credentialed CORS against the known frontend.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{appConfig.App.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	// Uploaded images are served as static files.
	r.Static("/public", "./public")
	uploads := uploader.NewLocal(appConfig.App.UploadDir, "/public/uploads")

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	user.RegisterUserRoutes(api, db, appConfig, uploads)
	game.RegisterGameRoutes(api, db, appConfig)
	team.RegisterTeamRoutes(api, db, appConfig, uploads)
	player.RegisterPlayerRoutes(api, db, appConfig, uploads)
	achievement.RegisterAchievementRoutes(api, db, appConfig)
	tryout.RegisterTryoutRoutes(api, db, appConfig)
	admin.RegisterAdminRoutes(api, db, appConfig)

	return r
}
