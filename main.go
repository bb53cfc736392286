package main

import (
	"log"

	"github.com/exoesports/exo-backend/config"
	"github.com/exoesports/exo-backend/internal/achievement"
	"github.com/exoesports/exo-backend/internal/game"
	"github.com/exoesports/exo-backend/internal/player"
	"github.com/exoesports/exo-backend/internal/team"
	"github.com/exoesports/exo-backend/internal/tryout"
	"github.com/exoesports/exo-backend/internal/user"
	"github.com/exoesports/exo-backend/routes"
)

// @title Exo Esports REST API
// @version 1.0
// @description Backend for the Exo esports organization: public pages, player dashboard, admin back-office.
// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&user.User{},
		&game.Game{},
		&team.Team{},
		&player.Player{},
		&achievement.Achievement{},
		&tryout.TryoutRequest{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(db, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
