package main

import (
	"log"

	"github.com/pkruszek/scout-assistant/config"
	_ "github.com/pkruszek/scout-assistant/docs"
	"github.com/pkruszek/scout-assistant/internal/buyer"
	"github.com/pkruszek/scout-assistant/internal/contact"
	"github.com/pkruszek/scout-assistant/internal/roster"
	"github.com/pkruszek/scout-assistant/routes"
)

// @title Scout Assistant API
// @version 1.0
// @description Backend for a per-scout register of draftee contacts, buyers and imported player rosters.
// @host localhost:8090
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&contact.Contact{},
		&buyer.Buyer{},
		&roster.Player{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
