package main

import (
	"log"

	"cafeteria-backend/config"
	"cafeteria-backend/routes"
	"cafeteria-backend/services"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// The process cannot serve without its fixture data.
	result, err := services.NewSeedService(db).Seed(cfg.SeedStart, cfg.SeedDays)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeded %d days of menus starting %s", result.Days, result.Start)

	r := routes.SetupRouter(db, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
