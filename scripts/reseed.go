// Manual reseed of the college and teacher directories.
//
// Normal startup only seeds empty tables so curated edits survive
// restarts. Run this after wiping or migrating an environment to force
// the built-in directory data back in.
//
// Usage: go run scripts/reseed.go
package main

import (
	"log"

	"wisely_backend/internal/config"
	"wisely_backend/internal/model"
	"wisely_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceMigrate = true

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := db.Unscoped().Where("1 = 1").Delete(&model.College{}).Error; err != nil {
		log.Fatalf("Failed to clear colleges: %v", err)
	}
	if err := db.Unscoped().Where("1 = 1").Delete(&model.Teacher{}).Error; err != nil {
		log.Fatalf("Failed to clear teachers: %v", err)
	}

	if err := database.SeedReferenceData(db); err != nil {
		log.Fatalf("Failed to reseed: %v", err)
	}

	log.Println("Directory data reseeded")
}
