package main

import (
	"log"

	"verses-be/internal/config"
	"verses-be/internal/model"
	"verses-be/pkg/database"
)

// Creates or updates the users, notebooks and notes tables, including the
// ON DELETE CASCADE foreign keys.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Notebook{},
		&model.Note{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed")
}
