package main

import (
	"context"
	"log"

	"verses-be/internal/bootstrap"
	"verses-be/internal/config"
	"verses-be/internal/server"
	"verses-be/internal/tracer"
	"verses-be/pkg/database"
)

func main() {
	// 1. Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Configuration
	cfg := config.Load()

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
