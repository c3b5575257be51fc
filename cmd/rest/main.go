package main

import (
	"context"
	"log"

	"crm-agent-be/internal/bootstrap"
	"crm-agent-be/internal/config"
	"crm-agent-be/internal/model"
	"crm-agent-be/internal/server"
	"crm-agent-be/internal/tracer"
	"crm-agent-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Article{},
		&model.Lead{},
		&model.Case{},
		&model.Conversation{},
		&model.Message{},
	); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Seed demonstration data (idempotent)
	if err := container.Seeder.Seed(context.Background()); err != nil {
		log.Panicf("Unable to seed demo data: %v", err)
	}

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 6. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
