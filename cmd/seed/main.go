package main

import (
	"context"
	"log"
	"os"

	"crm-agent-be/internal/model"
	"crm-agent-be/internal/pkg/logger"
	"crm-agent-be/internal/repository/unitofwork"
	"crm-agent-be/internal/seeder"
	"crm-agent-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&model.Article{},
		&model.Lead{},
		&model.Case{},
		&model.Conversation{},
		&model.Message{},
	); err != nil {
		log.Fatal("Error: Failed to migrate schema:", err)
	}

	color.Cyan("Seeding knowledge base and CRM demo rows...")

	uowFactory := unitofwork.NewRepositoryFactory(db)
	s := seeder.New(uowFactory, logger.NewZapLogger("seed.log", false))

	if err := s.Seed(context.Background()); err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}

	color.Green("Seeding completed (idempotent, existing rows untouched)")
}
