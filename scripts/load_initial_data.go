package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"mailops-backend/internal/config"
	"mailops-backend/internal/database"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/seed"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Loads teams and bootstrap accounts from scripts/data.
// Usage: SEED_ACCOUNT_PASSWORD=... go run ./scripts
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	file, err := seed.ReadDir("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}
	if _, err := seed.Load(db, file, os.Getenv(seed.PasswordEnv)); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
}

// connectWithRetry waits for Postgres to accept connections.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
