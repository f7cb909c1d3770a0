package main

import (
	"context"
	"database/sql"
	"drayage-quote-service/internal/adapters/repositories"
	"drayage-quote-service/internal/config"
	"drayage-quote-service/internal/platform/db"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(db.Postgres, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedDir := config.Get("SEED_DIR", "data/seeds")
	if err := initAndSeed(conn, seedDir); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, seedDir string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromDir(context.Background(), conn, db.Postgres, seedDir, time.Now()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
