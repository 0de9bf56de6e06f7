package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ninjaCoderr/social-app-backend/config"
	"github.com/ninjaCoderr/social-app-backend/pkg/database"
)

const usage = `
Social App Backend - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run all SQL migrations
  status      Show database connection status

Flags:
  -migrations string   Path to migrations directory (default "migrations")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go status
`

func main() {
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	database.Connect(cfg)

	switch command {
	case "up":
		runMigrationsUp(*migrationsDir)
	case "status":
		showStatus()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runMigrationsUp(migrationsDir string) {
	log.Println("Running migrations...")

	if err := database.ApplyRawMigrations(migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully")
}

func showStatus() {
	if err := database.HealthCheck(); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")
}
