package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/tokonusa/inventory-backend/internal/infrastructure/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found: %v", err)
	}

	var (
		path     = flag.String("path", "migrations", "migrations directory")
		rollback = flag.Bool("rollback", false, "revert the last applied migration")
	)
	flag.Parse()

	if *rollback {
		if err := database.RollbackLastMigration(*path); err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Println("last migration reverted")
		return
	}

	if err := database.RunMigrations(*path); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migrations applied")
}
