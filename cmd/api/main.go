package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not found: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
