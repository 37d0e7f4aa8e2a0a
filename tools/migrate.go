package main

import (
	"fmt"
	"os"

	"dispatch-backend/config"
	"dispatch-backend/database"

	"github.com/joho/godotenv"
)

// Standalone migration runner for deploys where the server should not
// migrate on boot: go run tools/migrate.go
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, reading configuration from the environment")
	}

	cfg := config.Load()

	fmt.Println("🚀 Running database migrations...")
	if _, err := database.InitDB(cfg); err != nil {
		fmt.Printf("❌ Migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ Migration completed successfully!")
}
