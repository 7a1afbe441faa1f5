// Script to seed the database with sample users, profiles, and sleep logs.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/rsweeney/sleepaid/internal/config"
	"github.com/rsweeney/sleepaid/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\nSample accounts for testing (password: sleepwell123):")
	fmt.Println("  ava@example.com   11111111-1111-1111-1111-111111111111")
	fmt.Println("  noah@example.com  22222222-2222-2222-2222-222222222222")
	fmt.Println("  mei@example.com   33333333-3333-3333-3333-333333333333")
}
