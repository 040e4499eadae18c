package main

import (
	"context"
	"log"
	"os"

	"salonbook/internal/database"
	"salonbook/internal/repository"

	"github.com/joho/godotenv"
)

// Run from cron: moves lapsed subscriptions to expired so their salons
// drop back to the free commission tier.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	n, err := repository.NewSubscriptionRepository(db).ExpireOld(context.Background())
	if err != nil {
		log.Fatalf("subscription expiry failed: %v", err)
	}

	log.Printf("subscription expiry completed: expired=%d", n)
}
