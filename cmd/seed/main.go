package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/collections"
	"guest-portal-backend/internal/docstore"
)

func main() {
	reset := flag.Bool("reset", false, "wipe all collections before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	ctx := context.Background()
	store, err := docstore.Open(ctx, alerts.Default)
	if err != nil {
		log.Fatalf("docstore init failed: %v", err)
	}

	seeder := collections.NewSeeder(store)
	if *reset {
		err = seeder.Reset(ctx)
	} else {
		err = seeder.Seed(ctx)
	}
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Println("seed complete")
}
