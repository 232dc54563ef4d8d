package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/api"
	"guest-portal-backend/internal/api/router"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/queue"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	queueManager := queue.NewRequestQueueManager(10, 10)

	store, err := docstore.Open(context.Background(), alerts.Default)
	if err != nil {
		log.Fatalf("docstore init failed: %v", err)
	}

	server := api.NewAPIServer(
		":82",
		queueManager,
		store,
		nil,
		nil,
		router.UtilsRoutes("/api/portal/v1"),
		router.PortalRoutes("/api/portal/v1"),
	)

	server.Run()
}
