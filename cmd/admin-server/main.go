package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"guest-portal-backend/internal/alerts"
	"guest-portal-backend/internal/api"
	"guest-portal-backend/internal/api/router"
	"guest-portal-backend/internal/auth"
	"guest-portal-backend/internal/docstore"
	"guest-portal-backend/internal/env"
	"guest-portal-backend/internal/queue"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	env.Require(env.AdminSecretKey)

	queueManager := queue.NewRequestQueueManager(10, 10)

	store, err := docstore.Open(context.Background(), alerts.Default)
	if err != nil {
		log.Fatalf("docstore init failed: %v", err)
	}

	users, err := auth.NewDemoDirectory()
	if err != nil {
		log.Fatalf("user directory init failed: %v", err)
	}

	server := api.NewAPIServer(
		":81",
		queueManager,
		store,
		users,
		nil,
		router.UtilsRoutes("/api/admin/v1"),
		router.AuthRoutes("/api/admin/v1"),
		router.AdminRoutes("/api/admin/v1"),
		router.DevRoutes("/api/admin/v1"),
	)

	server.Run()
}
