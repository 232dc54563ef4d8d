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
	"guest-portal-backend/internal/websocket"
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

	hub := websocket.NewHub()
	go hub.Run()
	handler := websocket.NewHandler(hub, websocket.NewFeedOpener(store))

	// The shared feeds are live from boot so the first subscriber gets a
	// snapshot without waiting for a change.
	for _, feed := range []string{
		websocket.FeedTenants,
		websocket.FeedCategories,
		websocket.FeedServices,
		websocket.FeedRequests,
	} {
		if err := handler.OpenFeed(feed); err != nil {
			log.Fatalf("open feed %s: %v", feed, err)
		}
	}

	server := api.NewAPIServer(
		":83",
		queueManager,
		store,
		nil,
		handler,
		router.UtilsRoutes("/api/ws/v1"),
		router.WebsocketRoutes("/api/ws/v1"),
	)

	server.Run()
}
