package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"linkstash/internal/config"
	"linkstash/internal/db"
	"linkstash/internal/email"
	"linkstash/internal/enrich"
	"linkstash/internal/metrics"
	"linkstash/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register Prometheus collectors
	metrics.Init(database)

	// External collaborators
	enricher := enrich.New(cfg.EnrichAPIURL, cfg.EnrichToken)
	notifier := email.NewNotifier(cfg, database)

	// Setup server and routes
	srv := server.New(cfg)
	if err := server.RegisterRoutes(ctx, srv, database, enricher, notifier); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
