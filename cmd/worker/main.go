package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/quotable/leadintel/internal/app"
	"github.com/quotable/leadintel/internal/config"
	"github.com/quotable/leadintel/internal/worker"
)

func main() {
	log.Println("Starting leadintel worker...")

	cfg, err := config.LoadFromEnv(app.ConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer a.Close()

	if a.Archive == nil {
		log.Println("Warning: no report archive configured; reports live only in this process")
	}

	a.Sweeper.Start(ctx)
	log.Printf("Optimization sweep running every %s (concurrency %d)", cfg.Worker.Interval(), cfg.Worker.Concurrency)

	refresher := worker.NewIntelligenceRefresher(a.Intelligence, a.Lock("intelligence"), worker.DefaultIntelligenceInterval)
	refresher.Start(ctx)
	log.Println("Market intelligence refresh running daily")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down worker...")
	cancel()
	a.Sweeper.Stop()
	refresher.Stop()
	log.Println("Worker stopped")
}
