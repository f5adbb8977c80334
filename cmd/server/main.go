package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quotable/leadintel/internal/api"
	"github.com/quotable/leadintel/internal/app"
	"github.com/quotable/leadintel/internal/config"
	"github.com/quotable/leadintel/internal/tracking"
)

// checkPortAvailable verifies that the target port is not already in use.
func checkPortAvailable(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("address %s is already in use: %w", addr, err)
	}
	return ln.Close()
}

func main() {
	log.Println("Starting leadintel API server...")

	cfg, err := config.LoadFromEnv(app.ConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	addr := cfg.Server.Addr()
	if err := checkPortAvailable(addr); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer a.Close()

	// Sweeps normally run in cmd/worker.
	if cfg.Server.RunSweeper {
		a.Sweeper.Start(ctx)
		defer a.Sweeper.Stop()
		log.Println("Optimization sweeper started in-process")
	}

	handlers := api.NewHandlers(api.Deps{
		Leads:        a.Leads,
		Campaigns:    a.Campaigns,
		Analyzer:     a.Analyzer,
		Reports:      a.Reports,
		Refresher:    a.Sweeper,
		Archive:      a.Archive,
		Intelligence: a.Intelligence,
		Suggester:    a.Copywriter,
		Recorder:     a.Recorder,
	})
	var s3Client api.BucketHeader
	if a.S3Client != nil {
		s3Client = a.S3Client
	}
	health := api.NewHealthChecker(a.DB, a.Redis, s3Client, cfg.S3.Bucket)
	router := api.SetupRoutes(handlers, health, tracking.NewHandler(a.Recorder, a.Signer).Routes(), cfg.Server.AllowedOrigins)
	server := api.NewServer(router)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
