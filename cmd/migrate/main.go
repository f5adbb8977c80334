package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dir := "migrations"
	listOnly := false
	for _, a := range os.Args[1:] {
		if a == "--list" {
			listOnly = true
		} else {
			dir = a
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	m := &migrator{db: db}
	if listOnly {
		applied, err := m.applied(ctx)
		if err != nil {
			log.Fatalf("list: %v", err)
		}
		for _, v := range applied {
			fmt.Println(" ", v)
		}
		fmt.Printf("Total: %d applied\n", len(applied))
		return
	}

	files, err := pending(os.DirFS(dir))
	if err != nil {
		log.Fatalf("read migrations dir %s: %v", dir, err)
	}
	n, err := m.apply(ctx, files)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("Migrations complete: %d applied", n)
}
