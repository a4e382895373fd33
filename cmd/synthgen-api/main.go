package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"synthgen/adapters/postgres"
	"synthgen/internal/api"
	"synthgen/internal/config"
	"synthgen/ports"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var runs ports.RunRepository
	if cfg.Database.URL != "" {
		db, err := postgres.Open(cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("failed to apply schema: %v", err)
		}
		runs = postgres.NewRunRepository(db)
		log.Println("run recording enabled")
	}

	server := api.NewServer(runs)

	addr := ":" + cfg.Server.Port
	log.Printf("starting synthgen API on %s", addr)
	if err := http.ListenAndServe(addr, server); err != nil {
		log.Fatal("server failed:", err)
	}
}
