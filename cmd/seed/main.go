package main

import (
	"context"
	"log"
	"os"

	"cema-admin/internal/config"
	"cema-admin/internal/seed"
	"cema-admin/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	adapter, closeStore, err := store.Open(ctx, cfg.StoreDriver, cfg.DBConnString, cfg.SQLitePath, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()

	if err := seed.Apply(ctx, adapter, logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
