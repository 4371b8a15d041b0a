package main

import (
	"context"
	"log"
	"os"

	"cema-admin/internal/config"
	"cema-admin/internal/db"
	"cema-admin/internal/migrate"
)

// Migrations only exist for the postgres store; the sqlite driver creates
// its schema on open and the memory driver has none.
func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.StoreDriver != "postgres" {
		logger.Fatalf("migrations require STORE_DRIVER=postgres, got %q", cfg.StoreDriver)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
