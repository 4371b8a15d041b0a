package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cema-admin/internal/blob"
	"cema-admin/internal/config"
	"cema-admin/internal/directory"
	"cema-admin/internal/httpserver"
	"cema-admin/internal/render"
	calculatorsvc "cema-admin/internal/service/calculator"
	chatsvc "cema-admin/internal/service/chat"
	offeringsvc "cema-admin/internal/service/offering"
	portfoliosvc "cema-admin/internal/service/portfolio"
	quizsvc "cema-admin/internal/service/quiz"
	userssvc "cema-admin/internal/service/users"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[admin] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adapter, closeStore, err := store.Open(ctx, cfg.StoreDriver, cfg.DBConnString, cfg.SQLitePath, logger)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer closeStore()

	blobs, err := openBlobs(ctx, cfg)
	if err != nil {
		logger.Fatalf("open blob store: %v", err)
	}

	dir := directory.New(cfg.DirectoryBaseURL, logger)
	tree := state.Load(ctx, adapter, dir, logger)
	if err := state.Watch(ctx, tree, adapter); err != nil {
		logger.Printf("store watch unavailable, cross-session changes will not sync: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		logger.Fatalf("init renderer: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Tree:        tree,
		Store:       adapter,
		Portfolios:  portfoliosvc.New(tree, adapter, nil, logger),
		Offerings:   offeringsvc.New(tree, adapter, nil, logger),
		Quiz:        quizsvc.New(tree, adapter, nil, logger),
		Chat:        chatsvc.New(tree, nil),
		Users:       userssvc.New(tree, dir, nil, logger),
		Calculator:  calculatorsvc.New(tree, adapter, logger),
		Renderer:    renderer,
		Blobs:       blobs,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openBlobs(ctx context.Context, cfg config.Config) (blob.Store, error) {
	switch cfg.BlobDriver {
	case "fs":
		return blob.NewFS(cfg.UploadDir)
	case "s3":
		return blob.NewS3(ctx, blob.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			PathStyle:       cfg.S3PathStyle,
			PublicURL:       cfg.ImageBaseURL,
		})
	case "memory":
		return blob.NewMemory(), nil
	default:
		return nil, errors.New("unknown blob driver " + cfg.BlobDriver)
	}
}
