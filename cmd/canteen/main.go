package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/canteen/internal/autoorder"
	"github.com/and161185/canteen/internal/config"
	"github.com/and161185/canteen/internal/deps"
	"github.com/and161185/canteen/internal/server"
	"github.com/and161185/canteen/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	deps := deps.NewDependencies(cfg.Key)

	store, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURI)
	if err != nil {
		deps.Logger.Fatal(err)
	}

	engine := autoorder.NewEngine(store, deps.Logger)

	scheduler := autoorder.NewScheduler(engine, deps.Logger)
	if err := scheduler.Start(ctx); err != nil {
		deps.Logger.Fatal(err)
	}
	defer scheduler.Stop()

	srv := server.NewServer(store, engine, cfg, deps)
	if err := srv.Run(ctx); err != nil {
		deps.Logger.Fatal(err)
	}
}
