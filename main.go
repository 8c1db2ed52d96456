package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"freightbid/internal/config"
	"freightbid/internal/lifecycle"
	"freightbid/internal/notify"
	"freightbid/internal/objectstore"
	"freightbid/internal/reports"
	"freightbid/internal/repository"
	"freightbid/internal/server"
	"freightbid/internal/sweeper"
	"freightbid/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.Log.Level)

	store := repository.NewMemoryStore()
	notifier := notify.NewLogNotifier()
	reportGen := reports.NewFileGenerator(cfg.Reports.Dir)
	objects := objectstore.NewMemoryStore()

	auctionService := lifecycle.NewService(store, notifier, reportGen, objects)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The sweeper shares the store with the request handlers but nothing
	// else; it runs for the lifetime of the process.
	go sweeper.New(store, cfg.Sweeper.Interval).Run(ctx)

	router := server.SetupRouter(auctionService)

	fmt.Printf("Starting auction server on :%s...\n", cfg.HTTP.Port)
	if err := router.Run(":" + cfg.HTTP.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
