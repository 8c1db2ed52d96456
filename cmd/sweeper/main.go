// Standalone deadline-sweeper worker. It runs the same sweep loop the API
// process embeds, with its own store client and a Prometheus metrics
// endpoint, for deployments that schedule the sweeper separately.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"freightbid/internal/config"
	"freightbid/internal/repository"
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

	// The in-memory store is a stand-in; production wiring points this at
	// the shared remote store behind the same AuctionStore interface.
	store := repository.NewMemoryStore()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		utils.Info("sweeper metrics listening", map[string]any{"port": cfg.Sweeper.MetricsPort})
		if err := http.ListenAndServe(":"+cfg.Sweeper.MetricsPort, mux); err != nil {
			utils.Error("metrics server stopped", map[string]any{"error": err.Error()})
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper.New(store, cfg.Sweeper.Interval).Run(ctx)
}
