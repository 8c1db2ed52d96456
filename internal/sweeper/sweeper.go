// Package sweeper autonomously closes open auctions whose deadline has
// passed, moving them to IN_REVIEW so no offer can arrive after close.
package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	model "freightbid/internal/models"
	"freightbid/internal/repository"
	"freightbid/utils"
)

var (
	sweepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweeper_ticks_total",
		Help: "The total number of sweep passes executed",
	})
	auctionsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweeper_auctions_closed_total",
		Help: "The total number of overdue auctions moved to review",
	})
	sweepErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweeper_errors_total",
		Help: "The total number of failed store operations during sweeps",
	})
)

// DefaultInterval is how often the sweeper checks deadlines.
const DefaultInterval = 10 * time.Second

// Sweeper polls the store for overdue open auctions. It holds no state
// between ticks; every pass re-fetches the OPEN set, which also makes a
// second pass over already-closed auctions a natural no-op.
type Sweeper struct {
	store    repository.AuctionStore
	interval time.Duration
	now      func() time.Time
}

// New creates a sweeper; a non-positive interval falls back to the default.
func New(store repository.AuctionStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		store:    store,
		interval: interval,
		now:      time.Now,
	}
}

// Run loops Tick on the configured interval until ctx is cancelled. A failed
// tick is logged and the loop keeps going.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("deadline sweeper started", map[string]any{"interval": s.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("deadline sweeper stopped", nil)
			return
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				utils.Error("sweep pass failed", map[string]any{"error": err.Error()})
			}
		}
	}
}

// Tick runs one sweep pass: fetch OPEN auctions, compare deadlines in UTC,
// move overdue ones to IN_REVIEW. A failure on one auction is logged and
// does not stop the rest of the pass. Tick never touches offer records.
func (s *Sweeper) Tick() error {
	sweepsTotal.Inc()

	open, err := s.store.ListAuctionsByStatus(model.StatusOpen)
	if err != nil {
		sweepErrors.Inc()
		return fmt.Errorf("sweeper: list open auctions: %w", err)
	}

	now := s.now().UTC()
	for _, auction := range open {
		if auction.Deadline.IsZero() || !now.After(auction.Deadline) {
			continue
		}

		auction.Status = model.StatusInReview
		auction.ClosedStamp = &model.Stamp{Actor: "sweeper", At: now}
		if err := s.store.UpdateAuction(auction); err != nil {
			sweepErrors.Inc()
			utils.Error("failed to close overdue auction", map[string]any{
				"auction_id": auction.AuctionID,
				"code":       auction.Code,
				"error":      err.Error(),
			})
			continue
		}

		auctionsClosed.Inc()
		utils.Info("deadline passed, auction moved to review", map[string]any{
			"auction_id": auction.AuctionID,
			"code":       auction.Code,
			"deadline":   auction.Deadline.Format(time.RFC3339),
		})
	}
	return nil
}
