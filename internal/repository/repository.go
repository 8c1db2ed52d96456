package repository

import (
	"fmt"
	"sort"
	"sync"

	"freightbid/internal/auctionerrors"
	model "freightbid/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore is the shared record-store collaborator. The lifecycle service
// and the deadline sweeper never cache records between operations: every call
// re-fetches so transitions always see the latest persisted state.
type AuctionStore interface {
	InsertAuction(auction model.Auction) (model.Auction, error)
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionByCode(code string) (model.Auction, error)
	ListAuctionsByStatus(status model.Status) ([]model.Auction, error)
	UpdateAuction(auction model.Auction) error

	InsertOffer(offer model.Offer) (model.Offer, error)
	GetOffer(offerID string) (model.Offer, error)
	ListOffersByAuction(auctionID string) ([]model.Offer, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// It preserves offer insertion order per auction, which callers rely on for
// stable tie-breaking.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction // key: auctionID
	offers   map[string][]model.Offer // key: auctionID -> offers in insertion order
	offerIdx map[string]string        // key: offerID -> auctionID
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions: make(map[string]model.Auction),
		offers:   make(map[string][]model.Offer),
		offerIdx: make(map[string]string),
	}
}

// InsertAuction persists a new auction record
func (s *MemoryStore) InsertAuction(auction model.Auction) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if auction.AuctionID == "" {
		return model.Auction{}, fmt.Errorf("insert auction: missing id")
	}
	if auction.Code != "" {
		for _, existing := range s.auctions {
			if existing.Code == auction.Code {
				return model.Auction{}, fmt.Errorf("insert auction %s: %w", auction.Code, auctionerrors.ErrCodeTaken)
			}
		}
	}

	s.auctions[auction.AuctionID] = auction
	return auction, nil
}

// GetAuction returns one auction by id
func (s *MemoryStore) GetAuction(auctionID string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auction, ok := s.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// GetAuctionByCode returns one auction by its human-readable code
func (s *MemoryStore) GetAuctionByCode(code string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, auction := range s.auctions {
		if auction.Code == code {
			return auction, nil
		}
	}
	return model.Auction{}, fmt.Errorf("get auction by code %s: %w", code, auctionerrors.ErrAuctionNotFound)
}

// ListAuctionsByStatus returns all auctions currently in the given status,
// ordered by creation time so listings are deterministic.
func (s *MemoryStore) ListAuctionsByStatus(status model.Status) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Auction, 0)
	for _, auction := range s.auctions {
		if auction.Status == status {
			result = append(result, auction)
		}
	}
	sortAuctionsByCreation(result)
	return result, nil
}

// UpdateAuction overwrites an auction record (last write wins)
func (s *MemoryStore) UpdateAuction(auction model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[auction.AuctionID]; !ok {
		return fmt.Errorf("update auction %s: %w", auction.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	s.auctions[auction.AuctionID] = auction
	return nil
}

// InsertOffer records an offer against its auction
func (s *MemoryStore) InsertOffer(offer model.Offer) (model.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offer.OfferID == "" {
		return model.Offer{}, fmt.Errorf("insert offer: missing id")
	}
	if _, ok := s.auctions[offer.AuctionID]; !ok {
		return model.Offer{}, fmt.Errorf("insert offer for auction %s: %w", offer.AuctionID, auctionerrors.ErrAuctionNotFound)
	}

	s.offers[offer.AuctionID] = append(s.offers[offer.AuctionID], offer)
	s.offerIdx[offer.OfferID] = offer.AuctionID
	return offer, nil
}

// GetOffer returns one offer by id
func (s *MemoryStore) GetOffer(offerID string) (model.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctionID, ok := s.offerIdx[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, auctionerrors.ErrOfferNotFound)
	}
	for _, offer := range s.offers[auctionID] {
		if offer.OfferID == offerID {
			return offer, nil
		}
	}
	return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, auctionerrors.ErrOfferNotFound)
}

// ListOffersByAuction returns all offers for an auction in insertion order.
// An auction with no offers yields an empty slice, not an error: a deserted
// book is a valid state the lifecycle must handle.
func (s *MemoryStore) ListOffersByAuction(auctionID string) ([]model.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("list offers for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return append([]model.Offer(nil), s.offers[auctionID]...), nil
}

func sortAuctionsByCreation(auctions []model.Auction) {
	sort.SliceStable(auctions, func(i, j int) bool {
		return auctions[i].CreatedAt.Before(auctions[j].CreatedAt)
	})
}
