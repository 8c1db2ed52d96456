// Package lifecycle implements the auction state machine: who may move a BID
// from OPEN through IN_REVIEW and PENDING_APPROVAL to FINALIZED, and what
// each transition records.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"freightbid/internal/auctionerrors"
	"freightbid/internal/bidrules"
	model "freightbid/internal/models"
	"freightbid/internal/notify"
	"freightbid/internal/reports"
	"freightbid/internal/repository"
	"freightbid/internal/scoring"
	"freightbid/utils"
)

// photoBucket is the object-storage bucket holding lot photos.
const photoBucket = "vehicles"

// codeRetries bounds regeneration attempts on auction-code collisions.
const codeRetries = 5

// Service owns every lifecycle transition. Each operation re-fetches the
// records it needs and performs a single store write, so a failed operation
// leaves no partial state behind.
type Service struct {
	store    repository.AuctionStore
	notifier notify.Notifier
	reports  reports.Generator
	objects  ObjectStore

	now func() time.Time
}

// ObjectStore is the slice of the object-storage collaborator the lifecycle
// needs for photo uploads.
type ObjectStore interface {
	Upload(bucket, key string, data []byte, contentType string) (string, error)
}

// NewService creates a lifecycle service instance
func NewService(store repository.AuctionStore, notifier notify.Notifier, reportGen reports.Generator, objects ObjectStore) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		reports:  reportGen,
		objects:  objects,
		now:      time.Now,
	}
}

// CreateAuctionInput carries the descriptive fields of a new auction.
type CreateAuctionInput struct {
	Title           string
	Plate           string
	VehicleCategory string
	VehicleCount    int
	TransportType   string
	Origin          string
	PickupAddress   string
	Destination     string
	DeliveryAddress string
	HasKey          bool
	Running         bool
	Deadline        time.Time
	PriceWeight     int
	LeadTimeWeight  int

	// CodeSuffix is an optional operator-chosen tag appended to the
	// generated auction code.
	CodeSuffix string
}

// OpenAuction is an open auction together with its current leader (nil while
// the book is empty).
type OpenAuction struct {
	Auction model.Auction `json:"auction"`
	Leader  *model.Offer  `json:"leader,omitempty"`
}

// AuctionReview is an auction under analysis or approval together with its
// rankings.
type AuctionReview struct {
	Auction  model.Auction    `json:"auction"`
	Rankings scoring.Rankings `json:"rankings"`
}

// CreateAuction opens a new auction. Admin only. The human-readable code is
// generated from the current month plus a random suffix and re-generated on
// store collisions.
func (s *Service) CreateAuction(actor model.Actor, input CreateAuctionInput) (model.Auction, error) {
	if !actor.IsAdmin() {
		return model.Auction{}, fmt.Errorf("lifecycle: create auction: %w", auctionerrors.ErrForbidden)
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Origin) == "" || strings.TrimSpace(input.Destination) == "" {
		return model.Auction{}, fmt.Errorf("lifecycle: create auction: title, origin and destination are required")
	}
	if input.Deadline.IsZero() {
		return model.Auction{}, fmt.Errorf("lifecycle: create auction: closing deadline is required")
	}

	now := s.now().UTC()

	priceWeight, leadTimeWeight := input.PriceWeight, input.LeadTimeWeight
	if priceWeight <= 0 || leadTimeWeight <= 0 || priceWeight+leadTimeWeight != 100 {
		priceWeight, leadTimeWeight = scoring.DefaultPriceWeight, scoring.DefaultLeadTimeWeight
	}

	code, err := s.uniqueCode(now, input.CodeSuffix)
	if err != nil {
		return model.Auction{}, err
	}

	count := input.VehicleCount
	if count <= 0 {
		count = 1
	}

	auction := model.Auction{
		AuctionID:       utils.GenerateID(),
		Code:            code,
		Title:           input.Title,
		Plate:           input.Plate,
		VehicleCategory: input.VehicleCategory,
		VehicleCount:    count,
		TransportType:   input.TransportType,
		Origin:          input.Origin,
		PickupAddress:   input.PickupAddress,
		Destination:     input.Destination,
		DeliveryAddress: input.DeliveryAddress,
		HasKey:          input.HasKey,
		Running:         input.Running,
		Status:          model.StatusOpen,
		Deadline:        input.Deadline.UTC(),
		PriceWeight:     priceWeight,
		LeadTimeWeight:  leadTimeWeight,
		CreatedStamp:    &model.Stamp{Actor: actor.Name, At: now},
		CreatedAt:       now,
	}

	created, err := s.store.InsertAuction(auction)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: insert auction: %w", err)
	}

	s.notifier.Notify(notify.EventNewAuction, notify.Payload{
		AuctionID:   created.AuctionID,
		AuctionCode: created.Code,
		Title:       created.Title,
	})
	return created, nil
}

// uniqueCode generates an auction code and retries on collisions. The store
// is the single source of truth for uniqueness.
func (s *Service) uniqueCode(now time.Time, suffix string) (string, error) {
	suffix = strings.ToUpper(strings.TrimSpace(suffix))
	for attempt := 0; attempt <= codeRetries; attempt++ {
		code := utils.GenerateAuctionCode(now)
		if suffix != "" {
			code = code + "-" + suffix
		}
		_, err := s.store.GetAuctionByCode(code)
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("lifecycle: check auction code: %w", err)
		}
		utils.Warn("auction code collision, regenerating", map[string]any{"code": code})
	}
	return "", fmt.Errorf("lifecycle: generate auction code: %w", auctionerrors.ErrCodeTaken)
}

// PlaceOffer validates and records a carrier's offer against an open
// auction. The leader is re-read immediately before insertion; there is no
// compare-and-swap, so two concurrent offers may both validate against the
// same stale leader. That relaxation is accepted: the book keeps every
// recorded offer and the admin picks the winner from the full book later.
func (s *Service) PlaceOffer(actor model.Actor, auctionID string, price decimal.Decimal, leadTimeDays int) (model.Offer, error) {
	if actor.Role != model.RoleCarrier || actor.Name == "" {
		return model.Offer{}, fmt.Errorf("lifecycle: place offer: only named carriers may bid: %w", auctionerrors.ErrForbidden)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("lifecycle: place offer: %w", err)
	}
	now := s.now().UTC()
	if auction.Status != model.StatusOpen || now.After(auction.Deadline) {
		return model.Offer{}, fmt.Errorf("lifecycle: place offer on %s: %w", auction.Code, auctionerrors.ErrAuctionClosed)
	}

	book, err := s.store.ListOffersByAuction(auctionID)
	if err != nil {
		return model.Offer{}, fmt.Errorf("lifecycle: read offer book: %w", err)
	}
	best := bidrules.CurrentBest(book)

	offer := model.Offer{
		OfferID:      utils.GenerateID(),
		AuctionID:    auctionID,
		CarrierName:  actor.Name,
		Price:        price,
		LeadTimeDays: leadTimeDays,
		CreatedAt:    now,
	}
	if err := bidrules.Validate(offer, best); err != nil {
		return model.Offer{}, fmt.Errorf("lifecycle: %w", err)
	}

	recorded, err := s.store.InsertOffer(offer)
	if err != nil {
		return model.Offer{}, fmt.Errorf("lifecycle: record offer: %w", err)
	}

	if best != nil && best.CarrierName != recorded.CarrierName && recorded.Price.LessThan(best.Price) {
		s.notifier.Notify(notify.EventOutbid, notify.Payload{
			AuctionID:   auction.AuctionID,
			AuctionCode: auction.Code,
			Title:       auction.Title,
			CarrierName: best.CarrierName,
			Price:       recorded.Price,
		})
	}
	return recorded, nil
}

// CloseNow moves an open auction to IN_REVIEW ahead of its deadline.
// Admin only.
func (s *Service) CloseNow(actor model.Actor, auctionID string) (model.Auction, error) {
	if !actor.IsAdmin() {
		return model.Auction{}, fmt.Errorf("lifecycle: close auction: %w", auctionerrors.ErrForbidden)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: close auction: %w", err)
	}
	if auction.Status != model.StatusOpen {
		return model.Auction{}, fmt.Errorf("lifecycle: close auction %s in %s: %w", auction.Code, auction.Status, auctionerrors.ErrWrongStatus)
	}

	auction.Status = model.StatusInReview
	auction.ClosedStamp = &model.Stamp{Actor: actor.Name, At: s.now().UTC()}
	if err := s.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: close auction: %w", err)
	}
	return auction, nil
}

// SelectWinner marks an offer as the proposed winner and sends the auction
// to master approval. Admin only; the offer must belong to the auction.
func (s *Service) SelectWinner(actor model.Actor, auctionID, offerID, note string) (model.Auction, error) {
	if !actor.IsAdmin() {
		return model.Auction{}, fmt.Errorf("lifecycle: select winner: %w", auctionerrors.ErrForbidden)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: select winner: %w", err)
	}
	if auction.Status != model.StatusInReview {
		return model.Auction{}, fmt.Errorf("lifecycle: select winner for %s in %s: %w", auction.Code, auction.Status, auctionerrors.ErrWrongStatus)
	}

	offer, err := s.store.GetOffer(offerID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: select winner: %w", err)
	}
	if offer.AuctionID != auctionID {
		return model.Auction{}, fmt.Errorf("lifecycle: offer %s: %w", offerID, auctionerrors.ErrOfferMismatch)
	}

	auction.Status = model.StatusPendingApproval
	auction.WinningOfferID = offer.OfferID
	auction.SelectionNote = note
	auction.SelectionStamp = &model.Stamp{Actor: actor.Name, At: s.now().UTC()}
	if err := s.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: select winner: %w", err)
	}
	return auction, nil
}

// FinalizeDeserted closes an auction that received no offers. Admin only;
// the transition is guarded on the book actually being empty.
func (s *Service) FinalizeDeserted(actor model.Actor, auctionID string) (model.Auction, error) {
	if !actor.IsAdmin() {
		return model.Auction{}, fmt.Errorf("lifecycle: finalize deserted: %w", auctionerrors.ErrForbidden)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: finalize deserted: %w", err)
	}
	if auction.Status != model.StatusInReview {
		return model.Auction{}, fmt.Errorf("lifecycle: finalize deserted %s in %s: %w", auction.Code, auction.Status, auctionerrors.ErrWrongStatus)
	}

	book, err := s.store.ListOffersByAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: finalize deserted: %w", err)
	}
	if len(book) > 0 {
		return model.Auction{}, fmt.Errorf("lifecycle: finalize deserted %s: %w", auction.Code, auctionerrors.ErrAuctionHasOffers)
	}

	now := s.now().UTC()
	auction.Status = model.StatusFinalized
	auction.SelectionStamp = &model.Stamp{Actor: actor.Name, At: now}
	// A deserted close needs no master sign-off; the system stamps approval.
	auction.ApprovalStamp = &model.Stamp{Actor: "system", At: now}
	if err := s.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: finalize deserted: %w", err)
	}
	return auction, nil
}

// Approve finalizes a pending auction. Master only. Audit artifacts are
// generated synchronously and handed to the notifier; a failed report does
// not roll the (already committed) transition back — it is logged and the
// notification goes out without attachments.
func (s *Service) Approve(actor model.Actor, auctionID string) (model.Auction, error) {
	if !actor.IsMaster() {
		return model.Auction{}, fmt.Errorf("lifecycle: approve: %w", auctionerrors.ErrForbidden)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: approve: %w", err)
	}
	if auction.Status != model.StatusPendingApproval {
		return model.Auction{}, fmt.Errorf("lifecycle: approve %s in %s: %w", auction.Code, auction.Status, auctionerrors.ErrWrongStatus)
	}

	winner, err := s.store.GetOffer(auction.WinningOfferID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: approve: load winning offer: %w", err)
	}

	auction.Status = model.StatusFinalized
	auction.ApprovalStamp = &model.Stamp{Actor: actor.Name, At: s.now().UTC()}
	if err := s.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: approve: %w", err)
	}

	book, err := s.store.ListOffersByAuction(auctionID)
	if err != nil {
		utils.Error("approve: offer book unavailable for audit report", map[string]any{
			"auction_id": auctionID, "error": err.Error(),
		})
		book = nil
	}
	rankings := scoring.Rank(book, auction.PriceWeight, auction.LeadTimeWeight)

	var artifactPaths []string
	artifacts, err := s.reports.GenerateAuditArtifacts(auction, book, &winner, rankings)
	if err != nil {
		utils.Error("approve: audit artifact generation failed", map[string]any{
			"auction_id": auctionID, "error": err.Error(),
		})
	} else {
		for _, artifact := range artifacts {
			artifactPaths = append(artifactPaths, artifact.Path)
		}
	}

	s.notifier.Notify(notify.EventApprovalFinal, notify.Payload{
		AuctionID:   auction.AuctionID,
		AuctionCode: auction.Code,
		Title:       auction.Title,
		CarrierName: winner.CarrierName,
		Price:       winner.Price,
		Artifacts:   artifactPaths,
	})
	return auction, nil
}

// Reject sends a pending auction back to analysis, clearing the proposed
// winner. Master only.
func (s *Service) Reject(actor model.Actor, auctionID, reason string) (model.Auction, error) {
	if !actor.IsMaster() {
		return model.Auction{}, fmt.Errorf("lifecycle: reject: %w", auctionerrors.ErrForbidden)
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: reject: %w", err)
	}
	if auction.Status != model.StatusPendingApproval {
		return model.Auction{}, fmt.Errorf("lifecycle: reject %s in %s: %w", auction.Code, auction.Status, auctionerrors.ErrWrongStatus)
	}

	auction.Status = model.StatusInReview
	auction.WinningOfferID = ""
	auction.SelectionNote = ""
	auction.SelectionStamp = nil
	if err := s.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: reject: %w", err)
	}

	s.notifier.Notify(notify.EventRejection, notify.Payload{
		AuctionID:   auction.AuctionID,
		AuctionCode: auction.Code,
		Title:       auction.Title,
		Reason:      reason,
	})
	return auction, nil
}

// AttachPhoto uploads a lot photo and records its public URL. Admin only;
// allowed while the auction is still open.
func (s *Service) AttachPhoto(actor model.Actor, auctionID, filename string, data []byte, contentType string) (model.Auction, error) {
	if !actor.IsAdmin() {
		return model.Auction{}, fmt.Errorf("lifecycle: attach photo: %w", auctionerrors.ErrForbidden)
	}
	if len(data) == 0 {
		return model.Auction{}, fmt.Errorf("lifecycle: attach photo: empty file")
	}

	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: attach photo: %w", err)
	}
	if auction.Status != model.StatusOpen {
		return model.Auction{}, fmt.Errorf("lifecycle: attach photo to %s in %s: %w", auction.Code, auction.Status, auctionerrors.ErrWrongStatus)
	}

	key := fmt.Sprintf("%d_%s", s.now().UTC().Unix(), strings.ReplaceAll(filename, " ", "_"))
	url, err := s.objects.Upload(photoBucket, key, data, contentType)
	if err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: upload photo: %w", err)
	}

	auction.PhotoURL = url
	if err := s.store.UpdateAuction(auction); err != nil {
		return model.Auction{}, fmt.Errorf("lifecycle: attach photo: %w", err)
	}
	return auction, nil
}

// OpenAuctions lists open auctions together with the current leader of each.
func (s *Service) OpenAuctions() ([]OpenAuction, error) {
	auctions, err := s.store.ListAuctionsByStatus(model.StatusOpen)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: list open auctions: %w", err)
	}

	result := make([]OpenAuction, 0, len(auctions))
	for _, auction := range auctions {
		book, err := s.store.ListOffersByAuction(auction.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("lifecycle: read offer book for %s: %w", auction.Code, err)
		}
		result = append(result, OpenAuction{
			Auction: auction,
			Leader:  bidrules.CurrentBest(book),
		})
	}
	return result, nil
}

// AuctionsInReview lists auctions awaiting winner selection, with rankings.
func (s *Service) AuctionsInReview() ([]AuctionReview, error) {
	return s.reviewsByStatus(model.StatusInReview)
}

// AuctionsPendingApproval lists auctions awaiting master sign-off, with
// rankings.
func (s *Service) AuctionsPendingApproval() ([]AuctionReview, error) {
	return s.reviewsByStatus(model.StatusPendingApproval)
}

func (s *Service) reviewsByStatus(status model.Status) ([]AuctionReview, error) {
	auctions, err := s.store.ListAuctionsByStatus(status)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: list %s auctions: %w", status, err)
	}

	result := make([]AuctionReview, 0, len(auctions))
	for _, auction := range auctions {
		book, err := s.store.ListOffersByAuction(auction.AuctionID)
		if err != nil {
			return nil, fmt.Errorf("lifecycle: read offer book for %s: %w", auction.Code, err)
		}
		result = append(result, AuctionReview{
			Auction:  auction,
			Rankings: scoring.Rank(book, auction.PriceWeight, auction.LeadTimeWeight),
		})
	}
	return result, nil
}

// History lists finalized auctions.
func (s *Service) History() ([]model.Auction, error) {
	auctions, err := s.store.ListAuctionsByStatus(model.StatusFinalized)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: list finalized auctions: %w", err)
	}
	return auctions, nil
}

// OffersForAuction returns the full offer book in submission order.
func (s *Service) OffersForAuction(auctionID string) ([]model.Offer, error) {
	book, err := s.store.ListOffersByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: list offers: %w", err)
	}
	return book, nil
}

// RankOffers returns the three rankings for one auction using its configured
// weights.
func (s *Service) RankOffers(auctionID string) (scoring.Rankings, error) {
	auction, err := s.store.GetAuction(auctionID)
	if err != nil {
		return scoring.Rankings{}, fmt.Errorf("lifecycle: rank offers: %w", err)
	}
	book, err := s.store.ListOffersByAuction(auctionID)
	if err != nil {
		return scoring.Rankings{}, fmt.Errorf("lifecycle: rank offers: %w", err)
	}
	return scoring.Rank(book, auction.PriceWeight, auction.LeadTimeWeight), nil
}
