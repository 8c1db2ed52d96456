package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"freightbid/internal/lifecycle"
	model "freightbid/internal/models"
	"freightbid/internal/scoring"
	"freightbid/services/auction/helpers"
	"freightbid/utils"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

// AuctionServiceInterface is what the handlers need from the lifecycle
// service.
type AuctionServiceInterface interface {
	CreateAuction(actor model.Actor, input lifecycle.CreateAuctionInput) (model.Auction, error)
	PlaceOffer(actor model.Actor, auctionID string, price decimal.Decimal, leadTimeDays int) (model.Offer, error)
	CloseNow(actor model.Actor, auctionID string) (model.Auction, error)
	SelectWinner(actor model.Actor, auctionID, offerID, note string) (model.Auction, error)
	FinalizeDeserted(actor model.Actor, auctionID string) (model.Auction, error)
	Approve(actor model.Actor, auctionID string) (model.Auction, error)
	Reject(actor model.Actor, auctionID, reason string) (model.Auction, error)
	AttachPhoto(actor model.Actor, auctionID, filename string, data []byte, contentType string) (model.Auction, error)
	OpenAuctions() ([]lifecycle.OpenAuction, error)
	AuctionsInReview() ([]lifecycle.AuctionReview, error)
	AuctionsPendingApproval() ([]lifecycle.AuctionReview, error)
	History() ([]model.Auction, error)
	OffersForAuction(auctionID string) ([]model.Offer, error)
	RankOffers(auctionID string) (scoring.Rankings, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	actor := helpers.ActorFrom(c)
	auction, err := h.service.CreateAuction(actor, lifecycle.CreateAuctionInput{
		Title:           req.Title,
		Plate:           req.Plate,
		VehicleCategory: req.VehicleCategory,
		VehicleCount:    req.VehicleCount,
		TransportType:   req.TransportType,
		Origin:          req.Origin,
		PickupAddress:   req.PickupAddress,
		Destination:     req.Destination,
		DeliveryAddress: req.DeliveryAddress,
		HasKey:          req.HasKey,
		Running:         req.Running,
		Deadline:        req.Deadline,
		PriceWeight:     req.PriceWeight,
		LeadTimeWeight:  req.LeadTimeWeight,
		CodeSuffix:      req.CodeSuffix,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"actor": actor.Name,
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"code":       auction.Code,
		"actor":      actor.Name,
	})
}

// PlaceOfferHandler handles POST /auctions/:auction_id/offers
func (h *AuctionHandler) PlaceOfferHandler(c *gin.Context) {
	var req helpers.PlaceOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceOfferHandler", err)
		return
	}

	actor := helpers.ActorFrom(c)
	auctionID := c.Param("auction_id")
	offer, err := h.service.PlaceOffer(actor, auctionID, req.Price, req.LeadTimeDays)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceOfferHandler: offer not recorded", map[string]any{
			"auction_id": auctionID,
			"carrier":    actor.Name,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.OfferResponse{
		OfferID:      offer.OfferID,
		AuctionID:    offer.AuctionID,
		CarrierName:  offer.CarrierName,
		Price:        offer.Price.StringFixed(2),
		LeadTimeDays: offer.LeadTimeDays,
		CreatedAt:    offer.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "offer recorded successfully")
	helpers.LogSuccess("PlaceOfferHandler", "offer recorded successfully", map[string]any{
		"offer_id":   offer.OfferID,
		"auction_id": offer.AuctionID,
		"carrier":    offer.CarrierName,
		"price":      resp.Price,
	})
}

// CloseNowHandler handles POST /auctions/:auction_id/close
func (h *AuctionHandler) CloseNowHandler(c *gin.Context) {
	h.transition(c, "CloseNowHandler", "auction moved to review", func(actor model.Actor, auctionID string) (model.Auction, error) {
		return h.service.CloseNow(actor, auctionID)
	})
}

// SelectWinnerHandler handles POST /auctions/:auction_id/winner
func (h *AuctionHandler) SelectWinnerHandler(c *gin.Context) {
	var req helpers.SelectWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SelectWinnerHandler", err)
		return
	}

	h.transition(c, "SelectWinnerHandler", "winner selected, pending approval", func(actor model.Actor, auctionID string) (model.Auction, error) {
		return h.service.SelectWinner(actor, auctionID, req.OfferID, req.Note)
	})
}

// FinalizeDesertedHandler handles POST /auctions/:auction_id/deserted
func (h *AuctionHandler) FinalizeDesertedHandler(c *gin.Context) {
	h.transition(c, "FinalizeDesertedHandler", "auction finalized as deserted", func(actor model.Actor, auctionID string) (model.Auction, error) {
		return h.service.FinalizeDeserted(actor, auctionID)
	})
}

// ApproveHandler handles POST /auctions/:auction_id/approve
func (h *AuctionHandler) ApproveHandler(c *gin.Context) {
	h.transition(c, "ApproveHandler", "auction finalized", func(actor model.Actor, auctionID string) (model.Auction, error) {
		return h.service.Approve(actor, auctionID)
	})
}

// RejectHandler handles POST /auctions/:auction_id/reject
func (h *AuctionHandler) RejectHandler(c *gin.Context) {
	var req helpers.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RejectHandler", err)
		return
	}

	h.transition(c, "RejectHandler", "auction returned to review", func(actor model.Actor, auctionID string) (model.Auction, error) {
		return h.service.Reject(actor, auctionID, req.Reason)
	})
}

// transition runs one lifecycle transition and writes the shared
// success/error envelope.
func (h *AuctionHandler) transition(c *gin.Context, handlerName, successMsg string, fn func(model.Actor, string) (model.Auction, error)) {
	actor := helpers.ActorFrom(c)
	auctionID := c.Param("auction_id")

	auction, err := fn(actor, auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": transition failed", map[string]any{
			"auction_id": auctionID,
			"actor":      actor.Name,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{
		"auction_id": auction.AuctionID,
		"code":       auction.Code,
		"status":     string(auction.Status),
		"actor":      actor.Name,
	})
}

// UploadPhotoHandler handles POST /auctions/:auction_id/photo
func (h *AuctionHandler) UploadPhotoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		helpers.HandleBindError(c, "UploadPhotoHandler", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "unable to read uploaded file")
		return
	}

	actor := helpers.ActorFrom(c)
	auctionID := c.Param("auction_id")
	auction, err := h.service.AttachPhoto(actor, auctionID, fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UploadPhotoHandler: upload failed", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "photo attached successfully")
	helpers.LogSuccess("UploadPhotoHandler", "photo attached successfully", map[string]any{
		"auction_id": auction.AuctionID,
		"photo_url":  auction.PhotoURL,
	})
}

// OpenAuctionsHandler handles GET /auctions/open
func (h *AuctionHandler) OpenAuctionsHandler(c *gin.Context) {
	open, err := h.service.OpenAuctions()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, open, "open auctions retrieved successfully")
}

// AuctionsInReviewHandler handles GET /auctions/review
func (h *AuctionHandler) AuctionsInReviewHandler(c *gin.Context) {
	reviews, err := h.service.AuctionsInReview()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, reviews, "auctions in review retrieved successfully")
}

// AuctionsPendingApprovalHandler handles GET /auctions/approval
func (h *AuctionHandler) AuctionsPendingApprovalHandler(c *gin.Context) {
	pending, err := h.service.AuctionsPendingApproval()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, pending, "auctions pending approval retrieved successfully")
}

// HistoryHandler handles GET /auctions/history
func (h *AuctionHandler) HistoryHandler(c *gin.Context) {
	finalized, err := h.service.History()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}
	utils.JSONResponse(c, http.StatusOK, finalized, "auction history retrieved successfully")
}

// OffersByAuctionHandler handles GET /auctions/:auction_id/offers
func (h *AuctionHandler) OffersByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	offers, err := h.service.OffersForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("OffersByAuctionHandler: error retrieving offers", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}

	if offers == nil {
		offers = []model.Offer{}
	}
	utils.JSONResponse(c, http.StatusOK, offers, "offers retrieved successfully")
	helpers.LogSuccess("OffersByAuctionHandler", "offers retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(offers),
	})
}

// RankingsHandler handles GET /auctions/:auction_id/rankings
func (h *AuctionHandler) RankingsHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	rankings, err := h.service.RankOffers(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RankingsHandler: error computing rankings", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return
	}
	utils.JSONResponse(c, http.StatusOK, rankings, "rankings computed successfully")
}
