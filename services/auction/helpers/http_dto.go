package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title           string    `json:"title" binding:"required"`
	Plate           string    `json:"plate"`
	VehicleCategory string    `json:"vehicle_category"`
	VehicleCount    int       `json:"vehicle_count"`
	TransportType   string    `json:"transport_type"`
	Origin          string    `json:"origin" binding:"required"`
	PickupAddress   string    `json:"pickup_address"`
	Destination     string    `json:"destination" binding:"required"`
	DeliveryAddress string    `json:"delivery_address"`
	HasKey          bool      `json:"has_key"`
	Running         bool      `json:"running"`
	Deadline        time.Time `json:"deadline" binding:"required"`
	PriceWeight     int       `json:"price_weight"`
	LeadTimeWeight  int       `json:"lead_time_weight"`
	CodeSuffix      string    `json:"code_suffix"`
}

type PlaceOfferRequest struct {
	Price        decimal.Decimal `json:"price"`
	LeadTimeDays int             `json:"lead_time_days" binding:"required,gt=0"`
}

type SelectWinnerRequest struct {
	OfferID string `json:"offer_id" binding:"required"`
	Note    string `json:"note"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type OfferResponse struct {
	OfferID      string `json:"offer_id"`
	AuctionID    string `json:"auction_id"`
	CarrierName  string `json:"carrier_name"`
	Price        string `json:"price"`
	LeadTimeDays int    `json:"lead_time_days"`
	CreatedAt    string `json:"created_at"`
}
