package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an auction. Auctions only move forward
// (OPEN -> IN_REVIEW -> PENDING_APPROVAL -> FINALIZED) except for the single
// back-edge PENDING_APPROVAL -> IN_REVIEW when a master admin rejects the
// selected winner.
type Status string

const (
	StatusOpen            Status = "OPEN"
	StatusInReview        Status = "IN_REVIEW"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusFinalized       Status = "FINALIZED"
)

// Role is the access level of the actor performing an operation.
type Role string

const (
	RoleCarrier Role = "carrier"
	RoleAdmin   Role = "admin"
	RoleMaster  Role = "master"
)

// Actor identifies who triggered an operation. It is built per request from
// the identity headers and passed explicitly into every lifecycle call;
// nothing reads identity from ambient state.
type Actor struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the actor holds administrative access. Master
// admins hold every standard-admin permission as well.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleMaster
}

// IsMaster reports whether the actor may approve or reject selected winners.
func (a Actor) IsMaster() bool {
	return a.Role == RoleMaster
}

// Stamp records who performed a lifecycle transition and when. Each
// transition writes its own stamp exactly once; stamps are never overwritten.
type Stamp struct {
	Actor string    `json:"actor"`
	At    time.Time `json:"at"`
}

// Auction represents one transport-lot reverse auction (a "BID").
type Auction struct {
	AuctionID       string    `json:"auction_id"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Plate           string    `json:"plate,omitempty"`
	VehicleCategory string    `json:"vehicle_category,omitempty"`
	VehicleCount    int       `json:"vehicle_count"`
	TransportType   string    `json:"transport_type,omitempty"`
	Origin          string    `json:"origin"`
	PickupAddress   string    `json:"pickup_address,omitempty"`
	Destination     string    `json:"destination"`
	DeliveryAddress string    `json:"delivery_address,omitempty"`
	HasKey          bool      `json:"has_key"`
	Running         bool      `json:"running"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Status          Status    `json:"status"`
	Deadline        time.Time `json:"deadline"`

	// Score weights for the final ranking. They must sum to 100; new
	// auctions default to 70 (price) / 30 (lead time).
	PriceWeight    int `json:"price_weight"`
	LeadTimeWeight int `json:"lead_time_weight"`

	// WinningOfferID is set only while the auction is PENDING_APPROVAL or
	// FINALIZED; a rejection clears it together with the selection stamp.
	WinningOfferID string `json:"winning_offer_id,omitempty"`
	SelectionNote  string `json:"selection_note,omitempty"`

	CreatedStamp   *Stamp    `json:"created_stamp,omitempty"`
	ClosedStamp    *Stamp    `json:"closed_stamp,omitempty"`
	SelectionStamp *Stamp    `json:"selection_stamp,omitempty"`
	ApprovalStamp  *Stamp    `json:"approval_stamp,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Offer is a carrier's price + lead-time submission against an auction.
// Offers are immutable; a carrier improves its position by submitting a new
// one, and only the carrier's cheapest offer counts toward the rankings.
type Offer struct {
	OfferID      string          `json:"offer_id"`
	AuctionID    string          `json:"auction_id"`
	CarrierName  string          `json:"carrier_name"`
	Price        decimal.Decimal `json:"price"`
	LeadTimeDays int             `json:"lead_time_days"`
	CreatedAt    time.Time       `json:"created_at"`
}
