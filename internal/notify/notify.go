// Package notify dispatches lifecycle events to external channels. Delivery
// is fire-and-forget: the lifecycle never blocks on, or consumes errors
// from, a notification.
package notify

import (
	"github.com/shopspring/decimal"

	"freightbid/utils"
)

// Event identifies what happened.
type Event string

const (
	EventNewAuction    Event = "NEW_AUCTION"
	EventOutbid        Event = "OUTBID"
	EventApprovalFinal Event = "APPROVAL_FINAL"
	EventRejection     Event = "REJECTION"
)

// Payload carries the event context. Only the fields relevant to the event
// are populated; Artifacts is set for APPROVAL_FINAL and lists audit report
// files to attach.
type Payload struct {
	AuctionID   string
	AuctionCode string
	Title       string
	CarrierName string
	Price       decimal.Decimal
	Reason      string
	Artifacts   []string
}

// Notifier is the outbound-notification collaborator. Implementations must
// not block the caller and must swallow their own delivery failures.
type Notifier interface {
	Notify(event Event, payload Payload)
}

// LogNotifier writes every event to the structured log. It stands in for the
// e-mail dispatcher in local runs and tests.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the event asynchronously
func (n *LogNotifier) Notify(event Event, payload Payload) {
	go func() {
		utils.Info("notification dispatched", map[string]any{
			"event":        string(event),
			"auction_id":   payload.AuctionID,
			"auction_code": payload.AuctionCode,
			"title":        payload.Title,
			"carrier":      payload.CarrierName,
			"price":        payload.Price.String(),
			"reason":       payload.Reason,
			"artifacts":    payload.Artifacts,
		})
	}()
}
