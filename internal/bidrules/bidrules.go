// Package bidrules holds the pure acceptance rule deciding whether a new
// offer may enter an auction's book, and the deterministic selection of the
// current leader.
package bidrules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"freightbid/internal/auctionerrors"
	model "freightbid/internal/models"
)

// Validate decides whether offer may be recorded given the current leader.
// best is nil when the book is empty; in that case any well-formed offer is
// accepted. With a leader in place:
//   - a strictly lower price is always accepted, whatever the lead time
//   - an equal or higher price is accepted only with a strictly better
//     (shorter) lead time
//
// Validate never touches the store; callers fetch the leader immediately
// before insertion.
func Validate(offer model.Offer, best *model.Offer) error {
	if offer.CarrierName == "" {
		return fmt.Errorf("%w: missing carrier name", auctionerrors.ErrInvalidOffer)
	}
	if offer.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price must be positive", auctionerrors.ErrInvalidOffer)
	}
	if offer.LeadTimeDays <= 0 {
		return fmt.Errorf("%w: lead time must be a positive number of days", auctionerrors.ErrInvalidOffer)
	}

	if best == nil {
		return nil
	}

	switch cmp := offer.Price.Cmp(best.Price); {
	case cmp > 0 && offer.LeadTimeDays >= best.LeadTimeDays:
		return fmt.Errorf("%w: price above the current leader requires a lead time under %d days",
			auctionerrors.ErrOfferRejected, best.LeadTimeDays)
	case cmp == 0 && offer.LeadTimeDays >= best.LeadTimeDays:
		return fmt.Errorf("%w: price ties the current leader without a better lead time",
			auctionerrors.ErrOfferRejected)
	}
	return nil
}

// CurrentBest returns the leading offer: lowest price, ties broken by
// earliest submission, then by shortest lead time. Returns nil for an empty
// book. The returned offer is a copy; mutating it does not affect the input.
func CurrentBest(offers []model.Offer) *model.Offer {
	if len(offers) == 0 {
		return nil
	}

	best := offers[0]
	for _, offer := range offers[1:] {
		switch cmp := offer.Price.Cmp(best.Price); {
		case cmp < 0:
			best = offer
		case cmp == 0 && offer.CreatedAt.Before(best.CreatedAt):
			best = offer
		case cmp == 0 && offer.CreatedAt.Equal(best.CreatedAt) && offer.LeadTimeDays < best.LeadTimeDays:
			best = offer
		}
	}
	return &best
}
