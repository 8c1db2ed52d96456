package bidrules

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"freightbid/internal/auctionerrors"
	model "freightbid/internal/models"
)

// Helper to create an offer
func newOffer(carrier string, price float64, leadTimeDays int, createdAt time.Time) model.Offer {
	return model.Offer{
		OfferID:      carrier + "-offer",
		AuctionID:    "auction1",
		CarrierName:  carrier,
		Price:        decimal.NewFromFloat(price),
		LeadTimeDays: leadTimeDays,
		CreatedAt:    createdAt,
	}
}

// Tests Validate
func TestValidate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	best := newOffer("leader", 100, 5, now)

	tests := []struct {
		name          string
		offer         model.Offer
		best          *model.Offer
		expectedError error
	}{
		{
			name:  "first_offer_accepted",
			offer: newOffer("carrierA", 500, 10, now),
			best:  nil,
		},
		{
			name:          "first_offer_zero_price",
			offer:         newOffer("carrierA", 0, 10, now),
			best:          nil,
			expectedError: auctionerrors.ErrInvalidOffer,
		},
		{
			name:          "first_offer_negative_price",
			offer:         newOffer("carrierA", -10, 10, now),
			best:          nil,
			expectedError: auctionerrors.ErrInvalidOffer,
		},
		{
			name:          "first_offer_zero_lead_time",
			offer:         newOffer("carrierA", 100, 0, now),
			best:          nil,
			expectedError: auctionerrors.ErrInvalidOffer,
		},
		{
			name:          "missing_carrier_name",
			offer:         newOffer("", 100, 5, now),
			best:          nil,
			expectedError: auctionerrors.ErrInvalidOffer,
		},
		{
			name:  "strictly_lower_price_always_accepted",
			offer: newOffer("carrierB", 90, 10, now),
			best:  &best,
		},
		{
			name:          "exact_tie_never_unseats",
			offer:         newOffer("carrierB", 100, 5, now),
			best:          &best,
			expectedError: auctionerrors.ErrOfferRejected,
		},
		{
			name:  "equal_price_strictly_better_lead_time",
			offer: newOffer("carrierB", 100, 4, now),
			best:  &best,
		},
		{
			name:          "equal_price_worse_lead_time",
			offer:         newOffer("carrierB", 100, 6, now),
			best:          &best,
			expectedError: auctionerrors.ErrOfferRejected,
		},
		{
			name:  "higher_price_strictly_better_lead_time",
			offer: newOffer("carrierB", 120, 4, now),
			best:  &best,
		},
		{
			name:          "higher_price_equal_lead_time",
			offer:         newOffer("carrierB", 120, 5, now),
			best:          &best,
			expectedError: auctionerrors.ErrOfferRejected,
		},
		{
			name:          "higher_price_worse_lead_time",
			offer:         newOffer("carrierB", 120, 8, now),
			best:          &best,
			expectedError: auctionerrors.ErrOfferRejected,
		},
		{
			name:          "zero_price_with_leader",
			offer:         newOffer("carrierB", 0, 1, now),
			best:          &best,
			expectedError: auctionerrors.ErrInvalidOffer,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.offer, tc.best)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Tests CurrentBest
func TestCurrentBest(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty_book", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, CurrentBest(nil))
		require.Nil(t, CurrentBest([]model.Offer{}))
	})

	t.Run("lowest_price_wins", func(t *testing.T) {
		t.Parallel()
		offers := []model.Offer{
			newOffer("carrierA", 100, 5, base),
			newOffer("carrierB", 90, 7, base.Add(time.Minute)),
			newOffer("carrierC", 95, 3, base.Add(2*time.Minute)),
		}
		best := CurrentBest(offers)
		require.NotNil(t, best)
		require.Equal(t, "carrierB", best.CarrierName)
	})

	t.Run("price_tie_broken_by_earliest_submission", func(t *testing.T) {
		t.Parallel()
		offers := []model.Offer{
			newOffer("late", 90, 3, base.Add(time.Hour)),
			newOffer("early", 90, 7, base),
		}
		best := CurrentBest(offers)
		require.NotNil(t, best)
		require.Equal(t, "early", best.CarrierName)
	})

	t.Run("full_tie_broken_by_lead_time", func(t *testing.T) {
		t.Parallel()
		offers := []model.Offer{
			newOffer("slow", 90, 7, base),
			newOffer("fast", 90, 3, base),
		}
		best := CurrentBest(offers)
		require.NotNil(t, best)
		require.Equal(t, "fast", best.CarrierName)
	})

	t.Run("returns_copy", func(t *testing.T) {
		t.Parallel()
		offers := []model.Offer{newOffer("carrierA", 100, 5, base)}
		best := CurrentBest(offers)
		best.CarrierName = "mutated"
		require.Equal(t, "carrierA", offers[0].CarrierName)
	})
}
