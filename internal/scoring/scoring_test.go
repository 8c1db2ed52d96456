package scoring

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	model "freightbid/internal/models"
)

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

func carriers(scored []ScoredOffer) []string {
	names := make([]string, 0, len(scored))
	for _, s := range scored {
		names = append(names, s.CarrierName)
	}
	return names
}

// Tests Rank against the worked three-offer example:
// A:100/5d, B:90/7d, C:90/3d with default 70/30 weights.
func TestRank_ThreeOffers(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	offers := []model.Offer{
		newOffer("carrierA", 100, 5, base),
		newOffer("carrierB", 90, 7, base.Add(time.Minute)),
		newOffer("carrierC", 90, 3, base.Add(2*time.Minute)),
	}

	rankings := Rank(offers, DefaultPriceWeight, DefaultLeadTimeWeight)

	// Price ranking: B and C tie at 90 and keep submission order.
	require.Equal(t, []string{"carrierB", "carrierC", "carrierA"}, carriers(rankings.ByPrice))

	// Lead-time ranking: C(3), A(5), B(7).
	require.Equal(t, []string{"carrierC", "carrierA", "carrierB"}, carriers(rankings.ByLeadTime))

	// Scores: C=100, B=70+30*(3/7)=82.857, A=70*0.9+30*0.6=81.
	require.Equal(t, []string{"carrierC", "carrierB", "carrierA"}, carriers(rankings.ByScore))
	require.InDelta(t, 100.0, rankings.ByScore[0].Score, 1e-9)
	require.InDelta(t, 82.857142857, rankings.ByScore[1].Score, 1e-6)
	require.InDelta(t, 81.0, rankings.ByScore[2].Score, 1e-9)
}

// Tests that the minimizer on both dimensions scores exactly 100 and nothing
// is clamped above it.
func TestRank_DoubleMinimizerScores100(t *testing.T) {
	t.Parallel()

	base := time.Now().UTC()
	offers := []model.Offer{
		newOffer("cheapAndFast", 50, 2, base),
		newOffer("expensiveAndSlow", 200, 10, base),
	}

	rankings := Rank(offers, DefaultPriceWeight, DefaultLeadTimeWeight)
	require.InDelta(t, 100.0, rankings.ByScore[0].Score, 1e-9)
	require.Less(t, rankings.ByScore[1].Score, 100.0)
}

// Tests price-ranking property: lower price always ranks first regardless of
// lead time.
func TestRank_PriceRankingIgnoresLeadTime(t *testing.T) {
	t.Parallel()

	base := time.Now().UTC()
	offers := []model.Offer{
		newOffer("slowButCheap", 80, 30, base),
		newOffer("fastButExpensive", 81, 1, base),
	}

	rankings := Rank(offers, DefaultPriceWeight, DefaultLeadTimeWeight)
	require.Equal(t, []string{"slowButCheap", "fastButExpensive"}, carriers(rankings.ByPrice))
}

// Tests score monotonicity: decreasing an offer's price never decreases its
// score.
func TestRank_ScoreMonotonicInPrice(t *testing.T) {
	t.Parallel()

	base := time.Now().UTC()
	fixed := newOffer("fixed", 100, 5, base)

	prices := []float64{200, 150, 120, 100, 90, 70}
	var previous float64 = -1
	for _, price := range prices {
		rankings := Rank([]model.Offer{fixed, newOffer("moving", price, 8, base)}, DefaultPriceWeight, DefaultLeadTimeWeight)

		var movingScore float64
		for _, scored := range rankings.ByScore {
			if scored.CarrierName == "moving" {
				movingScore = scored.Score
			}
		}
		require.GreaterOrEqual(t, movingScore, previous, "price %.0f", price)
		previous = movingScore
	}
}

// Tests per-carrier deduplication: only the cheapest offer per carrier
// survives, ties broken by lead time.
func TestRank_DedupPerCarrier(t *testing.T) {
	t.Parallel()

	base := time.Now().UTC()
	offers := []model.Offer{
		newOffer("carrierX", 150, 3, base),
		newOffer("carrierX", 130, 5, base.Add(time.Minute)),
		newOffer("carrierY", 140, 4, base.Add(2*time.Minute)),
	}

	rankings := Rank(offers, DefaultPriceWeight, DefaultLeadTimeWeight)
	require.Len(t, rankings.ByScore, 2)

	for _, scored := range rankings.ByScore {
		if scored.CarrierName == "carrierX" {
			require.True(t, scored.Price.Equal(decimal.NewFromInt(130)))
			require.Equal(t, 5, scored.LeadTimeDays)
		}
	}
}

func TestRank_DedupPriceTieKeepsShorterLeadTime(t *testing.T) {
	t.Parallel()

	base := time.Now().UTC()
	offers := []model.Offer{
		newOffer("carrierX", 130, 9, base),
		newOffer("carrierX", 130, 4, base.Add(time.Minute)),
	}

	rankings := Rank(offers, DefaultPriceWeight, DefaultLeadTimeWeight)
	require.Len(t, rankings.ByScore, 1)
	require.Equal(t, 4, rankings.ByScore[0].LeadTimeDays)
}

// Tests degenerate input: zero offers yield three empty rankings.
func TestRank_EmptyInput(t *testing.T) {
	t.Parallel()

	rankings := Rank(nil, DefaultPriceWeight, DefaultLeadTimeWeight)
	require.Empty(t, rankings.ByPrice)
	require.Empty(t, rankings.ByLeadTime)
	require.Empty(t, rankings.ByScore)
	require.True(t, rankings.Empty())
}

// Tests custom weights and the fallback for invalid ones.
func TestRank_Weights(t *testing.T) {
	t.Parallel()

	base := time.Now().UTC()
	offers := []model.Offer{
		newOffer("cheap", 90, 10, base),
		newOffer("fast", 180, 2, base),
	}

	// All weight on lead time: the fast carrier must lead.
	leadHeavy := Rank(offers, 10, 90)
	require.Equal(t, "fast", leadHeavy.ByScore[0].CarrierName)

	// Invalid weights fall back to 70/30, where the cheap carrier leads.
	fallback := Rank(offers, 40, 80)
	expected := Rank(offers, DefaultPriceWeight, DefaultLeadTimeWeight)
	require.Equal(t, carriers(expected.ByScore), carriers(fallback.ByScore))
	require.Equal(t, "cheap", fallback.ByScore[0].CarrierName)
}
