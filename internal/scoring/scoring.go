// Package scoring computes the weighted price/lead-time composite score and
// the three rankings an admin compares before selecting a winner.
package scoring

import (
	"sort"

	model "freightbid/internal/models"
)

// Default score weights: 70% price ratio, 30% lead-time ratio.
const (
	DefaultPriceWeight    = 70
	DefaultLeadTimeWeight = 30
)

// ScoredOffer is an offer annotated with its composite score. The minimizer
// on both dimensions scores exactly 100; other scores are comparative and
// are not normalized to a hard ceiling.
type ScoredOffer struct {
	model.Offer
	Score float64 `json:"score"`
}

// Rankings holds the three orderings presented during analysis.
type Rankings struct {
	ByPrice    []ScoredOffer `json:"by_price"`
	ByLeadTime []ScoredOffer `json:"by_lead_time"`
	ByScore    []ScoredOffer `json:"by_score"`
}

// Empty reports whether no offers survived deduplication.
func (r Rankings) Empty() bool {
	return len(r.ByScore) == 0
}

// Rank deduplicates offers per carrier, scores the survivors and returns the
// three rankings: ascending price, ascending lead time, descending score.
// All sorts are stable with respect to submission order. Weights must sum to
// 100; anything else falls back to the 70/30 default. Zero offers yield three
// empty rankings — a deserted auction is the caller's terminal path, not an
// error.
func Rank(offers []model.Offer, priceWeight, leadTimeWeight int) Rankings {
	deduped := dedupeByCarrier(offers)
	if len(deduped) == 0 {
		return Rankings{
			ByPrice:    []ScoredOffer{},
			ByLeadTime: []ScoredOffer{},
			ByScore:    []ScoredOffer{},
		}
	}

	if priceWeight < 0 || leadTimeWeight < 0 || priceWeight+leadTimeWeight != 100 {
		priceWeight, leadTimeWeight = DefaultPriceWeight, DefaultLeadTimeWeight
	}

	minPrice := deduped[0].Price
	minLead := deduped[0].LeadTimeDays
	for _, offer := range deduped[1:] {
		if offer.Price.LessThan(minPrice) {
			minPrice = offer.Price
		}
		if offer.LeadTimeDays < minLead {
			minLead = offer.LeadTimeDays
		}
	}

	scored := make([]ScoredOffer, 0, len(deduped))
	for _, offer := range deduped {
		priceRatio, _ := minPrice.Div(offer.Price).Float64()
		leadRatio := float64(minLead) / float64(offer.LeadTimeDays)
		scored = append(scored, ScoredOffer{
			Offer: offer,
			Score: float64(priceWeight)*priceRatio + float64(leadTimeWeight)*leadRatio,
		})
	}

	byPrice := append([]ScoredOffer(nil), scored...)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price.LessThan(byPrice[j].Price)
	})

	byLeadTime := append([]ScoredOffer(nil), scored...)
	sort.SliceStable(byLeadTime, func(i, j int) bool {
		return byLeadTime[i].LeadTimeDays < byLeadTime[j].LeadTimeDays
	})

	byScore := append([]ScoredOffer(nil), scored...)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	return Rankings{ByPrice: byPrice, ByLeadTime: byLeadTime, ByScore: byScore}
}

// dedupeByCarrier keeps each carrier's cheapest offer (ties broken by
// shortest lead time) so one carrier's repeated attempts cannot occupy
// several ranking slots. First-occurrence order of carriers is preserved.
func dedupeByCarrier(offers []model.Offer) []model.Offer {
	bestByCarrier := make(map[string]model.Offer)
	carrierOrder := make([]string, 0, len(offers))

	for _, offer := range offers {
		existing, seen := bestByCarrier[offer.CarrierName]
		if !seen {
			carrierOrder = append(carrierOrder, offer.CarrierName)
			bestByCarrier[offer.CarrierName] = offer
			continue
		}
		switch cmp := offer.Price.Cmp(existing.Price); {
		case cmp < 0:
			bestByCarrier[offer.CarrierName] = offer
		case cmp == 0 && offer.LeadTimeDays < existing.LeadTimeDays:
			bestByCarrier[offer.CarrierName] = offer
		}
	}

	deduped := make([]model.Offer, 0, len(carrierOrder))
	for _, carrier := range carrierOrder {
		deduped = append(deduped, bestByCarrier[carrier])
	}
	return deduped
}
