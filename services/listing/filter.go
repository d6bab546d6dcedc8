package listing

import (
	"context"

	"mutawwif/models"
)

// Filter applies the combined price and rating predicates to the given
// listings. It is pure and order-preserving. Price bands partition the
// non-negative range with no gap or overlap: a price of exactly 100 is
// budget, a price of exactly 250 is mid.
func Filter(items []models.Listing, criteria models.FilterCriteria) []models.Listing {
	out := make([]models.Listing, 0, len(items))
	for _, item := range items {
		if matchesPriceBand(item.Price, criteria.PriceBand) && matchesRatingBand(item.Rating, criteria.RatingBand) {
			out = append(out, item)
		}
	}
	return out
}

func matchesPriceBand(price float64, band string) bool {
	switch band {
	case models.PriceBandBudget:
		return price <= 100
	case models.PriceBandMid:
		return price > 100 && price <= 250
	case models.PriceBandLuxury:
		return price > 250
	default:
		// "all" or unset passes everything.
		return true
	}
}

func matchesRatingBand(rating float64, band string) bool {
	switch band {
	case models.RatingBandFourPlus:
		return rating >= 4.0
	case models.RatingBandFourHalf:
		return rating >= 4.5
	default:
		return true
	}
}

func (s *DefaultListingService) GetListings(ctx context.Context, category string) ([]models.Listing, error) {
	if category == "" {
		return s.Catalog.FetchAll(ctx)
	}
	return s.Catalog.FetchByCategory(ctx, category)
}

func (s *DefaultListingService) FilterListings(ctx context.Context, category string, criteria models.FilterCriteria) ([]models.Listing, error) {
	items, err := s.GetListings(ctx, category)
	if err != nil {
		return nil, err
	}
	return Filter(items, criteria), nil
}
