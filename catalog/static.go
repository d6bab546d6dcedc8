package catalog

import (
	"context"

	"mutawwif/models"
)

// StaticRepository serves the built-in Makkah catalog. Listings are fixed at
// construction and copied on every fetch so callers can never mutate them.
type StaticRepository struct {
	listings []models.Listing
}

// NewStaticRepository returns a catalog seeded with the default hotel and
// transport listings around the Haram.
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{listings: defaultListings()}
}

// NewStaticRepositoryWith returns a catalog backed by the given listings.
func NewStaticRepositoryWith(listings []models.Listing) *StaticRepository {
	return &StaticRepository{listings: listings}
}

func (r *StaticRepository) FetchAll(ctx context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

func (r *StaticRepository) FetchByCategory(ctx context.Context, category string) ([]models.Listing, error) {
	out := make([]models.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out, nil
}

func defaultListings() []models.Listing {
	return []models.Listing{
		{
			ID:          "hotel-abraj-al-bait",
			Name:        "Abraj Al Bait",
			Category:    models.CategoryAccommodation,
			Price:       250,
			Rating:      4.8,
			Distance:    "200m",
			Description: "Luxury hotel with Kaaba view",
			Amenities:   []string{"Wifi", "AC", "Restaurant", "View"},
			Recommended: true,
		},
		{
			ID:          "hotel-fairmont-makkah",
			Name:        "Fairmont Makkah",
			Category:    models.CategoryAccommodation,
			Price:       180,
			Rating:      4.7,
			Distance:    "500m",
			Description: "Modern comfort with premium service",
			Amenities:   []string{"Wifi", "Pool", "Spa", "Restaurant"},
			Recommended: true,
		},
		{
			ID:          "hotel-raffles-makkah",
			Name:        "Raffles Makkah",
			Category:    models.CategoryAccommodation,
			Price:       320,
			Rating:      4.9,
			Distance:    "300m",
			Description: "Ultra-luxury experience",
			Amenities:   []string{"Wifi", "Concierge", "Spa", "Fine Dining"},
			Recommended: false,
		},
		{
			ID:          "transport-private-car",
			Name:        "Private Car Service",
			Category:    models.CategoryTransport,
			Price:       150,
			Rating:      4.9,
			Duration:    "24/7 Available",
			Type:        "car",
			Description: "Comfortable private transport",
			Recommended: true,
		},
		{
			ID:          "transport-shuttle",
			Name:        "Shuttle Service",
			Category:    models.CategoryTransport,
			Price:       25,
			Rating:      4.5,
			Duration:    "Every 15 mins",
			Type:        "bus",
			Description: "Regular shuttle to Haram",
			Recommended: true,
		},
		{
			ID:          "transport-premium-transfer",
			Name:        "Premium Transfer",
			Category:    models.CategoryTransport,
			Price:       200,
			Rating:      4.8,
			Duration:    "On-demand",
			Type:        "car",
			Description: "Luxury vehicle service",
			Recommended: false,
		},
	}
}
