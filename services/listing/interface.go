package listing

import (
	"context"

	"mutawwif/catalog"
	"mutawwif/models"
)

type ListingService interface {
	// GetListings returns the catalog listings for a category, or the whole
	// catalog when category is empty.
	GetListings(ctx context.Context, category string) ([]models.Listing, error)
	// FilterListings applies price and rating band criteria to a category's
	// listings. An empty result is a valid outcome, not an error.
	FilterListings(ctx context.Context, category string, criteria models.FilterCriteria) ([]models.Listing, error)
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Catalog catalog.Repository
}
