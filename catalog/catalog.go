package catalog

import (
	"context"

	"mutawwif/models"
)

// Repository provides read-only access to the bookable listing catalog.
// The filtering and recommendation logic depends only on this interface,
// never on a concrete dataset.
type Repository interface {
	// FetchAll returns every listing in the catalog.
	FetchAll(ctx context.Context) ([]models.Listing, error)
	// FetchByCategory returns the listings for one category. An unknown
	// category yields an empty slice, not an error.
	FetchByCategory(ctx context.Context, category string) ([]models.Listing, error)
}
