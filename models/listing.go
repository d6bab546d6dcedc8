package models

// Listing categories served by the catalog.
const (
	CategoryAccommodation = "accommodation"
	CategoryTransport     = "transport"
)

// Price bands. Bands partition [0, inf): budget takes everything up to and
// including 100, mid takes (100, 250], luxury takes everything above 250.
const (
	PriceBandAll    = "all"
	PriceBandBudget = "budget"
	PriceBandMid    = "mid"
	PriceBandLuxury = "luxury"
)

// Rating bands.
const (
	RatingBandAll      = "all"
	RatingBandFourPlus = "4+"
	RatingBandFourHalf = "4.5+"
)

// Listing is a single bookable catalog item (hotel or transport option).
// Listings are read-only; they are never mutated at runtime.
type Listing struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Distance    string   `json:"distance,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Type        string   `json:"type,omitempty"` // transport only, e.g. "car", "bus"
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Recommended bool     `json:"recommended"`
}

// FilterCriteria narrows a listing set by price and rating band.
// Zero-value bands are treated as "all".
type FilterCriteria struct {
	PriceBand  string `json:"priceBand"`
	RatingBand string `json:"ratingBand"`
}
