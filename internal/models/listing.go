// internal/models/listing.go
package models

// Listing types
const (
	ListingTypeVilla     = "villa"
	ListingTypeApartment = "apartment"
)

// Listing is one catalog entry. The catalog is read-only for the lifetime of
// the process; downstream stages must never mutate a Listing in place.
type Listing struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Bedrooms int     `json:"bedrooms,omitempty"`
	AreaSqft int     `json:"areaSqft,omitempty"`
}

// Recommendation is a Listing copy annotated for one turn's response.
// NegotiatedPrice is set on the top-ranked recommendation only.
type Recommendation struct {
	Listing
	NegotiatedPrice *float64 `json:"negotiatedPrice,omitempty"`
}
