// Package catalog holds the fixed property catalog: loaded once at process
// start, read-only thereafter, safe for unlimited concurrent readers.
package catalog

import (
	"realty-concierge/internal/models"
)

type Catalog struct {
	listings []models.Listing
}

func New(listings []models.Listing) *Catalog {
	// Own a private copy so the caller's slice cannot alias the catalog.
	owned := make([]models.Listing, len(listings))
	copy(owned, listings)
	return &Catalog{listings: owned}
}

// Listings returns the catalog entries in load order. The returned slice is a
// copy; callers may reorder or annotate it freely.
func (c *Catalog) Listings() []models.Listing {
	out := make([]models.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

func (c *Catalog) Len() int {
	return len(c.listings)
}
