// internal/catalog/postgres_source.go
package catalog

import (
	"context"
	"database/sql"

	apperrors "realty-concierge/internal/common/errors"
	"realty-concierge/internal/models"
)

const listingsQuery = `SELECT id, type, location, price, bedrooms, area_sqft FROM listings ORDER BY id`

// LoadPostgres reads the listings table into a Catalog. Row order follows the
// id column so repeated loads yield the same catalog order.
func LoadPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx, listingsQuery)
	if err != nil {
		return nil, apperrors.NewCatalogSourceFailedError("postgres", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(&l.ID, &l.Type, &l.Location, &l.Price, &l.Bedrooms, &l.AreaSqft); err != nil {
			return nil, apperrors.NewCatalogSourceFailedError("postgres", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewCatalogSourceFailedError("postgres", err)
	}

	return New(listings), nil
}
