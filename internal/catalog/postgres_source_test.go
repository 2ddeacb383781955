// internal/catalog/postgres_source_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "realty-concierge/internal/common/errors"
)

func TestLoadPostgres_RowsBecomeListings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "type", "location", "price", "bedrooms", "area_sqft"}).
		AddRow("p-1001", "villa", "Goa", 45000.0, 3, 2100).
		AddRow("p-1002", "apartment", "Mumbai", 32000.0, 2, 950)

	mock.ExpectQuery("SELECT id, type, location, price, bedrooms, area_sqft FROM listings ORDER BY id").
		WillReturnRows(rows)

	cat, err := LoadPostgres(context.Background(), db)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	listings := cat.Listings()
	assert.Equal(t, "p-1001", listings[0].ID)
	assert.Equal(t, "villa", listings[0].Type)
	assert.Equal(t, 45000.0, listings[0].Price)
	assert.Equal(t, 950, listings[1].AreaSqft)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadPostgres_QueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, type, location").
		WillReturnError(errors.New("connection reset"))

	_, err = LoadPostgres(context.Background(), db)

	require.Error(t, err)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCatalogSourceFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestLoadPostgres_ScanFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "type", "location", "price", "bedrooms", "area_sqft"}).
		AddRow("p-1001", "villa", "Goa", "not-a-number", 3, 2100)

	mock.ExpectQuery("SELECT id, type, location").WillReturnRows(rows)

	_, err = LoadPostgres(context.Background(), db)

	require.Error(t, err)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeCatalogSourceFailed, stdErr.Code)
}

func TestLoadPostgres_EmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "type", "location", "price", "bedrooms", "area_sqft"})
	mock.ExpectQuery("SELECT id, type, location").WillReturnRows(rows)

	cat, err := LoadPostgres(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}
