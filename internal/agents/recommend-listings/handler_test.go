// internal/agents/recommend-listings/handler_test.go
package recommendlistings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-concierge/internal/catalog"
	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/models"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Listing{
		{ID: "p1", Type: "villa", Location: "Palm Grove", Price: 45000},
		{ID: "p2", Type: "apartment", Location: "City Center", Price: 25000},
		{ID: "p3", Type: "villa", Location: "Hillside", Price: 80000},
		{ID: "p4", Type: "Villa", Location: "Lakeview", Price: 30000},
		{ID: "p5", Type: "villa", Location: "Old Town", Price: 20000},
		{ID: "p6", Type: "villa", Location: "Seafront", Price: 48000},
	})
}

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), testCatalog(), logger.NewTestLogger(t))
}

func float64Ptr(v float64) *float64 { return &v }

func TestHandler_Execute_EmptyPrefsReturnsNothing(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{}})
	require.NoError(t, err)
	assert.Empty(t, output.Listings)
}

func TestHandler_Execute_TypeAndCeiling(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{
		Type:     "villa",
		PriceMax: float64Ptr(50000),
	}})
	require.NoError(t, err)

	require.Len(t, output.Listings, 3)
	// Catalog relative order preserved, truncated at 3; p3 excluded by price.
	assert.Equal(t, "p1", output.Listings[0].ID)
	assert.Equal(t, "p4", output.Listings[1].ID)
	assert.Equal(t, "p5", output.Listings[2].ID)
	for _, l := range output.Listings {
		assert.LessOrEqual(t, l.Price, float64(50000))
	}
}

func TestHandler_Execute_TypeMatchIsCaseInsensitive(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{Type: "VILLA"}})
	require.NoError(t, err)
	require.NotEmpty(t, output.Listings)
	assert.Equal(t, "p1", output.Listings[0].ID)
}

func TestHandler_Execute_NoCeilingMeansNoPriceConstraint(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{Type: "apartment"}})
	require.NoError(t, err)
	require.Len(t, output.Listings, 1)
	assert.Equal(t, "p2", output.Listings[0].ID)
}

func TestHandler_Execute_TruncatesAtThree(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{Type: "villa"}})
	require.NoError(t, err)
	assert.Len(t, output.Listings, 3)
	assert.Equal(t, "p1", output.Listings[0].ID)
	assert.Equal(t, "p3", output.Listings[1].ID)
	assert.Equal(t, "p4", output.Listings[2].ID)
}

// A price ceiling without a type keyword matches nothing: the literal
// behavior of the source system, preserved on purpose.
func TestHandler_Execute_PriceOnlyPrefsMatchNothing(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{
		PriceMax: float64Ptr(100000),
	}})
	require.NoError(t, err)
	assert.Empty(t, output.Listings)
}

func TestHandler_Execute_NoMatchesForUnknownType(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{Prefs: models.Preferences{Type: "castle"}})
	require.NoError(t, err)
	assert.Empty(t, output.Listings)
}
