// internal/agents/recommend-listings/models.go
package recommendlistings

import "realty-concierge/internal/models"

type Input struct {
	Prefs models.Preferences `json:"prefs"`
}

type Output struct {
	Listings []models.Listing `json:"listings"`
}
