// internal/agents/parse-preferences/models.go
package parsepreferences

import "realty-concierge/internal/models"

type Input struct {
	Message string `json:"message"`
}

type Output struct {
	Prefs models.Preferences `json:"prefs"`
}
