// internal/agents/parse-preferences/handler.go
package parsepreferences

import (
	"context"
	"strconv"
	"strings"

	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/models"
)

const AgentName = "parse-preferences"

// typeKeywords is checked in order; the first matching token sets the type.
// "villa" deliberately precedes "apartment".
var typeKeywords = []string{
	models.ListingTypeVilla,
	models.ListingTypeApartment,
}

// ceilingPhrases qualify a sentence as carrying a price ceiling. Without one
// of these, numbers in the message are ignored.
var ceilingPhrases = []string{"under", "less than", "below"}

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"agent": AgentName}),
	}
}

// Execute derives structured preferences from free text. It never fails:
// non-matching input yields empty preferences, which downstream treats as
// "do not filter, do not recommend".
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	prefs := models.Preferences{}
	lower := strings.ToLower(input.Message)

	for _, kw := range typeKeywords {
		if strings.Contains(lower, kw) {
			prefs.Type = kw
			break
		}
	}

	if hasCeilingPhrase(lower) {
		if max, ok := maxInteger(lower); ok {
			ceiling := float64(max)
			prefs.PriceMax = &ceiling
		}
	}

	if !prefs.IsEmpty() {
		h.logger.Debug("preferences detected", map[string]interface{}{
			"type":     prefs.Type,
			"priceMax": prefs.PriceMax,
		})
	}

	return &Output{Prefs: prefs}, nil
}

func hasCeilingPhrase(lower string) bool {
	for _, phrase := range ceilingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// maxInteger scans whitespace-delimited tokens and returns the largest
// integer-only token. The maximum wins, not the first: "under 200 or 300"
// yields 300.
func maxInteger(lower string) (int, bool) {
	max := 0
	found := false
	for _, token := range strings.Fields(lower) {
		if !isDigits(token) {
			continue
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			continue
		}
		if !found || n > max {
			max = n
			found = true
		}
	}
	return max, found
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
