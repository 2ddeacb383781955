// internal/agents/negotiate-price/handler.go
package negotiateprice

import (
	"context"
	"math"

	"realty-concierge/internal/common/logger"
)

const AgentName = "negotiate-price"

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

// Negotiate computes an offer price from the base price, the engagement
// interest and a market multiplier, rounded to the nearest whole unit.
//
// High interest means less room to negotiate, so the discount shrinks;
// a lukewarm lead gets a larger discount to close.
func (h *Handler) Negotiate(basePrice, interest, seasonality float64) float64 {
	multiplier := 1.0
	switch {
	case interest > h.config.HighInterestThreshold:
		multiplier = h.config.HighInterestDiscount
	case interest < h.config.LowInterestThreshold:
		multiplier = h.config.LowInterestDiscount
	}
	return math.Round(basePrice * multiplier * seasonality)
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	return &Output{
		NegotiatedPrice: h.Negotiate(input.BasePrice, input.Interest, input.Seasonality),
	}, nil
}
