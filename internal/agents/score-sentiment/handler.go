// internal/agents/score-sentiment/handler.go
package scoresentiment

import (
	"context"
	"strings"

	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/models"
)

const AgentName = "score-sentiment"

const (
	baseline  = 0.5
	increment = 0.3
	decrement = 0.3
)

// Fixed keyword tables. Both checks are independent and can both fire,
// partially cancelling each other.
var positiveKeywords = []string{"great", "love", "interested", "yes", "perfect", "want"}
var negativeKeywords = []string{"no", "bad", "expensive", "don't like"}

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

// Execute derives an engagement score from free text. Never fails.
// The clamp to [0,1] runs before labeling; the label comparison is strict,
// so an exact 0.5 stays neutral.
func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	lower := strings.ToLower(input.Message)

	score := baseline
	if containsAny(lower, positiveKeywords) {
		score += increment
	}
	if containsAny(lower, negativeKeywords) {
		score -= decrement
	}

	interest := clamp(score, 0, 1)

	label := models.EngagementNeutral
	if interest > baseline {
		label = models.EngagementPositive
	} else if interest < baseline {
		label = models.EngagementNegative
	}

	return &Output{Engagement: models.Engagement{
		Label:    label,
		Interest: interest,
	}}, nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
