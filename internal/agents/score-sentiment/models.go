// internal/agents/score-sentiment/models.go
package scoresentiment

import "realty-concierge/internal/models"

type Input struct {
	Message string `json:"message"`
}

type Output struct {
	Engagement models.Engagement `json:"engagement"`
}
