// internal/agents/generate-reply/handler.go
package generatereply

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "realty-concierge/internal/common/errors"
	"realty-concierge/internal/common/logger"
)

const AgentName = "generate-reply"

// FallbackReply is substituted by the orchestrator whenever generation fails.
const FallbackReply = "Hello! Tell me about the property you're interested in."

const promptTemplate = "You are a friendly real estate consultant avatar. " +
	"Respond naturally and conversationally to the user's message: '%s'. " +
	"Keep your response concise (1-2 sentences) and guide them towards asking " +
	"about property details if relevant."

type Handler struct {
	config *Config
	client *http.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log.WithFields(map[string]interface{}{"agent": AgentName}),
	}
}

// Execute generates one conversational reply for the incoming message.
// A single attempt, bounded by the handler's timeout. Callers are expected
// to substitute FallbackReply on error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	prompt := fmt.Sprintf(promptTemplate, input.Message)

	body, _ := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(h.config.BaseURL, "/"), h.config.Model, url.QueryEscape(h.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, apperrors.NewGenerationFailedError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.NewGenerationTimeoutError()
		}
		return nil, apperrors.NewGenerationFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewGenerationFailedError(fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResponse generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, apperrors.NewGenerationFailedError(fmt.Errorf("decode response: %w", err))
	}

	if len(apiResponse.Candidates) == 0 || len(apiResponse.Candidates[0].Content.Parts) == 0 {
		return nil, apperrors.NewGenerationFailedError(errors.New("empty candidate set"))
	}

	reply := strings.TrimSpace(apiResponse.Candidates[0].Content.Parts[0].Text)
	if reply == "" {
		return nil, apperrors.NewGenerationFailedError(errors.New("blank reply text"))
	}

	h.logger.Debug("reply generated", map[string]interface{}{
		"model":       h.config.Model,
		"replyLength": len(reply),
	})

	return &Output{Reply: reply}, nil
}
