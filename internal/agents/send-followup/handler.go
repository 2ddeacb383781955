// internal/agents/send-followup/handler.go
package sendfollowup

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "realty-concierge/internal/common/errors"
	"realty-concierge/internal/common/logger"
)

const AgentName = "send-followup"

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

type Handler struct {
	config  *Config
	gateway SMSGateway
	logger  logger.Logger
}

// NewHandler accepts a nil gateway, which puts the handler in disabled mode.
func NewHandler(config *Config, gateway SMSGateway, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		gateway: gateway,
		logger:  log.WithFields(map[string]interface{}{"agent": AgentName}),
	}
}

// Execute delivers one follow-up SMS. Delivery is best effort: a failure is
// reported in the output status and error, never by panicking the turn.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if !h.config.Enabled || h.gateway == nil {
		h.logger.Warn("sms delivery disabled, skipping follow-up", map[string]interface{}{
			"phone": input.Phone,
		})
		return &Output{Status: StatusDisabled}, apperrors.NewGatewayUnavailableError("sms gateway not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	if _, err := h.gateway.PublishSMS(ctx, input.Phone, input.Message); err != nil {
		h.logger.Error("follow-up delivery failed", map[string]interface{}{
			"phone": input.Phone,
			"error": err.Error(),
		})
		return &Output{Status: StatusFailed}, apperrors.NewNotificationSendFailedError(err)
	}

	output := &Output{
		Status:     StatusSent,
		DeliveryID: uuid.New().String(),
		SentAt:     time.Now().UTC(),
	}

	h.logger.Info("follow-up sms sent", map[string]interface{}{
		"phone":      input.Phone,
		"deliveryId": output.DeliveryID,
	})

	return output, nil
}
