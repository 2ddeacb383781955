// internal/agents/send-followup/models.go
package sendfollowup

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SMSGateway abstracts the SNS publish call for testability.
type SMSGateway interface {
	PublishSMS(ctx context.Context, phone, message string) (*sns.PublishOutput, error)
}

type Input struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type Output struct {
	Status     string    `json:"status"`
	DeliveryID string    `json:"deliveryId,omitempty"`
	SentAt     time.Time `json:"sentAt,omitempty"`
}
