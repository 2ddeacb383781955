// internal/agents/calculate-financing/handler.go
package calculatefinancing

import (
	"context"
	"math"

	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/models"
)

const AgentName = "calculate-financing"

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

// MonthlyPayment computes the standard amortized-loan installment, rounded to
// 2 decimals. A zero rate degenerates to simple division over the term.
// Callers must not pass a zero rate together with a zero term.
func MonthlyPayment(principal, annualRatePct float64, termMonths int) float64 {
	monthlyRate := annualRatePct / 12 / 100
	if monthlyRate == 0 {
		return round2(principal / float64(termMonths))
	}
	growth := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal * monthlyRate * growth / (growth - 1)
	return round2(payment)
}

// Options evaluates the fixed loan products against the negotiated price,
// financing LoanToValue of it.
func (h *Handler) Options(price float64) []models.FinancingOption {
	principal := price * h.config.LoanToValue
	opts := make([]models.FinancingOption, 0, len(products))
	for _, p := range products {
		opts = append(opts, models.FinancingOption{
			Label:          p.label,
			MonthlyPayment: MonthlyPayment(principal, p.annualRate, p.termMonths),
		})
	}
	return opts
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	return &Output{Options: h.Options(input.Price)}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
