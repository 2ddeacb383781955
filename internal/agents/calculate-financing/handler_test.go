// internal/agents/calculate-financing/handler_test.go
package calculatefinancing

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-concierge/internal/common/logger"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func TestMonthlyPayment_ClosedForm(t *testing.T) {
	// 80000 at 8% APR over 60 months against the amortization formula.
	monthlyRate := 8.0 / 12 / 100
	growth := math.Pow(1+monthlyRate, 60)
	expected := math.Round(80000*monthlyRate*growth/(growth-1)*100) / 100

	assert.Equal(t, expected, MonthlyPayment(80000, 8, 60))
	assert.Equal(t, 1622.11, MonthlyPayment(80000, 8, 60))
}

func TestMonthlyPayment_Cases(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		annualRate float64
		termMonths int
		expected   float64
	}{
		{
			name:       "10 year at 7 percent",
			principal:  80000,
			annualRate: 7,
			termMonths: 120,
			expected:   928.87,
		},
		{
			name:       "zero rate degenerates to simple division",
			principal:  12000,
			annualRate: 0,
			termMonths: 12,
			expected:   1000,
		},
		{
			name:       "single month term",
			principal:  1000,
			annualRate: 0,
			termMonths: 1,
			expected:   1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthlyPayment(tt.principal, tt.annualRate, tt.termMonths))
		})
	}
}

func TestHandler_Options(t *testing.T) {
	h := createTestHandler(t)

	opts := h.Options(100000)
	require.Len(t, opts, 2)

	// Product order is fixed: 60-month at 8% first, then 120-month at 7%.
	assert.Equal(t, "5-Year Loan (8% APR)", opts[0].Label)
	assert.Equal(t, "10-Year Loan (7% APR)", opts[1].Label)

	// Principal is 80% of price.
	assert.Equal(t, MonthlyPayment(80000, 8, 60), opts[0].MonthlyPayment)
	assert.Equal(t, MonthlyPayment(80000, 7, 120), opts[1].MonthlyPayment)
}

func TestHandler_Execute(t *testing.T) {
	h := createTestHandler(t)
	output, err := h.Execute(context.Background(), &Input{Price: 100000})
	require.NoError(t, err)
	require.Len(t, output.Options, 2)
	assert.Equal(t, 1622.11, output.Options[0].MonthlyPayment)
}
