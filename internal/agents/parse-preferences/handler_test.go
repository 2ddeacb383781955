// internal/agents/parse-preferences/handler_test.go
package parsepreferences

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-concierge/internal/common/logger"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func float64Ptr(v float64) *float64 { return &v }

func TestHandler_Execute_TypeDetection(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		expectedType string
	}{
		{
			name:         "villa keyword",
			message:      "I want a villa near the beach",
			expectedType: "villa",
		},
		{
			name:         "apartment keyword",
			message:      "Looking for an apartment downtown",
			expectedType: "apartment",
		},
		{
			name:         "villa wins when both present",
			message:      "villa or apartment, not sure",
			expectedType: "villa",
		},
		{
			name:         "villa wins regardless of word order",
			message:      "apartment is fine but a villa would be better",
			expectedType: "villa",
		},
		{
			name:         "case insensitive",
			message:      "Show me a VILLA",
			expectedType: "villa",
		},
		{
			name:         "no type keyword",
			message:      "something nice by the sea",
			expectedType: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			output, err := h.Execute(context.Background(), &Input{Message: tt.message})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, output.Prefs.Type)
		})
	}
}

func TestHandler_Execute_PriceCeiling(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected *float64
	}{
		{
			name:     "under phrase with number",
			message:  "a villa under 50000",
			expected: float64Ptr(50000),
		},
		{
			name:     "less than phrase",
			message:  "apartment less than 30000",
			expected: float64Ptr(30000),
		},
		{
			name:     "below phrase",
			message:  "anything below 75000 works",
			expected: float64Ptr(75000),
		},
		{
			name:     "maximum of several numbers wins",
			message:  "under 200 or 300",
			expected: float64Ptr(300),
		},
		{
			name:     "maximum wins regardless of order",
			message:  "under 900 or 500 or 700",
			expected: float64Ptr(900),
		},
		{
			name:     "number without qualifying phrase is ignored",
			message:  "I have 50000 to spend",
			expected: nil,
		},
		{
			name:     "qualifying phrase without number",
			message:  "under the bridge",
			expected: nil,
		},
		{
			name:     "currency-prefixed token is not integer-only",
			message:  "under $50000",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			output, err := h.Execute(context.Background(), &Input{Message: tt.message})
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, output.Prefs.PriceMax)
			} else {
				require.NotNil(t, output.Prefs.PriceMax)
				assert.Equal(t, *tt.expected, *output.Prefs.PriceMax)
			}
		})
	}
}

func TestHandler_Execute_EmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "empty string", message: ""},
		{name: "whitespace only", message: "   \t  "},
		{name: "no matches at all", message: "hello there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			output, err := h.Execute(context.Background(), &Input{Message: tt.message})
			require.NoError(t, err)
			assert.True(t, output.Prefs.IsEmpty())
		})
	}
}

func TestHandler_Execute_BothAxes(t *testing.T) {
	h := createTestHandler(t)
	output, err := h.Execute(context.Background(), &Input{Message: "I want a villa under 50000"})
	require.NoError(t, err)
	assert.Equal(t, "villa", output.Prefs.Type)
	require.NotNil(t, output.Prefs.PriceMax)
	assert.Equal(t, float64(50000), *output.Prefs.PriceMax)
}
