// internal/models/turn.go
package models

// Engagement labels
const (
	EngagementPositive = "positive"
	EngagementNeutral  = "neutral"
	EngagementNegative = "negative"
)

// Preferences is the structured filter criteria derived from one utterance.
// Built fresh per turn; never persisted.
type Preferences struct {
	Type     string   `json:"type,omitempty"`
	PriceMax *float64 `json:"priceMax,omitempty"`
}

// IsEmpty reports whether no preference was detected on either axis.
func (p Preferences) IsEmpty() bool {
	return p.Type == "" && p.PriceMax == nil
}

// Engagement is the per-turn interest score driving negotiation.
type Engagement struct {
	Label    string  `json:"label"`
	Interest float64 `json:"interest"` // in [0,1]
}

// FinancingOption is one installment product evaluated for a negotiated price.
type FinancingOption struct {
	Label          string  `json:"label"`
	MonthlyPayment float64 `json:"monthlyPayment"` // rounded to 2 decimals
}

// TurnRequest is the transport-facing input for one turn.
type TurnRequest struct {
	Message    string `json:"message"`
	Phone      string `json:"phone,omitempty"`
	SessionEnd bool   `json:"session_end,omitempty"`
}

// TurnResult is the composite response for one turn.
type TurnResult struct {
	Reply           string           `json:"text"`
	Recommendations []Recommendation `json:"recommendations"`
}
