// internal/agents/negotiate-price/models.go
package negotiateprice

type Input struct {
	BasePrice   float64 `json:"basePrice"`
	Interest    float64 `json:"interest"`
	Seasonality float64 `json:"seasonality"`
}

type Output struct {
	NegotiatedPrice float64 `json:"negotiatedPrice"`
}
