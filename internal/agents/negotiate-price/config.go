// internal/agents/negotiate-price/config.go
package negotiateprice

type Config struct {
	HighInterestThreshold float64
	LowInterestThreshold  float64
	HighInterestDiscount  float64
	LowInterestDiscount   float64
}

func LoadConfig() *Config {
	return &Config{
		HighInterestThreshold: 0.7,
		LowInterestThreshold:  0.4,
		HighInterestDiscount:  0.95,
		LowInterestDiscount:   0.90,
	}
}
