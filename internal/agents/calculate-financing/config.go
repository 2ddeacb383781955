// internal/agents/calculate-financing/config.go
package calculatefinancing

type Config struct {
	LoanToValue float64
}

func LoadConfig() *Config {
	return &Config{
		LoanToValue: 0.80,
	}
}
