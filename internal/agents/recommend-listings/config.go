// internal/agents/recommend-listings/config.go
package recommendlistings

type Config struct {
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		MaxResults: 3,
	}
}
