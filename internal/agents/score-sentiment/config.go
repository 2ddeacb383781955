// internal/agents/score-sentiment/config.go
package scoresentiment

type Config struct{}

func LoadConfig() *Config {
	return &Config{}
}
