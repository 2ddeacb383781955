// internal/agents/parse-preferences/config.go
package parsepreferences

type Config struct{}

func LoadConfig() *Config {
	return &Config{}
}
