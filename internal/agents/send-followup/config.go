// internal/agents/send-followup/config.go
package sendfollowup

import "time"

type Config struct {
	Enabled  bool
	SenderID string
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Enabled: true,
		Timeout: 5 * time.Second,
	}
}
