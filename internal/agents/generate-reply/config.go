// internal/agents/generate-reply/config.go
package generatereply

import "time"

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}
