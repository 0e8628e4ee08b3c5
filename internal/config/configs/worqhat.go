package configs

import "time"

// Worqhat configures the hosted AI content endpoint used by the chat widget.
type Worqhat struct {
	// APIKey is the bearer token for the content API. Chat endpoints return
	// upstream failures when it is empty.
	APIKey string `env:"API_KEY"`
	// Endpoint is the content generation URL.
	Endpoint string `env:"ENDPOINT" envDefault:"https://api.worqhat.com/api/ai/content/v4"`
	// Model identifies which hosted model answers grounded questions.
	Model string `env:"MODEL" envDefault:"aicon-v4-large-160824"`
	// Timeout bounds a single content call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}
