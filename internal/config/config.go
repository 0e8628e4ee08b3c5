package config

import (
	"github.com/caarlos0/env/v11"

	"campaigniq/internal/config/configs"
)

// Config aggregates every configuration section of the service. Fields are
// populated from environment variables by the caarlos0/env library; the
// nested structs carry envPrefix tags so their fields parse under the given
// prefix. See the individual types in the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the API server. Variables prefixed with HTTP_.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Variables prefixed with LOG_.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Variables prefixed with
	// PSQL_.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Predictor configures the external prediction process and its HTTP
	// endpoint. Variables prefixed with PREDICTOR_.
	Predictor configs.Predictor `envPrefix:"PREDICTOR_"`

	// Worqhat configures the hosted AI content endpoint. Variables prefixed
	// with WORQHAT_.
	Worqhat configs.Worqhat `envPrefix:"WORQHAT_"`
}

// Load reads configuration from environment variables into a Config,
// applying the declared defaults for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
