package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv reads the configuration from environment variables using the
// struct tags declared on StructuredConfig.
func parseEnv() (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, errParseEnv(err)
	}
	return cfg, nil
}
