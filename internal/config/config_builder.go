package config

import (
	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from multiple sources and
// merges them into a single StructuredConfig. Sources added earlier take
// priority: mergo only fills in fields that are still zero-valued.
type configBuilder struct {
	configs []*StructuredConfig
	errs    []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// withEnv loads configuration from environment variables.
func (b *configBuilder) withEnv() *configBuilder {
	cfg, err := parseEnv()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

// withFlags loads configuration from command-line flags.
func (b *configBuilder) withFlags() *configBuilder {
	cfg, err := parseFlags()
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

// withJSON loads configuration from a JSON file, if a path has been provided
// by any of the previously added sources. Must be called after withEnv and
// withFlags so the file path itself can be configured through them.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSONFile(path)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

// build merges all collected sources and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if len(b.errs) != 0 {
		return nil, errBuildConfig(b.errs)
	}

	merged := &StructuredConfig{}
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, errBuildConfig([]error{err})
		}
	}

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
