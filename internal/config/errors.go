package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDSN is returned when no database DSN was provided by any source.
	ErrNoDSN = errors.New("config: database DSN is required")

	// ErrNoTokenSignKey is returned when no JWT signing key was provided.
	ErrNoTokenSignKey = errors.New("config: token sign key is required")
)

func errParseEnv(err error) error {
	return fmt.Errorf("config: parse environment: %w", err)
}

func errParseFlags(err error) error {
	return fmt.Errorf("config: parse flags: %w", err)
}

func errReadJSONFile(path string, err error) error {
	return fmt.Errorf("config: read file %q: %w", path, err)
}

func errParseJSON(err error) error {
	return fmt.Errorf("config: parse json: %w", err)
}

func errUnknownDriver(driver string) error {
	return fmt.Errorf("config: unknown database driver %q", driver)
}

func errBuildConfig(errs []error) error {
	return fmt.Errorf("config: build: %w", errors.Join(errs...))
}
