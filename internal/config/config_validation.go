package config

import "time"

// Defaults applied during validation for fields left unset by every source.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultDriver         = "pgx"
	defaultTokenIssuer    = "mood-journal"
	defaultTokenDuration  = 12 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate fills in defaults and rejects configurations the application
// cannot run with.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Storage.DB.Driver == "" {
		c.Storage.DB.Driver = defaultDriver
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration <= 0 {
		c.App.TokenDuration = defaultTokenDuration
	}

	switch c.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return errUnknownDriver(c.Storage.DB.Driver)
	}

	if c.Storage.DB.DSN == "" {
		return ErrNoDSN
	}
	if c.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	return nil
}
