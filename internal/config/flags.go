package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// parseFlags reads the configuration from command-line flags. A dedicated
// FlagSet is used so parsing stays isolated from the global flag state.
func parseFlags() (*StructuredConfig, error) {
	return parseFlagsFromArgs(os.Args[1:])
}

func parseFlagsFromArgs(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("mood-journal", flag.ContinueOnError)

	cfg := &StructuredConfig{}
	var (
		teacherEmails string
		tokenDuration time.Duration
		reqTimeout    time.Duration
	)

	fs.StringVar(&cfg.Server.HTTPAddress, "a", "", "HTTP server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "database driver: pgx or sqlite3")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "JWT signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "JWT issuer claim")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "JWT token lifetime")
	fs.DurationVar(&reqTimeout, "request-timeout", 0, "inbound request timeout")
	fs.StringVar(&teacherEmails, "teacher-emails", "", "comma-separated teacher allow-list")
	fs.StringVar(&cfg.App.GeminiAPIKey, "gemini-api-key", "", "summarizer API key")

	if err := fs.Parse(args); err != nil {
		return nil, errParseFlags(err)
	}

	cfg.App.TokenDuration = tokenDuration
	cfg.Server.RequestTimeout = reqTimeout
	if teacherEmails != "" {
		cfg.App.TeacherEmails = strings.Split(teacherEmails, ",")
	}
	return cfg, nil
}
