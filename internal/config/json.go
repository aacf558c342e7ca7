package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig mirrors StructuredConfig for file-based configuration. Durations
// are declared as strings so the file can use human-readable values like
// "30s" or "12h".
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration string   `json:"token_duration"`
		TeacherEmails []string `json:"teacher_emails"`
		GeminiAPIKey  string   `json:"gemini_api_key"`
		Version       string   `json:"version"`
	} `json:"app"`
	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"database_uri"`
		} `json:"db"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string `json:"address"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"server"`
}

// parseJSONFile reads and converts a JSON configuration file.
func parseJSONFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadJSONFile(path, err)
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (*StructuredConfig, error) {
	jc := &jsonConfig{}
	if err := json.Unmarshal(data, jc); err != nil {
		return nil, errParseJSON(err)
	}

	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = jc.App.TokenSignKey
	cfg.App.TokenIssuer = jc.App.TokenIssuer
	cfg.App.TeacherEmails = jc.App.TeacherEmails
	cfg.App.GeminiAPIKey = jc.App.GeminiAPIKey
	cfg.App.Version = jc.App.Version
	cfg.Storage.DB.Driver = jc.Storage.DB.Driver
	cfg.Storage.DB.DSN = jc.Storage.DB.DSN
	cfg.Server.HTTPAddress = jc.Server.HTTPAddress

	if jc.App.TokenDuration != "" {
		d, err := time.ParseDuration(jc.App.TokenDuration)
		if err != nil {
			return nil, errParseJSON(err)
		}
		cfg.App.TokenDuration = d
	}
	if jc.Server.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.Server.RequestTimeout)
		if err != nil {
			return nil, errParseJSON(err)
		}
		cfg.Server.RequestTimeout = d
	}
	return cfg, nil
}
