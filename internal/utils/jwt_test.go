package utils

import (
	"testing"
	"time"

	"github.com/moodlog/mood-journal/models"
)

func testUser() models.User {
	return models.User{UserID: 123, Email: "jimin@school.kr", Name: "지민"}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, testUser(), duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.TokenClaims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.TokenClaims.Issuer)
	}
	if token.TokenClaims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.TokenClaims.Subject)
	}
	if token.Email != "jimin@school.kr" {
		t.Errorf("expected email claim, got %s", token.Email)
	}
	if token.Name != "지민" {
		t.Errorf("expected name claim, got %s", token.Name)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser(), tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("mood-journal", testUser(), time.Hour, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "mood-journal")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.UserID != 123 {
		t.Errorf("expected UserID=123, got %d", parsed.UserID)
	}
	if parsed.Email != "jimin@school.kr" {
		t.Errorf("expected email claim to survive round trip, got %s", parsed.Email)
	}
	if parsed.Name != "지민" {
		t.Errorf("expected name claim to survive round trip, got %s", parsed.Name)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("mood-journal", testUser(), time.Hour, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "other-secret", "mood-journal"); err == nil {
		t.Error("expected signature validation error")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("mood-journal", testUser(), time.Hour, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "someone-else"); err == nil {
		t.Error("expected issuer validation error")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("mood-journal", testUser(), -time.Minute, "secret")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "mood-journal"); err == nil {
		t.Error("expected expiration error")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
