package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
)

func TestPostgresErrorClassifier(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"non-driver error", errors.New("connection refused"), NonRetryable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	if got := classifier.Classify(errors.New("database is locked")); got != Retryable {
		t.Errorf("locked database should be retryable, got %v", got)
	}
	if got := classifier.Classify(errors.New("UNIQUE constraint failed: users.email")); got != NonRetryable {
		t.Errorf("constraint failure should be non-retryable, got %v", got)
	}
	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("nil error should be non-retryable, got %v", got)
	}
}

func TestDBClassifyWithoutClassifier(t *testing.T) {
	db := &DB{}

	if got := db.Classify(errors.New("anything")); got != NonRetryable {
		t.Errorf("expected NonRetryable without a classifier, got %v", got)
	}
}

func TestErrorClassificationString(t *testing.T) {
	if got := Retryable.String(); got != "retryable" {
		t.Errorf("unexpected string: %s", got)
	}
	if got := NonRetryable.String(); got != "non-retryable" {
		t.Errorf("unexpected string: %s", got)
	}
}
