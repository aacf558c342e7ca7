package service

import (
	"context"

	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordInput is the caller-supplied part of a new journal record. Author
// identity, the record ID and the emotion snapshots are filled in by the
// service.
type RecordInput struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Narrative  string   `json:"narrative"`
	Gratitude  string   `json:"gratitude"`
	EmotionIDs []string `json:"emotion_ids"`
}

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RecordService covers the journal record lifecycle: write-once creation,
// scope-gated listing and owner-only deletion. The authenticated identity is
// taken from the request context.
type RecordService interface {
	CreateRecord(ctx context.Context, input RecordInput) (models.JournalRecord, error)
	ListRecords(ctx context.Context, requested access.Scope, criteria filter.Criteria) ([]models.JournalRecord, access.Scope, error)
	DeleteRecord(ctx context.Context, recordID string) (bool, error)
}

// ReportService derives aggregate views over a scope-gated record fetch: the
// report card and the AI narrative feedback.
type ReportService interface {
	BuildReport(ctx context.Context, requested access.Scope, days int) (models.ReportCard, error)
	Summarize(ctx context.Context, requested access.Scope, apiKey string) (string, error)
}
