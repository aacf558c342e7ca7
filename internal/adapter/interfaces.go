// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the mood-journal server.
//
// The primary abstraction is [ServerAdapter], which decouples client-side
// code from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/service"
	"github.com/moodlog/mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// mood-journal server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account with the provided credentials. On success
	// it stores the returned bearer token via SetToken and returns the user
	// value with the server-assigned id.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with the server. On success it stores the returned
	// bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreateRecord saves a new journal record and returns the stored record
	// with its embedded emotion snapshots.
	CreateRecord(ctx context.Context, input service.RecordInput) (models.JournalRecord, error)

	// ListRecords fetches records for the requested scope with the given
	// filter. The returned scope is the EFFECTIVE scope granted by the
	// server. A fetch that resolves after a newer ListRecords call started
	// returns [ErrStaleResponse] and its payload must be discarded.
	ListRecords(ctx context.Context, scope access.Scope, criteria filter.Criteria) ([]models.JournalRecord, access.Scope, error)

	// DeleteRecord removes the record with the given id, then refetches the
	// current record list for the scope instead of mutating any local copy.
	DeleteRecord(ctx context.Context, recordID string, scope access.Scope) ([]models.JournalRecord, access.Scope, error)

	// GetStats fetches the weekly report card for the requested scope.
	GetStats(ctx context.Context, scope access.Scope) (models.ReportCard, error)

	// GetReport fetches the report card of the given type
	// ("weekly" or "monthly") for the requested scope.
	GetReport(ctx context.Context, scope access.Scope, reportType string) (models.ReportCard, error)

	// Summarize requests AI narrative feedback for the scope. A non-empty
	// apiKey is sent as the per-request Gemini credential override.
	Summarize(ctx context.Context, scope access.Scope, apiKey string) (string, error)

	// ExportCSV downloads the CSV export of the scope's records with the
	// given filter and returns the raw file bytes, BOM included.
	ExportCSV(ctx context.Context, scope access.Scope, criteria filter.Criteria) ([]byte, error)
}
