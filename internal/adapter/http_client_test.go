// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedTestToken builds a real HS256 token whose subject is the given user
// id. The adapter only parses it unverified, so the signing key is arbitrary.
func signedTestToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: userID})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestRegister_StoresTokenAndUserID(t *testing.T) {
	signed := signedTestToken(t, "42")

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusOK)
	}))

	user, err := a.Register(context.Background(), models.User{Email: "alice@school.example", Name: "Alice", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, "alice@school.example", user.Email)
	assert.Equal(t, signed, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
	}))

	_, err := a.Login(context.Background(), models.User{Email: "alice@school.example", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListRecords_SendsFilterAndBearerToken(t *testing.T) {
	page := recordsPage{
		Scope: access.ScopeOwn,
		Records: []models.JournalRecord{
			{ID: "rec-1", Date: "2026-03-05", Time: "14:30", Narrative: "수학 시험을 봤다"},
		},
	}

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/records", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "all", query.Get("scope"))
		assert.Equal(t, "yellow", query.Get("quadrant"))
		assert.Equal(t, "2026-03-01", query.Get("start_date"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))
	a.SetToken("stored-token")

	records, scope, err := a.ListRecords(context.Background(), access.ScopeAll, filter.Criteria{
		Quadrant:  "yellow",
		StartDate: "2026-03-01",
	})
	require.NoError(t, err)

	assert.Equal(t, access.ScopeOwn, scope, "effective scope comes from the server")
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
}

func TestListRecords_SupersededFetchIsDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	var calls atomic.Int32
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			close(firstArrived)
			<-releaseFirst
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recordsPage{Scope: access.ScopeOwn})
	}))

	firstDone := make(chan error, 1)
	go func() {
		_, _, err := a.ListRecords(context.Background(), access.ScopeOwn, filter.Criteria{})
		firstDone <- err
	}()

	// wait until the first fetch is in flight, then start and finish a newer one
	<-firstArrived
	_, _, err := a.ListRecords(context.Background(), access.ScopeOwn, filter.Criteria{})
	require.NoError(t, err)

	close(releaseFirst)
	assert.ErrorIs(t, <-firstDone, ErrStaleResponse)
}

func TestDeleteRecord_RefetchesList(t *testing.T) {
	var deleted, listed bool

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/records/rec-1":
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && r.URL.Path == "/api/records":
			listed = true
			require.True(t, deleted, "refetch must happen after the delete")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(recordsPage{
				Scope:   access.ScopeOwn,
				Records: []models.JournalRecord{{ID: "rec-2"}},
			})
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	records, scope, err := a.DeleteRecord(context.Background(), "rec-1", access.ScopeOwn)
	require.NoError(t, err)

	assert.True(t, listed)
	assert.Equal(t, access.ScopeOwn, scope)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-2", records[0].ID)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record not found", http.StatusNotFound)
	}))

	_, _, err := a.DeleteRecord(context.Background(), "missing", access.ScopeOwn)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReport_QueryParams(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/report", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("scope"))
		assert.Equal(t, "monthly", r.URL.Query().Get("type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ReportCard{StartDate: "2026-02-06", EndDate: "2026-03-07"})
	}))

	card, err := a.GetReport(context.Background(), access.ScopeAll, "monthly")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-06", card.StartDate)
}

func TestSummarize_SendsKeyHeader(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "caller-key", r.Header.Get("X-Gemini-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":"이번 주도 수고했어요."}`))
	}))

	text, err := a.Summarize(context.Background(), access.ScopeOwn, "caller-key")
	require.NoError(t, err)
	assert.Equal(t, "이번 주도 수고했어요.", text)
}

func TestExportCSV_ReturnsRawBody(t *testing.T) {
	csvBody := append([]byte{0xEF, 0xBB, 0xBF}, []byte("날짜,시간\n")...)

	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/records/export", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_, _ = w.Write(csvBody)
	}))

	body, err := a.ExportCSV(context.Background(), access.ScopeOwn, filter.Criteria{})
	require.NoError(t, err)
	assert.Equal(t, csvBody, body)
}

func TestMapHTTPError_MissingIndex(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage index is missing", http.StatusServiceUnavailable)
	}))

	_, _, err := a.ListRecords(context.Background(), access.ScopeOwn, filter.Criteria{})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
