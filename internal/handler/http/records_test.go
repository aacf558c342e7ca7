// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/service"
	"github.com/moodlog/mood-journal/internal/store"
	"github.com/moodlog/mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sampleRecord = models.JournalRecord{
	ID:          "0190a1b2-test",
	AuthorID:    7,
	AuthorName:  "Alice",
	AuthorEmail: "alice@school.example",
	Date:        "2026-03-05",
	Time:        "14:30",
	Narrative:   "체육대회 연습을 했다",
	Emotions: []models.EmotionSnapshot{
		{ID: "happy", Korean: "행복한", English: "Happy", Quadrant: models.QuadrantYellow},
	},
}

// withURLParam attaches a chi route parameter to the request context so a
// handler can be invoked directly without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateRecord_Success(t *testing.T) {
	h, _, records, _ := newTestHandler(t)

	input := service.RecordInput{
		Date:       "2026-03-05",
		Time:       "14:30",
		Narrative:  "체육대회 연습을 했다",
		EmotionIDs: []string{"happy"},
	}
	records.EXPECT().CreateRecord(gomock.Any(), input).Return(sampleRecord, nil)

	body, err := json.Marshal(input)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/records", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.JournalRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sampleRecord.ID, got.ID)
	assert.Equal(t, "행복한", got.Emotions[0].Korean)
}

func TestCreateRecord_InvalidJSON(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecord_Unauthenticated(t *testing.T) {
	h, _, records, _ := newTestHandler(t)
	records.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		Return(models.JournalRecord{}, service.ErrNoAuthenticatedUser)

	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(`{"date":"2026-03-05"}`))
	rec := httptest.NewRecorder()

	h.createRecord(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListRecords_ReportsEffectiveScope(t *testing.T) {
	h, _, records, _ := newTestHandler(t)

	// an "all" request downgraded by the gate surfaces "own" in the response
	records.EXPECT().
		ListRecords(gomock.Any(), access.ScopeAll, filter.Criteria{}).
		Return([]models.JournalRecord{sampleRecord}, access.ScopeOwn, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/records?scope=all", nil)
	rec := httptest.NewRecorder()

	h.listRecords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got listRecordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, access.ScopeOwn, got.Scope)
	require.Len(t, got.Records, 1)
	assert.Equal(t, sampleRecord.ID, got.Records[0].ID)
}

func TestListRecords_PassesFilterCriteria(t *testing.T) {
	h, _, records, _ := newTestHandler(t)

	want := filter.Criteria{
		Quadrant:      "yellow",
		StartDate:     "2026-03-01",
		EndDate:       "2026-03-07",
		NameContains:  "ali",
		EmailContains: "school",
	}
	records.EXPECT().
		ListRecords(gomock.Any(), access.ScopeOwn, want).
		Return(nil, access.ScopeOwn, nil)

	target := "/api/records?quadrant=yellow&start_date=2026-03-01&end_date=2026-03-07&name=ali&email=school"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	h.listRecords(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRecords_MissingIndex(t *testing.T) {
	h, _, records, _ := newTestHandler(t)
	records.EXPECT().
		ListRecords(gomock.Any(), access.ScopeOwn, filter.Criteria{}).
		Return(nil, access.ScopeOwn, store.ErrMissingIndex)

	req := httptest.NewRequest(http.MethodGet, "/api/records", nil)
	rec := httptest.NewRecorder()

	h.listRecords(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDeleteRecord_Success(t *testing.T) {
	h, _, records, _ := newTestHandler(t)
	records.EXPECT().DeleteRecord(gomock.Any(), sampleRecord.ID).Return(true, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/records/"+sampleRecord.ID, nil)
	req = withURLParam(req, "id", sampleRecord.ID)
	rec := httptest.NewRecorder()

	h.deleteRecord(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	h, _, records, _ := newTestHandler(t)
	records.EXPECT().DeleteRecord(gomock.Any(), "missing-id").Return(false, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/records/missing-id", nil)
	req = withURLParam(req, "id", "missing-id")
	rec := httptest.NewRecorder()

	h.deleteRecord(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportRecords_CSVResponse(t *testing.T) {
	h, _, records, _ := newTestHandler(t)
	records.EXPECT().
		ListRecords(gomock.Any(), access.ScopeOwn, filter.Criteria{}).
		Return([]models.JournalRecord{sampleRecord}, access.ScopeOwn, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/records/export", nil)
	rec := httptest.NewRecorder()

	h.exportRecords(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "emotion-records-")

	body := rec.Body.Bytes()
	// UTF-8 BOM so spreadsheet applications decode the Korean header
	require.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(body), "날짜,시간,이름,이메일,감정")
	assert.Contains(t, string(body), "행복한")
}

func TestListEmotions_GroupedByQuadrant(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	rec := httptest.NewRecorder()

	h.listEmotions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var groups []emotionQuadrantGroup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 4)

	assert.Equal(t, models.QuadrantRed, groups[0].Quadrant)
	assert.Equal(t, "고에너지-불쾌", groups[0].Title)
	assert.Equal(t, "빨강", groups[0].Color)

	total := 0
	for _, g := range groups {
		total += len(g.Emotions)
	}
	assert.Equal(t, 100, total)
}
