package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/export"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/service"
	"github.com/moodlog/mood-journal/internal/utils"
	"github.com/moodlog/mood-journal/models"
)

// listRecordsResponse is the payload of GET /api/records. Scope reports the
// EFFECTIVE scope of the fetch: a non-elevated caller asking for "all" gets
// "own" back here, not an error.
type listRecordsResponse struct {
	Scope   access.Scope           `json:"scope"`
	Records []models.JournalRecord `json:"records"`
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.CreateRecord(ctx, input)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error creating journal record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requested, criteria := scopeAndCriteriaFromQuery(r)

	records, scope, err := h.services.RecordService.ListRecords(ctx, requested, criteria)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing journal records")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, listRecordsResponse{Scope: scope, Records: records}, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recordID := chi.URLParam(r, "id")

	deleted, err := h.services.RecordService.DeleteRecord(ctx, recordID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("record_id", recordID).Msg("error deleting journal record")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	// Deletion is owner-only at the store level, so "not deleted" covers both
	// an unknown id and somebody else's record. Respond 404 for either.
	if !deleted {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requested, criteria := scopeAndCriteriaFromQuery(r)

	records, _, err := h.services.RecordService.ListRecords(ctx, requested, criteria)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportRecords").Msg("error fetching records for export")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)

	if err := export.WriteCSV(w, records); err != nil {
		// headers are already sent, the response cannot be repaired
		log.Err(err).Str("func", "*Handler.exportRecords").Msg("error writing csv export")
	}
}

func (h *Handler) listEmotions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, emotionsCatalog(), http.StatusOK)
}

// scopeAndCriteriaFromQuery reads the record-selection query parameters
// shared by the list, export and report endpoints. An absent scope parameter
// requests the caller's own records.
func scopeAndCriteriaFromQuery(r *http.Request) (access.Scope, filter.Criteria) {
	query := r.URL.Query()

	requested := access.ScopeOwn
	if query.Get("scope") == string(access.ScopeAll) {
		requested = access.ScopeAll
	}

	criteria := filter.Criteria{
		Quadrant:      query.Get("quadrant"),
		StartDate:     query.Get("start_date"),
		EndDate:       query.Get("end_date"),
		NameContains:  query.Get("name"),
		EmailContains: query.Get("email"),
	}

	return requested, criteria
}
