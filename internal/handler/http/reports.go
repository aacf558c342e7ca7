package http

import (
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/summary"
	"github.com/moodlog/mood-journal/internal/utils"
)

// geminiKeyHeader optionally carries a caller-supplied Gemini API key that
// overrides the server-configured credential for one summary request.
const geminiKeyHeader = "X-Gemini-Key"

// summaryResponse is the payload of POST /api/summary. Summary is always a
// renderable feedback text: on generation failure it carries the canned
// replacement text instead of an error.
type summaryResponse struct {
	Summary string `json:"summary"`
}

// Report window lengths in days per report type.
const (
	weeklyReportDays  = 7
	monthlyReportDays = 30
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requested, _ := scopeAndCriteriaFromQuery(r)

	card, err := h.services.ReportService.BuildReport(ctx, requested, weeklyReportDays)
	if err != nil {
		log.Err(err).Str("func", "*Handler.stats").Msg("error building stats")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requested, _ := scopeAndCriteriaFromQuery(r)

	days := weeklyReportDays
	switch reportType := r.URL.Query().Get("type"); reportType {
	case "", "weekly":
	case "monthly":
		days = monthlyReportDays
	default:
		log.Error().Str("func", "*Handler.report").Str("type", reportType).Msg("invalid report type")
		http.Error(w, "invalid report type", http.StatusBadRequest)
		return
	}

	card, err := h.services.ReportService.BuildReport(ctx, requested, days)
	if err != nil {
		log.Err(err).Str("func", "*Handler.report").Msg("error building report")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	requested, _ := scopeAndCriteriaFromQuery(r)
	apiKey := r.Header.Get(geminiKeyHeader)

	text, err := h.services.ReportService.Summarize(ctx, requested, apiKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.summarize").Msg("error generating summary")

		// Missing credentials and storage conditions keep their HTTP status;
		// any other failure degrades to the canned replacement text so the
		// client always has a feedback body to render.
		if status := statusFromError(err); status != http.StatusInternalServerError {
			http.Error(w, err.Error(), status)
			return
		}

		utils.WriteJSON(w, summaryResponse{Summary: summary.FailureText}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, summaryResponse{Summary: text}, http.StatusOK)
}
