package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/stats"
	"github.com/moodlog/mood-journal/internal/store"
	"github.com/moodlog/mood-journal/internal/summary"
	"github.com/moodlog/mood-journal/internal/utils"
	"github.com/moodlog/mood-journal/models"
)

const topEmotionsInReport = 5

// reportService is the concrete implementation of ReportService. It shares
// the scope-gated fetch semantics of the record service and derives all
// aggregates in memory from one fetch.
type reportService struct {
	recordRepository store.RecordRepository
	gate             *access.Gate
	summarizer       summary.Summarizer
	logger           *logger.Logger

	now func() time.Time
}

// NewReportService constructs a ReportService over the given repository,
// access gate and summarizer.
func NewReportService(recordRepository store.RecordRepository, gate *access.Gate, summarizer summary.Summarizer, logger *logger.Logger) ReportService {
	return &reportService{
		recordRepository: recordRepository,
		gate:             gate,
		summarizer:       summarizer,
		logger:           logger,
		now:              time.Now,
	}
}

// BuildReport assembles the report card over a window of the given number of
// days ending today: totals, quadrant distribution and percentages, dominant
// quadrant, top emotions, and the gap-free 7-day trend.
func (s *reportService) BuildReport(ctx context.Context, requested access.Scope, days int) (models.ReportCard, error) {
	log := logger.FromContext(ctx)

	records, scope, err := s.fetchScoped(ctx, requested)
	if err != nil {
		log.Err(err).Str("scope", string(scope)).Msg("report record fetch failed")
		return models.ReportCard{}, err
	}

	if days <= 0 {
		days = 7
	}
	startDate, endDate := stats.ReportWindow(s.now(), days)

	windowRecords := filter.Apply(records, filter.Criteria{
		StartDate: startDate,
		EndDate:   endDate,
	})

	emotionCount := 0
	for _, r := range windowRecords {
		emotionCount += len(r.Emotions)
	}

	counts := stats.QuadrantCounts(windowRecords, "", "")

	card := models.ReportCard{
		StartDate:    startDate,
		EndDate:      endDate,
		RecordCount:  len(windowRecords),
		EmotionCount: emotionCount,
		Counts:       counts,
		Percentages:  stats.Percentages(counts),
		Dominant:     stats.DominantQuadrant(counts),
		TopEmotions:  stats.TopEmotions(windowRecords, topEmotionsInReport),
		Trend:        stats.DailyTrend(records, 7, endDate),
	}

	return card, nil
}

// Summarize fetches the effective scope's records and asks the summarizer
// for narrative feedback: the teacher-facing class analysis for the all
// scope, personal feedback otherwise. The apiKey parameter optionally
// overrides the server-configured Gemini credential.
func (s *reportService) Summarize(ctx context.Context, requested access.Scope, apiKey string) (string, error) {
	log := logger.FromContext(ctx)

	records, scope, err := s.fetchScoped(ctx, requested)
	if err != nil {
		log.Err(err).Str("scope", string(scope)).Msg("summary record fetch failed")
		return "", err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortKey() > records[j].SortKey()
	})

	text, err := s.summarizer.Summarize(ctx, summary.Request{
		APIKey:   apiKey,
		Elevated: scope == access.ScopeAll,
		Counts:   stats.QuadrantCounts(records, "", ""),
		Records:  records,
	})
	if err != nil {
		log.Err(err).Str("scope", string(scope)).Msg("summary generation failed")
		return "", fmt.Errorf("summary generation failed: %w", err)
	}

	return text, nil
}

func (s *reportService) fetchScoped(ctx context.Context, requested access.Scope) ([]models.JournalRecord, access.Scope, error) {
	authorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, access.ScopeOwn, ErrNoAuthenticatedUser
	}
	email, _ := utils.GetUserEmailFromContext(ctx)

	scope := s.gate.Resolve(requested, email)
	limit := uint64(access.Limit(scope))

	var records []models.JournalRecord
	var err error
	if scope == access.ScopeAll {
		records, err = s.recordRepository.ListAll(ctx, limit)
	} else {
		records, err = s.recordRepository.ListByAuthor(ctx, authorID, limit)
	}
	if err != nil {
		return nil, scope, fmt.Errorf("record fetch failed: %w", err)
	}

	return records, scope, nil
}
