package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/emotions"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/store"
	"github.com/moodlog/mood-journal/internal/utils"
	"github.com/moodlog/mood-journal/internal/validators"
	"github.com/moodlog/mood-journal/models"
)

// recordService is the concrete implementation of RecordService.
//
// Records are write-once: creation embeds emotion snapshots and the author
// identity at that moment, and the only later mutation allowed is deletion by
// the owner.
type recordService struct {
	recordRepository store.RecordRepository
	gate             *access.Gate
	validator        validators.Validator
	uuid             *utils.UUIDGenerator
	logger           *logger.Logger

	now func() time.Time
}

// NewRecordService constructs a RecordService over the given repository and
// access gate.
func NewRecordService(recordRepository store.RecordRepository, gate *access.Gate, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: recordRepository,
		gate:             gate,
		validator:        validators.NewRecordValidator(),
		uuid:             utils.NewUUIDGenerator(),
		logger:           logger,
		now:              time.Now,
	}
}

// CreateRecord resolves the input's emotion identifiers against the catalog,
// snapshots the authenticated author's identity, and persists the record.
//
// Snapshots are embedded at write time: a record keeps the labels and
// quadrant that were current when it was written, even if the catalog
// changes later.
func (s *recordService) CreateRecord(ctx context.Context, input RecordInput) (models.JournalRecord, error) {
	log := logger.FromContext(ctx)

	authorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.JournalRecord{}, ErrNoAuthenticatedUser
	}
	authorEmail, _ := utils.GetUserEmailFromContext(ctx)
	authorName, _ := utils.GetUserNameFromContext(ctx)

	snapshots := make([]models.EmotionSnapshot, 0, len(input.EmotionIDs))
	for _, id := range input.EmotionIDs {
		emotion, found := emotions.ByID(id)
		if !found {
			log.Error().Str("emotion_id", id).Msg("unknown emotion identifier")
			return models.JournalRecord{}, fmt.Errorf("%w: %w: %q", ErrInvalidDataProvided, validators.ErrUnknownEmotion, id)
		}
		snapshots = append(snapshots, emotion.Snapshot())
	}

	record := models.JournalRecord{
		ID:          s.uuid.Generate(),
		AuthorID:    authorID,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Date:        input.Date,
		Time:        input.Time,
		Narrative:   input.Narrative,
		Gratitude:   input.Gratitude,
		Emotions:    snapshots,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.validator.Validate(ctx, record); err != nil {
		log.Error().Str("record_id", record.ID).Err(err).Msg("invalid record data provided")
		return models.JournalRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.recordRepository.CreateRecord(ctx, record)
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("record creation ended with error")
		return models.JournalRecord{}, fmt.Errorf("record creation ended with error: %w", err)
	}

	return created, nil
}

// ListRecords fetches records for the effective scope, applies the filter
// criteria, and returns the result newest first together with the scope that
// was actually used. A non-elevated caller asking for the all scope is
// silently downgraded to own.
func (s *recordService) ListRecords(ctx context.Context, requested access.Scope, criteria filter.Criteria) ([]models.JournalRecord, access.Scope, error) {
	log := logger.FromContext(ctx)

	records, scope, err := s.fetchScoped(ctx, requested)
	if err != nil {
		log.Err(err).Str("scope", string(scope)).Msg("record fetch failed")
		return nil, scope, err
	}

	filtered := filter.Apply(records, criteria)
	sortNewestFirst(filtered)

	return filtered, scope, nil
}

// DeleteRecord removes the caller's record. The repository scopes the delete
// by author id, so a caller can never delete another author's record; an
// already-absent record reports deleted=false without an error.
func (s *recordService) DeleteRecord(ctx context.Context, recordID string) (bool, error) {
	log := logger.FromContext(ctx)

	authorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return false, ErrNoAuthenticatedUser
	}
	if recordID == "" {
		return false, ErrInvalidDataProvided
	}

	deleted, err := s.recordRepository.DeleteRecord(ctx, recordID, authorID)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Int64("author_id", authorID).Msg("record deletion failed")
		return false, fmt.Errorf("record deletion failed: %w", err)
	}

	return deleted, nil
}

func (s *recordService) fetchScoped(ctx context.Context, requested access.Scope) ([]models.JournalRecord, access.Scope, error) {
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

// sortNewestFirst orders records by their journal date and time, descending.
// Ordering happens here rather than relying on storage order so the API
// contract holds regardless of backend.
func sortNewestFirst(records []models.JournalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortKey() > records[j].SortKey()
	})
}
