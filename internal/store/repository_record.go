package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/models"
)

// recordRepository is the SQL-backed implementation of [RecordRepository].
// It executes all journal-record operations against the "records" table
// using the embedded [*DB] connection.
//
// Emotion snapshots are stored denormalized as a JSON column so a record
// keeps the exact emotion metadata that was current when it was written,
// even if the catalog changes later.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateRecord persists a journal record together with its embedded emotion
// snapshots and denormalized author identity.
func (p *recordRepository) CreateRecord(ctx context.Context, record models.JournalRecord) (models.JournalRecord, error) {
	log := logger.FromContext(ctx)

	emotionsJSON, err := json.Marshal(record.Emotions)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Str("record_id", record.ID).
			Msg("failed to marshal emotion snapshots")
		return models.JournalRecord{}, fmt.Errorf("marshal emotions: %w", err)
	}

	query, args, err := buildInsertRecordQuery(p.Builder(), record, emotionsJSON)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Str("record_id", record.ID).
			Msg("failed to build query")
		return models.JournalRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CreateRecord").
			Int64("author_id", record.AuthorID).
			Stringer("classification", p.Classify(err)).
			Msg("failed to insert journal record")
		return models.JournalRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return models.JournalRecord{}, ErrRecordNotSaved
	}

	return record, nil
}

// ListByAuthor retrieves journal records owned by authorID, most recent entry
// first, capped at limit rows (0 means no cap).
func (p *recordRepository) ListByAuthor(ctx context.Context, authorID int64, limit uint64) ([]models.JournalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsByAuthorQuery(p.Builder(), authorID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListByAuthor").
			Int64("author_id", authorID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryRecords(ctx, "recordRepository.ListByAuthor", query, args)
}

// ListAll retrieves the most recent journal records of every author, capped
// at limit rows (0 means no cap). Intended for the elevated (teacher) scope.
func (p *recordRepository) ListAll(ctx context.Context, limit uint64) ([]models.JournalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllRecordsQuery(p.Builder(), limit)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListAll").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryRecords(ctx, "recordRepository.ListAll", query, args)
}

// DeleteRecord removes the record identified by recordID if and only if it is
// owned by authorID. Reports whether a row was actually deleted; deleting an
// already-absent record is not an error.
func (p *recordRepository) DeleteRecord(ctx context.Context, recordID string, authorID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(p.Builder(), recordID, authorID)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", recordID).
			Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("record_id", recordID).
			Int64("author_id", authorID).
			Stringer("classification", p.Classify(err)).
			Msg("failed to delete journal record")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (p *recordRepository) queryRecords(ctx context.Context, caller, query string, args []any) ([]models.JournalRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		if isMissingSchemaObject(err) {
			log.Err(err).Str("func", caller).Msg("records table or index is missing")
			return nil, ErrMissingIndex
		}
		log.Err(err).
			Str("func", caller).
			Stringer("classification", p.Classify(err)).
			Msg("failed to execute query for journal records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.JournalRecord, 0, 50)

	for rows.Next() {
		var record models.JournalRecord
		var emotionsJSON []byte

		scanErr := rows.Scan(
			&record.ID,
			&record.AuthorID,
			&record.AuthorName,
			&record.AuthorEmail,
			&record.Date,
			&record.Time,
			&record.Narrative,
			&record.Gratitude,
			&emotionsJSON,
			&record.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if err := json.Unmarshal(emotionsJSON, &record.Emotions); err != nil {
			log.Err(err).
				Str("func", caller).
				Str("record_id", record.ID).
				Msg("failed to unmarshal emotion snapshots")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		results = append(results, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
