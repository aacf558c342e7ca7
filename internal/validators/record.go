package validators

import (
	"context"
	"strings"
	"time"

	"github.com/moodlog/mood-journal/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation
// to a subset of fields (field-level scoping).
const (
	// FieldAuthorID targets the owner identifier of a journal record.
	FieldAuthorID = "author_id"

	// FieldDate targets the journal entry date (YYYY-MM-DD).
	FieldDate = "date"

	// FieldTime targets the journal entry time (HH:MM, 24-hour).
	FieldTime = "time"

	// FieldNarrative targets the free-text body of a journal record.
	FieldNarrative = "narrative"

	// FieldEmotions targets the embedded emotion snapshots (one or two per record).
	FieldEmotions = "emotions"

	// FieldEmail targets a user's sign-in email.
	FieldEmail = "email"

	// FieldName targets a user's display name.
	FieldName = "name"

	// FieldPassword targets a user's plaintext password at registration time.
	FieldPassword = "password"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	minPasswordLength = 6

	// MaxEmotionsPerRecord caps how many emotion snapshots one record can
	// carry. The journal UI offers a primary and an optional secondary pick.
	MaxEmotionsPerRecord = 2
)

// RecordValidator implements the Validator interface for journal-domain
// models: JournalRecord and User.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JournalRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.JournalRecord:
		return v.validateRecord(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRecord validates a single JournalRecord.
//
// Default validated fields (when none specified):
// AuthorID, Date, Time, Narrative, Emotions.
//
// Returns the first encountered validation error or nil.
func (v *RecordValidator) validateRecord(_ context.Context, record models.JournalRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAuthorID, FieldDate, FieldTime, FieldNarrative, FieldEmotions}
	}

	for _, f := range fields {
		switch f {
		case FieldAuthorID:
			if record.AuthorID <= 0 {
				return ErrInvalidAuthorID
			}
		case FieldDate:
			if _, err := time.Parse(dateLayout, record.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldTime:
			if _, err := time.Parse(timeLayout, record.Time); err != nil {
				return ErrInvalidTime
			}
		case FieldNarrative:
			if strings.TrimSpace(record.Narrative) == "" {
				return ErrEmptyNarrative
			}
		case FieldEmotions:
			if len(record.Emotions) == 0 {
				return ErrNoEmotions
			}
			if len(record.Emotions) > MaxEmotionsPerRecord {
				return ErrTooManyEmotions
			}
			for _, e := range record.Emotions {
				if e.ID == "" {
					return ErrUnknownEmotion
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser validates registration and login input.
//
// Default validated fields (when none specified): Email, Name, Password.
// Login requests typically scope down to Email and Password only.
func (v *RecordValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			email := strings.TrimSpace(user.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			at := strings.Index(email, "@")
			if at <= 0 || at == len(email)-1 {
				return ErrInvalidEmail
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldPassword:
			if len(user.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
