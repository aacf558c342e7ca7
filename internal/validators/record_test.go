package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodlog/mood-journal/models"
)

func validRecord() models.JournalRecord {
	return models.JournalRecord{
		ID:        "rec-1",
		AuthorID:  7,
		Date:      "2026-03-02",
		Time:      "09:15",
		Narrative: "새 학기 첫날",
		Emotions: []models.EmotionSnapshot{
			{ID: "nervous", Korean: "긴장되는", English: "nervous", Quadrant: models.QuadrantRed},
		},
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	v := NewRecordValidator()
	assert.NoError(t, v.Validate(context.Background(), validRecord()))
}

func TestValidateRecord_PointerForm(t *testing.T) {
	v := NewRecordValidator()
	record := validRecord()
	assert.NoError(t, v.Validate(context.Background(), &record))
}

func TestValidateRecord_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.JournalRecord)
		want   error
	}{
		{
			name:   "zero author ID",
			mutate: func(r *models.JournalRecord) { r.AuthorID = 0 },
			want:   ErrInvalidAuthorID,
		},
		{
			name:   "bad date format",
			mutate: func(r *models.JournalRecord) { r.Date = "03/02/2026" },
			want:   ErrInvalidDate,
		},
		{
			name:   "bad time format",
			mutate: func(r *models.JournalRecord) { r.Time = "9am" },
			want:   ErrInvalidTime,
		},
		{
			name:   "blank narrative",
			mutate: func(r *models.JournalRecord) { r.Narrative = "   " },
			want:   ErrEmptyNarrative,
		},
		{
			name:   "no emotions",
			mutate: func(r *models.JournalRecord) { r.Emotions = nil },
			want:   ErrNoEmotions,
		},
		{
			name: "three emotions",
			mutate: func(r *models.JournalRecord) {
				r.Emotions = []models.EmotionSnapshot{{ID: "a"}, {ID: "b"}, {ID: "c"}}
			},
			want: ErrTooManyEmotions,
		},
		{
			name: "snapshot without ID",
			mutate: func(r *models.JournalRecord) {
				r.Emotions = []models.EmotionSnapshot{{Korean: "행복한"}}
			},
			want: ErrUnknownEmotion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewRecordValidator()
			record := validRecord()
			tt.mutate(&record)
			assert.ErrorIs(t, v.Validate(context.Background(), record), tt.want)
		})
	}
}

func TestValidateRecord_FieldScoping(t *testing.T) {
	v := NewRecordValidator()
	record := validRecord()
	record.Narrative = ""

	// Only the date is in scope, so the empty narrative passes.
	assert.NoError(t, v.Validate(context.Background(), record, FieldDate))
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name   string
		user   models.User
		fields []string
		want   error
	}{
		{
			name: "valid registration",
			user: models.User{Email: "jimin@school.kr", Name: "지민", Password: "secret1"},
		},
		{
			name: "empty email",
			user: models.User{Name: "지민", Password: "secret1"},
			want: ErrEmptyEmail,
		},
		{
			name: "email without domain",
			user: models.User{Email: "jimin@", Name: "지민", Password: "secret1"},
			want: ErrInvalidEmail,
		},
		{
			name: "missing name",
			user: models.User{Email: "jimin@school.kr", Password: "secret1"},
			want: ErrEmptyName,
		},
		{
			name: "short password",
			user: models.User{Email: "jimin@school.kr", Name: "지민", Password: "abc"},
			want: ErrPasswordTooShort,
		},
		{
			name:   "login scopes out name",
			user:   models.User{Email: "jimin@school.kr", Password: "secret1"},
			fields: []string{FieldEmail, FieldPassword},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewRecordValidator()
			err := v.Validate(context.Background(), tt.user, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewRecordValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validRecord(), "color"), ErrUnknownField)
}
