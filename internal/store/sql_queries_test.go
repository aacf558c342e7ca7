// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlog/mood-journal/models"
)

var pgBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func Test_buildSelectRecordsByAuthorQuery_SQLContainsParts(t *testing.T) {
	authorID := int64(42)

	query, args, err := buildSelectRecordsByAuthorQuery(pgBuilder, authorID, 100)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, authorID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from records")
	require.Contains(t, q, "where")
	require.Contains(t, q, "author_id")
	require.Contains(t, q, "order by date desc, time desc")
	require.Contains(t, q, "limit 100")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildSelectRecordsByAuthorQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, _, err := buildSelectRecordsByAuthorQuery(pgBuilder, 1, 0)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	for _, c := range recordColumns {
		require.Contains(t, q, c)
	}

	// No limit requested, none emitted.
	require.NotContains(t, q, "limit")
}

func Test_buildSelectAllRecordsQuery(t *testing.T) {
	query, args, err := buildSelectAllRecordsQuery(pgBuilder, 200)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from records")
	assert.NotContains(t, q, "where")
	assert.Contains(t, q, "order by date desc, time desc")
	assert.Contains(t, q, "limit 200")
	assert.Empty(t, args)
}

func Test_buildInsertRecordQuery(t *testing.T) {
	record := models.JournalRecord{
		ID:          "rec-1",
		AuthorID:    7,
		AuthorName:  "지민",
		AuthorEmail: "jimin@school.kr",
		Date:        "2026-03-02",
		Time:        "09:15",
		Narrative:   "새 학기 첫날",
		Gratitude:   "친구들",
		CreatedAt:   time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC),
	}
	emotionsJSON := []byte(`[{"id":"excited"}]`)

	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres placeholders", builder: pgBuilder, placeholder: "$1"},
		{name: "sqlite placeholders", builder: sqliteBuilder, placeholder: "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertRecordQuery(tt.builder, record, emotionsJSON)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.Contains(t, q, "insert into records")
			assert.Contains(t, query, tt.placeholder)

			require.Len(t, args, 10)
			assert.Equal(t, "rec-1", args[0])
			assert.Equal(t, int64(7), args[1])
			assert.Equal(t, emotionsJSON, args[8])
		})
	}
}

func Test_buildDeleteRecordQuery(t *testing.T) {
	query, args, err := buildDeleteRecordQuery(pgBuilder, "rec-9", 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from records")
	assert.Contains(t, q, "author_id")
	assert.Contains(t, q, "id")

	// Both scoping arguments must be present.
	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{"rec-9", int64(42)}, args)
}

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Email: "t@school.kr", Name: "김선생", PasswordHash: "argon2id$..."}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning user_id, created_at")

	require.Len(t, args, 3)
	assert.Equal(t, "t@school.kr", args[0])
}

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery(pgBuilder, "t@school.kr")
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range userColumns {
		require.Contains(t, q, c)
	}
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "where")

	require.Len(t, args, 1)
	assert.Equal(t, "t@school.kr", args[0])
}
