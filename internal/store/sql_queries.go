// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/moodlog/mood-journal/models"
)

// Column sets shared by the record query builders. The order here must match
// the Scan order in repository_record.go.
var recordColumns = []string{
	"id",
	"author_id",
	"author_name",
	"author_email",
	"date",
	"time",
	"narrative",
	"gratitude",
	"emotions",
	"created_at",
}

var userColumns = []string{
	"user_id",
	"email",
	"name",
	"password_hash",
	"created_at",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("email", "name", "password_hash").
		Values(user.Email, user.Name, user.PasswordHash).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertRecordQuery(b sq.StatementBuilderType, record models.JournalRecord, emotionsJSON []byte) (string, []any, error) {
	return b.Insert("records").
		Columns(
			"id",
			"author_id",
			"author_name",
			"author_email",
			"date",
			"time",
			"narrative",
			"gratitude",
			"emotions",
			"created_at",
		).
		Values(
			record.ID,
			record.AuthorID,
			record.AuthorName,
			record.AuthorEmail,
			record.Date,
			record.Time,
			record.Narrative,
			record.Gratitude,
			emotionsJSON,
			record.CreatedAt,
		).
		ToSql()
}

// buildSelectRecordsByAuthorQuery lists one author's records, most recent
// journal entry first. The sort uses the record's own date and time fields,
// not the server-side creation timestamp.
func buildSelectRecordsByAuthorQuery(b sq.StatementBuilderType, authorID int64, limit uint64) (string, []any, error) {
	q := b.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("date DESC", "time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}

func buildSelectAllRecordsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	q := b.Select(recordColumns...).
		From("records").
		OrderBy("date DESC", "time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}

// buildDeleteRecordQuery scopes deletion by both record ID and author ID so
// that a caller can never delete another author's record.
func buildDeleteRecordQuery(b sq.StatementBuilderType, recordID string, authorID int64) (string, []any, error) {
	return b.Delete("records").
		Where(sq.Eq{"id": recordID, "author_id": authorID}).
		ToSql()
}
