package store

import (
	"context"

	"github.com/moodlog/mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up journal user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RecordRepository persists journal records. Records are write-once: there is
// no update operation, only creation, listing and deletion.
type RecordRepository interface {
	CreateRecord(ctx context.Context, record models.JournalRecord) (models.JournalRecord, error)
	ListByAuthor(ctx context.Context, authorID int64, limit uint64) ([]models.JournalRecord, error)
	ListAll(ctx context.Context, limit uint64) ([]models.JournalRecord, error)
	DeleteRecord(ctx context.Context, recordID string, authorID int64) (bool, error)
}
