package store

import "github.com/moodlog/mood-journal/internal/logger"

// Repositories bundles all storage-layer repositories behind one value for
// injection into the service layer.
type Repositories struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
}

// NewRepositories constructs all repositories over a single database
// connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, log),
		RecordRepository: NewRecordRepository(db, log),
	}
}
