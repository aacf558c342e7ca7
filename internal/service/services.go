package service

import (
	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/config"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/store"
	"github.com/moodlog/mood-journal/internal/summary"
)

type Services struct {
	AuthService   AuthService
	RecordService RecordService
	ReportService ReportService
}

func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, gate *access.Gate, summarizer summary.Summarizer, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(repos.UserRepository, cfg.App, logger),
		RecordService: NewRecordService(repos.RecordRepository, gate, logger),
		ReportService: NewReportService(repos.RecordRepository, gate, summarizer, logger),
	}
}
