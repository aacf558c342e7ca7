package main

import (
	"context"
	"fmt"

	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/config"
	"github.com/moodlog/mood-journal/internal/handler"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/server"
	"github.com/moodlog/mood-journal/internal/service"
	"github.com/moodlog/mood-journal/internal/store"
	"github.com/moodlog/mood-journal/internal/summary"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mood-journal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	var db *store.DB
	switch cfg.Storage.DB.Driver {
	case "sqlite3":
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	gate := access.NewGate(cfg.App.TeacherEmails)
	summarizer := summary.NewGeminiSummarizer(cfg.App.GeminiAPIKey, log)

	services := service.NewServices(repositories, cfg, gate, summarizer, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
