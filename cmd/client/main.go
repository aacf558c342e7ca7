package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/moodlog/mood-journal/internal/access"
	"github.com/moodlog/mood-journal/internal/adapter"
	"github.com/moodlog/mood-journal/internal/filter"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

type clientFlags struct {
	serverURL string
	email     string
	password  string
	name      string
	register  bool

	action    string
	scope     string
	quadrant  string
	startDate string
	endDate   string
	report    string
	geminiKey string
	outFile   string
}

func main() {
	printBuildInfo()

	log := logger.NewLogger("mood-journal-client")

	flags := parseFlags()
	if flags.email == "" || flags.password == "" {
		log.Fatal().Msg("email and password are required")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: flags.serverURL,
		Timeout: 30 * time.Second,
	})

	ctx := context.Background()
	user := models.User{Email: flags.email, Name: flags.name, Password: flags.password}

	if flags.register {
		if _, err := serverAdapter.Register(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("registration failed")
		}
		log.Info().Str("email", flags.email).Msg("registered")
	} else {
		if _, err := serverAdapter.Login(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
	}

	scope := access.ScopeOwn
	if flags.scope == string(access.ScopeAll) {
		scope = access.ScopeAll
	}

	criteria := filter.Criteria{
		Quadrant:  flags.quadrant,
		StartDate: flags.startDate,
		EndDate:   flags.endDate,
	}

	switch flags.action {
	case "list":
		runList(ctx, serverAdapter, scope, criteria, log)
	case "export":
		runExport(ctx, serverAdapter, scope, criteria, flags.outFile, log)
	case "report":
		runReport(ctx, serverAdapter, scope, flags.report, log)
	case "summary":
		runSummary(ctx, serverAdapter, scope, flags.geminiKey, log)
	default:
		log.Fatal().Str("action", flags.action).Msg("unknown action")
	}
}

func parseFlags() clientFlags {
	var flags clientFlags

	flag.StringVar(&flags.serverURL, "server", "http://localhost:8080", "mood-journal server base URL")
	flag.StringVar(&flags.email, "email", "", "sign-in email")
	flag.StringVar(&flags.password, "password", "", "sign-in password")
	flag.StringVar(&flags.name, "name", "", "display name (registration only)")
	flag.BoolVar(&flags.register, "register", false, "register a new account instead of logging in")

	flag.StringVar(&flags.action, "action", "list", "action to perform: list, export, report, summary")
	flag.StringVar(&flags.scope, "scope", "own", "record scope: own or all (teachers only)")
	flag.StringVar(&flags.quadrant, "quadrant", "", "filter by quadrant: red, yellow, green, blue")
	flag.StringVar(&flags.startDate, "start", "", "filter start date, YYYY-MM-DD")
	flag.StringVar(&flags.endDate, "end", "", "filter end date, YYYY-MM-DD")
	flag.StringVar(&flags.report, "type", "weekly", "report type: weekly or monthly")
	flag.StringVar(&flags.geminiKey, "gemini-key", "", "Gemini API key override for summaries")
	flag.StringVar(&flags.outFile, "out", "emotion-records.csv", "output file for CSV export")

	flag.Parse()

	return flags
}

func runList(ctx context.Context, serverAdapter adapter.ServerAdapter, scope access.Scope, criteria filter.Criteria, log *logger.Logger) {
	records, effective, err := serverAdapter.ListRecords(ctx, scope, criteria)
	if err != nil {
		log.Fatal().Err(err).Msg("listing records failed")
	}

	fmt.Printf("scope: %s, records: %d\n", effective, len(records))
	for _, record := range records {
		emotionLabels := make([]string, 0, len(record.Emotions))
		for _, e := range record.Emotions {
			emotionLabels = append(emotionLabels, e.Korean)
		}
		fmt.Printf("%s %s  %-12s %v  %s\n", record.Date, record.Time, record.AuthorName, emotionLabels, record.Narrative)
	}
}

func runExport(ctx context.Context, serverAdapter adapter.ServerAdapter, scope access.Scope, criteria filter.Criteria, outFile string, log *logger.Logger) {
	body, err := serverAdapter.ExportCSV(ctx, scope, criteria)
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	if err = os.WriteFile(outFile, body, 0o600); err != nil {
		log.Fatal().Err(err).Str("file", outFile).Msg("writing export file failed")
	}

	log.Info().Str("file", outFile).Int("bytes", len(body)).Msg("export written")
}

func runReport(ctx context.Context, serverAdapter adapter.ServerAdapter, scope access.Scope, reportType string, log *logger.Logger) {
	card, err := serverAdapter.GetReport(ctx, scope, reportType)
	if err != nil {
		log.Fatal().Err(err).Msg("report failed")
	}

	fmt.Printf("%s — %s: %d records, %d emotions\n", card.StartDate, card.EndDate, card.RecordCount, card.EmotionCount)
	fmt.Printf("red %d, yellow %d, green %d, blue %d (dominant: %s)\n",
		card.Counts.Red, card.Counts.Yellow, card.Counts.Green, card.Counts.Blue, card.Dominant)
	for _, top := range card.TopEmotions {
		fmt.Printf("  %s: %d\n", top.Label, top.Count)
	}
}

func runSummary(ctx context.Context, serverAdapter adapter.ServerAdapter, scope access.Scope, geminiKey string, log *logger.Logger) {
	text, err := serverAdapter.Summarize(ctx, scope, geminiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("summary failed")
	}

	fmt.Println(text)
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
