// Package export renders journal records as spreadsheet-friendly CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/moodlog/mood-journal/models"
)

// utf8BOM makes Excel detect the encoding; without it Korean text renders
// as mojibake when the file is opened by double-click.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{"날짜", "시간", "이름", "이메일", "감정", "오늘 있었던 일", "감사한 일"}

// WriteCSV streams the given records as a CSV document, preceded by a UTF-8
// BOM and a header row. Emotion labels are joined with a comma inside a
// single cell; standard CSV quoting handles the rest.
func WriteCSV(w io.Writer, records []models.JournalRecord) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		labels := make([]string, 0, len(r.Emotions))
		for _, e := range r.Emotions {
			labels = append(labels, e.Korean)
		}

		row := []string{
			r.Date,
			r.Time,
			r.AuthorName,
			r.AuthorEmail,
			strings.Join(labels, ", "),
			r.Narrative,
			r.Gratitude,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Filename returns the attachment name for an export produced on the given
// day, e.g. "emotion-records-2026-03-02.csv".
func Filename(now time.Time) string {
	return fmt.Sprintf("emotion-records-%s.csv", now.Format("2006-01-02"))
}
