// Package filter implements predicate composition over journal records.
//
// A Criteria value describes the active constraints; Matches evaluates them
// against one record. The predicate knows nothing about the caller's role —
// whether an author filter is meaningful in the current scope is the
// caller's concern.
package filter

import (
	"strings"

	"github.com/moodlog/mood-journal/models"
)

// QuadrantAll disables the quadrant constraint.
const QuadrantAll = "all"

// Criteria is a set of record constraints. All active criteria are ANDed;
// a zero-valued field imposes no constraint.
type Criteria struct {
	// Quadrant keeps only records with at least one embedded emotion of the
	// given quadrant. Empty or [QuadrantAll] matches every record.
	Quadrant string

	// StartDate / EndDate bound the record's calendar date, inclusive.
	// Lexicographic comparison is correct for the fixed-width YYYY-MM-DD
	// format.
	StartDate string
	EndDate   string

	// NameContains / EmailContains are case-insensitive substring matches
	// against the denormalized author fields. A record whose field is absent
	// never matches a non-empty filter.
	NameContains  string
	EmailContains string
}

// Matches reports whether r satisfies every active criterion.
func (c Criteria) Matches(r models.JournalRecord) bool {
	if c.Quadrant != "" && c.Quadrant != QuadrantAll {
		found := false
		for _, e := range r.Emotions {
			if string(e.Quadrant) == c.Quadrant {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if c.StartDate != "" && r.Date < c.StartDate {
		return false
	}
	if c.EndDate != "" && r.Date > c.EndDate {
		return false
	}

	if c.NameContains != "" && !containsFold(r.AuthorName, c.NameContains) {
		return false
	}
	if c.EmailContains != "" && !containsFold(r.AuthorEmail, c.EmailContains) {
		return false
	}

	return true
}

// Apply returns the records matching c, preserving input order.
func Apply(records []models.JournalRecord, c Criteria) []models.JournalRecord {
	matched := make([]models.JournalRecord, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func containsFold(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
