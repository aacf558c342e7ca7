// Package stats derives per-quadrant statistics from journal records.
//
// Every function is pure and total over any finite record slice, including
// the empty one. Counting is over emotion occurrences, not records: a record
// with two embedded emotions contributes two increments.
package stats

import (
	"time"

	"github.com/moodlog/mood-journal/models"
)

// DateLayout is the on-record calendar date format.
const DateLayout = "2006-01-02"

// QuadrantCounts sums emotion occurrences over all records whose date lies in
// [startDate, endDate], bounds inclusive. Empty bounds do not constrain.
func QuadrantCounts(records []models.JournalRecord, startDate, endDate string) models.QuadrantCounts {
	var counts models.QuadrantCounts
	for _, r := range records {
		if startDate != "" && r.Date < startDate {
			continue
		}
		if endDate != "" && r.Date > endDate {
			continue
		}
		for _, e := range r.Emotions {
			counts.Add(e.Quadrant)
		}
	}
	return counts
}

// DominantQuadrant returns the quadrant with the maximum count. Ties favor
// the canonical order red, yellow, green, blue: the first quadrant reaching
// the maximum wins. The operation is total — with all-zero counts it returns
// red, matching the historical behavior reports depend on.
func DominantQuadrant(counts models.QuadrantCounts) models.Quadrant {
	dominant := models.QuadrantRed
	max := counts.Get(models.QuadrantRed)
	for _, q := range models.Quadrants() {
		if c := counts.Get(q); c > max {
			dominant = q
			max = c
		}
	}
	return dominant
}

// DominantQuadrantForDate counts quadrant occurrences among records matching
// date and returns the dominant one under the same tie-break as
// [DominantQuadrant]. The second result is false when no matching emotion
// exists.
func DominantQuadrantForDate(records []models.JournalRecord, date string) (models.Quadrant, bool) {
	counts := QuadrantCounts(records, date, date)
	if counts.Total() == 0 {
		return "", false
	}
	return DominantQuadrant(counts), true
}

// TopEmotions groups emotion occurrences by localized label and returns the
// n most frequent, sorted descending by count. Equal counts keep
// first-encountered order, so the ranking is stable across calls. No
// emotions or a non-positive n yields nil.
func TopEmotions(records []models.JournalRecord, n int) []models.LabelCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		for _, e := range r.Emotions {
			if _, seen := counts[e.Korean]; !seen {
				order = append(order, e.Korean)
			}
			counts[e.Korean]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	top := make([]models.LabelCount, 0, len(order))
	for _, label := range order {
		top = append(top, models.LabelCount{Label: label, Count: counts[label]})
	}

	// insertion sort keeps the first-seen order of equal counts
	for i := 1; i < len(top); i++ {
		for j := i; j > 0 && top[j-1].Count < top[j].Count; j-- {
			top[j-1], top[j] = top[j], top[j-1]
		}
	}

	if len(top) > n {
		top = top[:n]
	}
	return top
}

// DailyTrend produces one entry per calendar day from referenceDate-(days-1)
// to referenceDate inclusive, oldest first. Days without records yield
// all-zero entries; the series has no gaps. A malformed reference date or a
// non-positive day count yields nil.
func DailyTrend(records []models.JournalRecord, days int, referenceDate string) []models.TrendPoint {
	if days <= 0 {
		return nil
	}

	ref, err := time.Parse(DateLayout, referenceDate)
	if err != nil {
		return nil
	}

	trend := make([]models.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := ref.AddDate(0, 0, -i).Format(DateLayout)
		trend = append(trend, models.TrendPoint{
			Date:           date,
			QuadrantCounts: QuadrantCounts(records, date, date),
		})
	}
	return trend
}

// Percentages converts counts into rounded integer shares of the total.
// A zero total yields all-zero percentages.
func Percentages(counts models.QuadrantCounts) models.QuadrantCounts {
	total := counts.Total()
	if total == 0 {
		return models.QuadrantCounts{}
	}

	share := func(c int) int {
		return int(float64(c)/float64(total)*100 + 0.5)
	}
	return models.QuadrantCounts{
		Red:    share(counts.Red),
		Yellow: share(counts.Yellow),
		Green:  share(counts.Green),
		Blue:   share(counts.Blue),
	}
}

// ReportWindow returns the inclusive [start, end] date strings of a reporting
// window of the given length ending at reference.
func ReportWindow(reference time.Time, days int) (string, string) {
	end := reference.Format(DateLayout)
	start := reference.AddDate(0, 0, -(days - 1)).Format(DateLayout)
	return start, end
}
