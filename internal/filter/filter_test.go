package filter

import (
	"testing"

	"github.com/moodlog/mood-journal/models"
	"github.com/stretchr/testify/assert"
)

func record() models.JournalRecord {
	return models.JournalRecord{
		Date:        "2024-03-05",
		Time:        "09:30",
		AuthorName:  "김철수",
		AuthorEmail: "chulsoo@school.example",
		Narrative:   "체육 시간이 즐거웠다",
		Emotions: []models.EmotionSnapshot{
			{ID: "happy", Korean: "행복한", Quadrant: models.QuadrantYellow},
			{ID: "tired", Korean: "피곤한", Quadrant: models.QuadrantBlue},
		},
	}
}

func TestEmptyCriteriaMatchesEverything(t *testing.T) {
	records := []models.JournalRecord{
		record(),
		{}, // even a zero record matches the empty criteria
	}

	for _, r := range records {
		assert.True(t, Criteria{}.Matches(r))
	}
	assert.True(t, Criteria{Quadrant: QuadrantAll}.Matches(record()))
}

func TestQuadrantCriterion(t *testing.T) {
	r := record()

	assert.True(t, Criteria{Quadrant: "yellow"}.Matches(r))
	assert.True(t, Criteria{Quadrant: "blue"}.Matches(r))
	assert.False(t, Criteria{Quadrant: "red"}.Matches(r))
	assert.False(t, Criteria{Quadrant: "green"}.Matches(r))
}

func TestDateRangeCriteria(t *testing.T) {
	r := record()

	assert.True(t, Criteria{StartDate: "2024-03-05", EndDate: "2024-03-05"}.Matches(r))
	assert.True(t, Criteria{StartDate: "2024-03-01"}.Matches(r))
	assert.False(t, Criteria{StartDate: "2024-03-06"}.Matches(r))
	assert.False(t, Criteria{EndDate: "2024-03-04"}.Matches(r))
}

func TestAuthorCriteria(t *testing.T) {
	r := record()

	assert.True(t, Criteria{NameContains: "철수"}.Matches(r))
	assert.True(t, Criteria{EmailContains: "CHULSOO"}.Matches(r))
	assert.False(t, Criteria{NameContains: "영희"}.Matches(r))

	// absent author fields never match a non-empty filter
	anonymous := record()
	anonymous.AuthorName = ""
	anonymous.AuthorEmail = ""
	assert.False(t, Criteria{NameContains: "김"}.Matches(anonymous))
	assert.False(t, Criteria{EmailContains: "school"}.Matches(anonymous))
}

func TestCriteriaAreANDed(t *testing.T) {
	r := record()

	assert.True(t, Criteria{Quadrant: "yellow", StartDate: "2024-03-01", NameContains: "김"}.Matches(r))
	assert.False(t, Criteria{Quadrant: "yellow", StartDate: "2024-03-06"}.Matches(r))
}

func TestNarrowingIsMonotonic(t *testing.T) {
	records := []models.JournalRecord{record(), record(), {Date: "2024-02-01"}}

	base := Apply(records, Criteria{})
	narrowed := Apply(records, Criteria{Quadrant: "yellow"})

	assert.LessOrEqual(t, len(narrowed), len(base))
	for _, r := range narrowed {
		assert.True(t, Criteria{}.Matches(r))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	a, b := record(), record()
	a.Time = "08:00"
	b.Time = "10:00"

	got := Apply([]models.JournalRecord{a, b}, Criteria{Quadrant: "yellow"})
	assert.Equal(t, []models.JournalRecord{a, b}, got)
}
