package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodlog/mood-journal/models"
)

func sampleRecords() []models.JournalRecord {
	return []models.JournalRecord{
		{
			Date:      "2026-03-06",
			Narrative: "발표를 잘 마쳐서 뿌듯했다",
			Gratitude: "응원해준 친구",
			Emotions: []models.EmotionSnapshot{
				{ID: "proud", Korean: "자랑스러운", Quadrant: models.QuadrantYellow},
				{ID: "calm", Korean: "평온한", Quadrant: models.QuadrantGreen},
			},
		},
		{
			Date:      "2026-03-05",
			Narrative: "숙제가 많아서 피곤했다",
			Emotions: []models.EmotionSnapshot{
				{ID: "tired", Korean: "피곤한", Quadrant: models.QuadrantBlue},
			},
		},
	}
}

func TestBuildDigests(t *testing.T) {
	digests := BuildDigests(sampleRecords())
	require.Len(t, digests, 2)

	assert.Equal(t, "2026-03-06", digests[0].Date)
	assert.Equal(t, "자랑스러운, 평온한", digests[0].Emotions)
	assert.Equal(t, "발표를 잘 마쳐서 뿌듯했다", digests[0].Event)
	assert.Equal(t, "응원해준 친구", digests[0].Gratitude)

	// Absent fields render as the placeholder, not as empty strings.
	assert.Equal(t, "없음", digests[1].Gratitude)
}

func TestBuildDigests_CapsAtFive(t *testing.T) {
	records := make([]models.JournalRecord, 8)
	for i := range records {
		records[i] = models.JournalRecord{Date: "2026-03-01", Narrative: "기록"}
	}

	assert.Len(t, BuildDigests(records), 5)
}

func TestBuildDigests_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("가", 150)
	records := []models.JournalRecord{{
		Date:      "2026-03-01",
		Narrative: long,
		Gratitude: long,
	}}

	digests := BuildDigests(records)
	require.Len(t, digests, 1)

	// Rune-based truncation: multi-byte Hangul must not be cut mid-character.
	assert.Equal(t, 100, len([]rune(digests[0].Event)))
	assert.Equal(t, 50, len([]rune(digests[0].Gratitude)))
}

func TestBuildStudentPrompt(t *testing.T) {
	counts := models.QuadrantCounts{Red: 1, Yellow: 3, Green: 2, Blue: 0}
	prompt := BuildStudentPrompt(counts, BuildDigests(sampleRecords()))

	assert.Contains(t, prompt, "AI 감정 상담사")
	assert.Contains(t, prompt, "고에너지-불쾌 (빨강): 1회")
	assert.Contains(t, prompt, "고에너지-유쾌 (노랑): 3회")
	assert.Contains(t, prompt, "저에너지-유쾌 (초록): 2회")
	assert.Contains(t, prompt, "저에너지-불쾌 (파랑): 0회")
	assert.Contains(t, prompt, "자랑스러운, 평온한")
	assert.Contains(t, prompt, "300자 내외")
	assert.NotContains(t, prompt, "총 기록 수")
}

func TestBuildTeacherPrompt(t *testing.T) {
	counts := models.QuadrantCounts{Red: 4, Yellow: 9, Green: 5, Blue: 2}
	prompt := BuildTeacherPrompt(counts, 20, BuildDigests(sampleRecords()))

	assert.Contains(t, prompt, "AI 학교 상담사")
	assert.Contains(t, prompt, "총 기록 수: 20개")
	assert.Contains(t, prompt, "교사를 위한 피드백")
	assert.Contains(t, prompt, "400자 내외")
}
