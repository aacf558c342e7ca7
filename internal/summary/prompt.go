package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moodlog/mood-journal/models"
)

const (
	maxDigestRecords  = 5
	maxNarrativeRunes = 100
	maxGratitudeRunes = 50

	digestPlaceholder = "없음"
)

// Digest is one journal record condensed for inclusion in a prompt. Field
// names follow the JSON the model is asked to read.
type Digest struct {
	Date      string `json:"date"`
	Emotions  string `json:"emotions"`
	Event     string `json:"event"`
	Gratitude string `json:"gratitude"`
}

// BuildDigests condenses the most recent records (at most five) into prompt
// digests. Narratives are truncated to 100 runes and gratitude notes to 50 so
// a handful of long entries cannot crowd out the rest of the prompt.
func BuildDigests(records []models.JournalRecord) []Digest {
	n := len(records)
	if n > maxDigestRecords {
		n = maxDigestRecords
	}

	digests := make([]Digest, 0, n)
	for _, r := range records[:n] {
		labels := make([]string, 0, len(r.Emotions))
		for _, e := range r.Emotions {
			labels = append(labels, e.Korean)
		}

		d := Digest{
			Date:      r.Date,
			Emotions:  strings.Join(labels, ", "),
			Event:     truncateRunes(r.Narrative, maxNarrativeRunes),
			Gratitude: truncateRunes(r.Gratitude, maxGratitudeRunes),
		}
		if d.Emotions == "" {
			d.Emotions = digestPlaceholder
		}
		if d.Event == "" {
			d.Event = digestPlaceholder
		}
		if d.Gratitude == "" {
			d.Gratitude = digestPlaceholder
		}
		digests = append(digests, d)
	}
	return digests
}

// BuildStudentPrompt renders the personal feedback prompt for one author's
// records.
func BuildStudentPrompt(counts models.QuadrantCounts, digests []Digest) string {
	return fmt.Sprintf(`
당신은 따뜻하고 공감 능력이 뛰어난 AI 감정 상담사입니다.
한 학생의 최근 감정 기록을 분석하고, 진심어린 피드백을 제공해주세요.

## 학생의 최근 감정 기록:
%s

## 전체 감정 통계:
- 고에너지-불쾌 (빨강): %d회
- 고에너지-유쾌 (노랑): %d회
- 저에너지-유쾌 (초록): %d회
- 저에너지-불쾌 (파랑): %d회

## 응답 가이드라인:
1. 한국어로 따뜻하게 응답해주세요
2. 학생의 감정 패턴을 간단히 분석해주세요
3. 긍정적인 점을 먼저 언급해주세요
4. 힘들어하는 부분이 있다면 공감해주세요
5. 구체적이고 실천 가능한 조언 1-2개를 제안해주세요
6. 격려와 응원의 메시지로 마무리해주세요
7. 이모지를 적절히 사용해주세요
8. 전체 길이는 300자 내외로 작성해주세요

응답:`,
		marshalDigests(digests),
		counts.Red, counts.Yellow, counts.Green, counts.Blue)
}

// BuildTeacherPrompt renders the class analysis prompt over every author's
// records.
func BuildTeacherPrompt(counts models.QuadrantCounts, recordCount int, digests []Digest) string {
	return fmt.Sprintf(`
당신은 따뜻하고 공감 능력이 뛰어난 AI 학교 상담사입니다.
학생들의 전체 감정 기록을 분석하고, 교사에게 인사이트를 제공해주세요.

## 전체 학생 감정 통계:
- 고에너지-불쾌 (빨강): %d회
- 고에너지-유쾌 (노랑): %d회
- 저에너지-유쾌 (초록): %d회
- 저에너지-불쾌 (파랑): %d회
- 총 기록 수: %d개

## 최근 기록 샘플:
%s

## 응답 가이드라인:
1. 한국어로 전문적이지만 따뜻하게 응답해주세요
2. 전체 학생들의 감정 패턴을 분석해주세요
3. 주의가 필요한 패턴이 있다면 알려주세요
4. 교사가 학급 분위기 개선을 위해 할 수 있는 구체적인 조언 1-2개
5. 긍정적인 마무리
6. 이모지를 적절히 사용해주세요
7. 전체 길이는 400자 내외로 작성해주세요

교사를 위한 피드백:`,
		counts.Red, counts.Yellow, counts.Green, counts.Blue,
		recordCount,
		marshalDigests(digests))
}

func marshalDigests(digests []Digest) string {
	data, err := json.MarshalIndent(digests, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
