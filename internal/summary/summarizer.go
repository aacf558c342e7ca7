// SPDX-License-Identifier: Apache-2.0

// Package summary turns a window of journal records into a short counselor
// style narrative using the Gemini API. Prompts and replacement texts are
// bilingual by design: prompts instruct the model in Korean because that is
// the language the journal is written in.
package summary

import (
	"context"
	"errors"

	"github.com/moodlog/mood-journal/models"
)

//go:generate mockgen -source=summarizer.go -destination=../mock/summary_mock.go -package=mock

// ModelName is the Gemini model used for narrative feedback.
const ModelName = "gemini-2.0-flash-exp"

// Canned response texts returned instead of a generated narrative. These are
// part of the product surface, not error strings: clients render them as the
// feedback body.
const (
	// NoRecordsText is returned when the requested window holds no records.
	NoRecordsText = "아직 감정 기록이 없어요. 먼저 감정을 기록해보세요! 😊"

	// FailureText replaces the narrative when generation fails after a
	// credential was accepted.
	FailureText = "AI 피드백을 생성하는 중 오류가 발생했어요. API 키를 확인해주세요."
)

// ErrNoCredential is returned when neither the request nor the server
// configuration provides a Gemini API key.
var ErrNoCredential = errors.New("no summarizer credential provided")

// Request carries everything the summarizer needs to build a prompt.
type Request struct {
	// APIKey optionally overrides the server-configured credential for this
	// request only.
	APIKey string

	// Elevated selects the teacher-facing class analysis prompt instead of
	// the student-facing personal feedback prompt.
	Elevated bool

	// Counts is the quadrant distribution over the analyzed window.
	Counts models.QuadrantCounts

	// Records are the analyzed journal records, newest first. Only the most
	// recent few are quoted in the prompt; the full count feeds the
	// statistics section.
	Records []models.JournalRecord
}

// Summarizer produces a short narrative summary of journal records.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) (string, error)
}
