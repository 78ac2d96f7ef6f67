package engine

import (
	"fmt"
	"time"

	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/performance"
	"github.com/abhisek/examprep/internal/spacedrep"
	"github.com/abhisek/examprep/internal/validate"
)

// Answer is one graded response supplied by the caller.
type Answer struct {
	QuestionID string `json:"question_id" validate:"required"`
	Domain     string `json:"domain" validate:"required"`
	Correct    bool   `json:"correct"`
}

// RecordResult applies an answer to s and returns the resulting state.
// s is not modified.
func RecordResult(s State, a Answer, now time.Time) (State, error) {
	if err := validate.Struct(a); err != nil {
		return s, fmt.Errorf("record result: %w", err)
	}

	next := s.Clone()

	var prev *spacedrep.HistoryEntry
	if h, ok := s.QuestionHistory[a.QuestionID]; ok {
		prev = &h
	}
	next.QuestionHistory[a.QuestionID] = spacedrep.Update(prev, a.QuestionID, a.Domain, a.Correct, now)

	perf, ok := next.DomainPerformance[a.Domain]
	if !ok {
		perf = performance.New(a.Domain)
	}
	next.DomainPerformance[a.Domain] = performance.Record(perf, a.Correct, next.QuestionHistory, now)

	next.RecentResults = appendBounded(s.RecentResults, a.Correct, RecentResultsSize)
	next.LastSessionQuestions = appendBounded(without(s.LastSessionQuestions, a.QuestionID), a.QuestionID, LastSessionSize)
	next.CurrentDifficulty = difficulty.Adjust(next.RecentResults, s.CurrentDifficulty)

	return next, nil
}

// appendBounded returns a new slice holding the last limit elements of
// s followed by v.
func appendBounded[T any](s []T, v T, limit int) []T {
	start := len(s) + 1 - limit
	if start < 0 {
		start = 0
	}
	out := make([]T, 0, len(s)-start+1)
	out = append(out, s[start:]...)
	return append(out, v)
}

// without returns a copy of ids with every occurrence of id removed.
func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
