package engine

import (
	"fmt"
	"time"

	"github.com/abhisek/examprep/internal/blueprint"
)

// RecordedAnswer is an answer together with the time it was given.
type RecordedAnswer struct {
	Answer
	At time.Time
}

// Replay rebuilds state from scratch by applying answers in order. It is
// used to recover when the persisted snapshot is lost or unreadable.
func Replay(bp blueprint.Blueprint, answers []RecordedAnswer) (State, error) {
	s := NewState(bp)
	for i, ra := range answers {
		next, err := RecordResult(s, ra.Answer, ra.At)
		if err != nil {
			return s, fmt.Errorf("replay answer %d: %w", i, err)
		}
		s = next
	}
	return s, nil
}
