package recommend

import (
	"fmt"
	"time"

	"github.com/abhisek/examprep/internal/engine"
	"github.com/abhisek/examprep/internal/performance"
)

// Action is the kind of study session being suggested.
type Action string

const (
	ActionReview     Action = "review"
	ActionWeakAreas  Action = "weak-areas"
	ActionNewContent Action = "new-content"
	ActionMockExam   Action = "mock-exam"
	ActionMaintain   Action = "maintain"
)

// Priority is how urgently the suggestion should be acted on.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rule thresholds.
const (
	// ReviewBacklog is the number of due reviews above which reviewing
	// takes over.
	ReviewBacklog = 10

	// MinWeakAttempts is how many attempts a weak domain needs before it
	// is trusted as weak.
	MinWeakAttempts = 10

	// NewContentAttempts is the attempt count under which a domain is
	// still considered new.
	NewContentAttempts = 20

	// MockExamAttempts is the total attempt count above which a mock
	// exam is suggested.
	MockExamAttempts = 300
)

// Recommendation is a single "what to do next" suggestion.
type Recommendation struct {
	Action   Action   `json:"action"`
	Domain   string   `json:"domain,omitempty"`
	Reason   string   `json:"reason"`
	Priority Priority `json:"priority"`
}

// Recommend derives the next suggestion from state. The first matching
// rule wins.
func Recommend(state engine.State, now time.Time) Recommendation {
	bp := state.Blueprint()

	if due := len(state.DueForReview(now)); due > ReviewBacklog {
		return Recommendation{
			Action:   ActionReview,
			Reason:   fmt.Sprintf("%d questions are due for review", due),
			Priority: PriorityHigh,
		}
	}

	for _, p := range performance.RankWeak(state.DomainPerformance, bp) {
		if p.Attempted < MinWeakAttempts {
			continue
		}
		return Recommendation{
			Action:   ActionWeakAreas,
			Domain:   p.Domain,
			Reason:   fmt.Sprintf("%s accuracy is %d%%", bp.DisplayName(p.Domain), p.Accuracy()),
			Priority: PriorityHigh,
		}
	}

	if p, ok := leastAttempted(state); ok {
		return Recommendation{
			Action:   ActionNewContent,
			Domain:   p.Domain,
			Reason:   fmt.Sprintf("only %d questions attempted in %s", p.Attempted, bp.DisplayName(p.Domain)),
			Priority: PriorityMedium,
		}
	}

	if total := state.TotalAttempts(); total > MockExamAttempts && state.RollingAccuracy() >= state.TargetAccuracy {
		return Recommendation{
			Action:   ActionMockExam,
			Reason:   fmt.Sprintf("%d questions attempted at %.0f%% recent accuracy", total, state.RollingAccuracy()*100),
			Priority: PriorityMedium,
		}
	}

	return Recommendation{
		Action:   ActionMaintain,
		Reason:   "keep up regular practice",
		Priority: PriorityLow,
	}
}

// leastAttempted returns the domain with the fewest attempts among those
// under NewContentAttempts. Ties go to the heavier exam weight, then to
// the domain name.
func leastAttempted(state engine.State) (performance.DomainPerformance, bool) {
	bp := state.Blueprint()
	var (
		best  performance.DomainPerformance
		found bool
	)
	for _, d := range state.SortedDomains() {
		p := state.DomainPerformance[d]
		if p.Attempted >= NewContentAttempts {
			continue
		}
		if !found || less(p, best, bp.Weight(p.Domain), bp.Weight(best.Domain)) {
			best, found = p, true
		}
	}
	return best, found
}

func less(a, b performance.DomainPerformance, wa, wb int) bool {
	if a.Attempted != b.Attempted {
		return a.Attempted < b.Attempted
	}
	if wa != wb {
		return wa > wb
	}
	return a.Domain < b.Domain
}
