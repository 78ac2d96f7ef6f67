package performance

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/examprep/internal/spacedrep"
)

const (
	// RecentWindow is the number of most recently attempted questions
	// that feed RecentAccuracy.
	RecentWindow = 10

	// NeedsWorkThreshold is the accuracy percentage below which a domain
	// is flagged for extra practice.
	NeedsWorkThreshold = 70
)

// DomainPerformance tracks a learner's results within one content domain.
// Accuracy is derived from exact counters on read.
type DomainPerformance struct {
	Domain         string    `json:"domain"`
	Attempted      int       `json:"attempted"`
	Correct        int       `json:"correct"`
	RecentAccuracy int       `json:"recent_accuracy"`
	LastPracticed  time.Time `json:"last_practiced"`
}

// New returns an empty record for a domain.
func New(domain string) DomainPerformance {
	return DomainPerformance{Domain: domain}
}

// Accuracy returns the running accuracy as a whole percentage (0-100).
func (p DomainPerformance) Accuracy() int {
	if p.Attempted == 0 {
		return 0
	}
	return percent(p.Correct, p.Attempted)
}

// NeedsWork reports whether the domain has been practiced and its running
// accuracy is under NeedsWorkThreshold.
func (p DomainPerformance) NeedsWork() bool {
	return p.Attempted > 0 && p.Accuracy() < NeedsWorkThreshold
}

// Record returns the performance after one more answer in this domain.
// history must already include the answer being recorded.
func Record(prev DomainPerformance, correct bool, history map[string]spacedrep.HistoryEntry, now time.Time) DomainPerformance {
	next := prev
	next.Attempted++
	if correct {
		next.Correct++
	}
	next.RecentAccuracy = RecentAccuracy(prev.Domain, history)
	next.LastPracticed = now
	return next
}

// RecentAccuracy computes the percentage of the domain's RecentWindow most
// recently attempted questions whose last answer was correct.
func RecentAccuracy(domain string, history map[string]spacedrep.HistoryEntry) int {
	var entries []spacedrep.HistoryEntry
	for _, h := range history {
		if h.Domain == domain {
			entries = append(entries, h)
		}
	}
	if len(entries) == 0 {
		return 0
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].LastAttempted.Equal(entries[j].LastAttempted) {
			return entries[i].LastAttempted.After(entries[j].LastAttempted)
		}
		return entries[i].QuestionID < entries[j].QuestionID
	})
	if len(entries) > RecentWindow {
		entries = entries[:RecentWindow]
	}

	correct := 0
	for _, h := range entries {
		if h.LastResult {
			correct++
		}
	}
	return percent(correct, len(entries))
}

func percent(n, d int) int {
	return int(math.Round(float64(n) / float64(d) * 100))
}
