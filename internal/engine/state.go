package engine

import (
	"maps"
	"sort"
	"time"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/performance"
	"github.com/abhisek/examprep/internal/spacedrep"
)

const (
	// RecentResultsSize bounds the rolling window that drives difficulty.
	RecentResultsSize = 10

	// LastSessionSize bounds the list of recently served question ids.
	LastSessionSize = 50

	// DefaultTargetAccuracy is the rolling accuracy a learner should hold
	// before sitting a mock exam.
	DefaultTargetAccuracy = 0.75
)

// State is the learner's complete adaptive state for one exam. It is a
// value: every operation that changes it returns a new State and leaves
// the receiver and its maps untouched.
type State struct {
	Exam                 string
	CurrentDifficulty    difficulty.Level
	TargetAccuracy       float64
	RecentResults        []bool
	DomainPerformance    map[string]performance.DomainPerformance
	QuestionHistory      map[string]spacedrep.HistoryEntry
	LastSessionQuestions []string
}

// NewState returns a fresh state with one performance record per
// blueprint domain.
func NewState(bp blueprint.Blueprint) State {
	perf := make(map[string]performance.DomainPerformance, len(bp.Entries))
	for _, d := range bp.Domains() {
		perf[d] = performance.New(d)
	}
	return State{
		Exam:                 bp.Exam,
		CurrentDifficulty:    difficulty.DefaultLevel,
		TargetAccuracy:       DefaultTargetAccuracy,
		RecentResults:        []bool{},
		DomainPerformance:    perf,
		QuestionHistory:      make(map[string]spacedrep.HistoryEntry),
		LastSessionQuestions: []string{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	c := s
	c.RecentResults = append([]bool{}, s.RecentResults...)
	c.LastSessionQuestions = append([]string{}, s.LastSessionQuestions...)
	c.DomainPerformance = maps.Clone(s.DomainPerformance)
	if c.DomainPerformance == nil {
		c.DomainPerformance = make(map[string]performance.DomainPerformance)
	}
	c.QuestionHistory = maps.Clone(s.QuestionHistory)
	if c.QuestionHistory == nil {
		c.QuestionHistory = make(map[string]spacedrep.HistoryEntry)
	}
	return c
}

// Blueprint returns the weight table for the state's exam.
func (s State) Blueprint() blueprint.Blueprint {
	return blueprint.For(s.Exam)
}

// Performance returns the record for a domain, or an empty one.
func (s State) Performance(domain string) performance.DomainPerformance {
	if p, ok := s.DomainPerformance[domain]; ok {
		return p
	}
	return performance.New(domain)
}

// History returns the history entry for a question, if it was ever answered.
func (s State) History(questionID string) (spacedrep.HistoryEntry, bool) {
	h, ok := s.QuestionHistory[questionID]
	return h, ok
}

// RollingAccuracy is the fraction of RecentResults answered correctly,
// or 0 when there are none.
func (s State) RollingAccuracy() float64 {
	if len(s.RecentResults) == 0 {
		return 0
	}
	correct := 0
	for _, r := range s.RecentResults {
		if r {
			correct++
		}
	}
	return float64(correct) / float64(len(s.RecentResults))
}

// TotalAttempts sums attempts across every tracked domain.
func (s State) TotalAttempts() int {
	total := 0
	for _, p := range s.DomainPerformance {
		total += p.Attempted
	}
	return total
}

// DueForReview returns the history entries that need review at now,
// most overdue first.
func (s State) DueForReview(now time.Time) []spacedrep.HistoryEntry {
	var due []spacedrep.HistoryEntry
	for _, h := range s.QuestionHistory {
		if h.NeedsReview(now) {
			due = append(due, h)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewDate.Equal(due[j].NextReviewDate) {
			return due[i].NextReviewDate.Before(due[j].NextReviewDate)
		}
		return due[i].QuestionID < due[j].QuestionID
	})
	return due
}

// RecentlySeen reports whether the question was served in the last
// LastSessionSize answers.
func (s State) RecentlySeen(questionID string) bool {
	for _, id := range s.LastSessionQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}

// SortedDomains returns the tracked domains, blueprint domains first in
// outline order and any others alphabetically after them.
func (s State) SortedDomains() []string {
	bp := s.Blueprint()
	out := make([]string, 0, len(s.DomainPerformance))
	for _, d := range bp.Domains() {
		if _, ok := s.DomainPerformance[d]; ok {
			out = append(out, d)
		}
	}
	var extra []string
	for d := range s.DomainPerformance {
		if !bp.Has(d) {
			extra = append(extra, d)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
