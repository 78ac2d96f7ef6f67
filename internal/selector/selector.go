package selector

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/engine"
	"github.com/abhisek/examprep/internal/performance"
	"github.com/abhisek/examprep/internal/pool"
)

// Reason records which pass picked a question.
type Reason string

const (
	ReasonReviewDue  Reason = "review-due"
	ReasonWeakDomain Reason = "weak-domain"
	ReasonBalanced   Reason = "balanced"
	ReasonNew        Reason = "new"
)

// Priority returns the sort rank of a reason. Lower comes first.
func (r Reason) Priority() int {
	switch r {
	case ReasonReviewDue:
		return 1
	case ReasonWeakDomain:
		return 2
	case ReasonBalanced:
		return 3
	default:
		return 4
	}
}

const (
	// ReviewShare caps the review-due pass at this fraction of Count,
	// rounded up.
	ReviewShare = 0.3

	// PerWeakDomain is the most questions the weak-domain pass draws
	// from any one domain.
	PerWeakDomain = 2
)

// Selected is a pool question annotated with why it was chosen.
type Selected struct {
	pool.Question
	Reason   Reason `json:"selection_reason"`
	Priority int    `json:"priority"`
}

// Selector picks practice batches. Its random source only breaks ties,
// so a seeded Selector is fully reproducible.
type Selector struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) { s.rng = r }
}

// WithSeed seeds the random source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithLogger sets the logger that receives shortfall warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Selector) { s.logger = l }
}

// New creates a Selector.
func New(opts ...Option) *Selector {
	s := &Selector{}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// batch accumulates picks and remembers which ids are taken.
type batch struct {
	count  int
	out    []Selected
	chosen map[string]bool
}

func (b *batch) full() bool { return len(b.out) >= b.count }

func (b *batch) add(q pool.Question, r Reason) {
	b.out = append(b.out, Selected{Question: q, Reason: r, Priority: r.Priority()})
	b.chosen[q.ID] = true
}

// Select returns up to c.Count questions from questions for the learner
// in state. questions is not modified. The result is ordered by
// priority: review-due, weak-domain, balanced, then new.
//
// A pool without enough candidates at the target difficulty yields a
// short result, which is logged but is not an error.
func (s *Selector) Select(questions []pool.Question, state engine.State, c Criteria, now time.Time) ([]Selected, error) {
	c, err := c.Normalize()
	if err != nil {
		return nil, err
	}
	if c.Count == 0 {
		return []Selected{}, nil
	}

	target := c.target(state.CurrentDifficulty)
	candidates := filterCandidates(questions, state, c)
	b := &batch{count: c.Count, chosen: make(map[string]bool)}

	if c.IncludeReviewDue {
		s.reviewDue(b, candidates, state, now)
	}
	if c.PrioritizeWeakAreas {
		s.weakDomains(b, candidates, state, target)
	}
	if c.ExamWeighted {
		s.balanced(b, candidates, state, target)
	}
	s.fill(b, candidates, target)

	sort.SliceStable(b.out, func(i, j int) bool {
		return b.out[i].Priority < b.out[j].Priority
	})

	if len(b.out) < c.Count {
		s.logger.Warn("selection short of requested count",
			"requested", c.Count,
			"selected", len(b.out),
			"difficulty", target,
			"candidates", len(candidates))
	}
	return b.out, nil
}

func filterCandidates(questions []pool.Question, state engine.State, c Criteria) []pool.Question {
	var domains map[string]bool
	if len(c.Domains) > 0 {
		domains = make(map[string]bool, len(c.Domains))
		for _, d := range c.Domains {
			domains[d] = true
		}
	}

	seen := make(map[string]bool, len(questions))
	var out []pool.Question
	for _, q := range questions {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		if domains != nil && !domains[q.Domain] {
			continue
		}
		if c.ExcludeRecent && state.RecentlySeen(q.ID) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// reviewDue picks questions last answered wrong whose review date has
// arrived, most overdue first. Difficulty is not considered.
func (s *Selector) reviewDue(b *batch, candidates []pool.Question, state engine.State, now time.Time) {
	type due struct {
		q    pool.Question
		next time.Time
	}
	var list []due
	for _, q := range candidates {
		if h, ok := state.History(q.ID); ok && h.NeedsReview(now) {
			list = append(list, due{q: q, next: h.NextReviewDate})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].next.Before(list[j].next)
	})

	limit := int(math.Ceil(ReviewShare * float64(b.count)))
	for i := 0; i < len(list) && i < limit && !b.full(); i++ {
		b.add(list[i].q, ReasonReviewDue)
	}
}

// weakDomains draws up to PerWeakDomain questions from each domain that
// needs work, worst first, preferring questions never attempted.
func (s *Selector) weakDomains(b *batch, candidates []pool.Question, state engine.State, target difficulty.Level) {
	for _, p := range performance.RankWeak(state.DomainPerformance, state.Blueprint()) {
		if b.full() {
			return
		}

		var fresh, seen []pool.Question
		for _, q := range s.matching(b, candidates, target, p.Domain) {
			if _, ok := state.History(q.ID); ok {
				seen = append(seen, q)
			} else {
				fresh = append(fresh, q)
			}
		}

		picks := append(fresh, seen...)
		for i := 0; i < len(picks) && i < PerWeakDomain && !b.full(); i++ {
			b.add(picks[i], ReasonWeakDomain)
		}
	}
}

// balanced spreads the remaining slots over blueprint domains in
// proportion to their exam weight.
func (s *Selector) balanced(b *batch, candidates []pool.Question, state engine.State, target difficulty.Level) {
	if b.full() {
		return
	}

	byDomain := make(map[string][]pool.Question)
	avail := make(map[string]int)
	var usable []blueprint.Entry
	for _, e := range state.Blueprint().ByWeight() {
		qs := s.matching(b, candidates, target, e.Domain)
		if len(qs) == 0 {
			continue
		}
		byDomain[e.Domain] = qs
		avail[e.Domain] = len(qs)
		usable = append(usable, e)
	}

	alloc := allocate(usable, avail, b.count-len(b.out))
	for _, e := range usable {
		for _, q := range byDomain[e.Domain][:alloc[e.Domain]] {
			b.add(q, ReasonBalanced)
		}
	}
}

// fill tops the batch up with any remaining matching questions.
func (s *Selector) fill(b *batch, candidates []pool.Question, target difficulty.Level) {
	for _, q := range s.matching(b, candidates, target, "") {
		if b.full() {
			return
		}
		b.add(q, ReasonNew)
	}
}

// matching returns the unchosen candidates at the target difficulty,
// restricted to domain when it is non-empty, in random order.
func (s *Selector) matching(b *batch, candidates []pool.Question, target difficulty.Level, domain string) []pool.Question {
	var out []pool.Question
	for _, q := range candidates {
		if b.chosen[q.ID] || q.Difficulty != target {
			continue
		}
		if domain != "" && q.Domain != domain {
			continue
		}
		out = append(out, q)
	}
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
