package performance

import (
	"sort"

	"github.com/abhisek/examprep/internal/blueprint"
)

// WeakScore ranks how urgently a domain needs practice: the accuracy gap
// plus twice the domain's exam weight.
func WeakScore(p DomainPerformance, examWeight int) int {
	return (100 - p.Accuracy()) + examWeight*2
}

// RankWeak returns the domains flagged NeedsWork ordered by descending
// WeakScore. Ties go to the domain with fewer attempts, then by name.
func RankWeak(perf map[string]DomainPerformance, bp blueprint.Blueprint) []DomainPerformance {
	type scored struct {
		p     DomainPerformance
		score int
	}

	var weak []scored
	for _, p := range perf {
		if !p.NeedsWork() {
			continue
		}
		weak = append(weak, scored{p: p, score: WeakScore(p, bp.Weight(p.Domain))})
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].score != weak[j].score {
			return weak[i].score > weak[j].score
		}
		if weak[i].p.Attempted != weak[j].p.Attempted {
			return weak[i].p.Attempted < weak[j].p.Attempted
		}
		return weak[i].p.Domain < weak[j].p.Domain
	})

	out := make([]DomainPerformance, len(weak))
	for i, w := range weak {
		out[i] = w.p
	}
	return out
}
