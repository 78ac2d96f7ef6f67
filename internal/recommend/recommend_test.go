package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/examprep/internal/blueprint"
	"github.com/abhisek/examprep/internal/engine"
	"github.com/abhisek/examprep/internal/spacedrep"
)

var now = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

// practiced returns a CFP state where every domain has attempted
// questions, all correct, with overrides applied as {correct, attempted}.
func practiced(attempted int, overrides map[string][2]int) engine.State {
	s := engine.NewState(blueprint.For("CFP"))
	for d, p := range s.DomainPerformance {
		p.Attempted, p.Correct = attempted, attempted
		if o, ok := overrides[d]; ok {
			p.Correct, p.Attempted = o[0], o[1]
		}
		s.DomainPerformance[d] = p
	}
	return s
}

func withDueReviews(s engine.State, n int) engine.State {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("q%d", i)
		s.QuestionHistory[id] = spacedrep.Update(nil, id, "TAX", false, now.AddDate(0, 0, -2))
	}
	return s
}

func recent(correct, wrong int) []bool {
	var out []bool
	for i := 0; i < correct; i++ {
		out = append(out, true)
	}
	for i := 0; i < wrong; i++ {
		out = append(out, false)
	}
	return out
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name   string
		state  engine.State
		action Action
		domain string
		prio   Priority
	}{
		{
			name:   "fresh learner starts with the heaviest domain",
			state:  engine.NewState(blueprint.For("CFP")),
			action: ActionNewContent,
			domain: "GEN",
			prio:   PriorityMedium,
		},
		{
			name:   "review backlog wins",
			state:  withDueReviews(practiced(25, map[string][2]int{"TAX": {3, 10}}), ReviewBacklog+1),
			action: ActionReview,
			prio:   PriorityHigh,
		},
		{
			name:   "backlog at threshold does not trigger review",
			state:  withDueReviews(practiced(25, nil), ReviewBacklog),
			action: ActionMaintain,
			prio:   PriorityLow,
		},
		{
			name:   "weak domain needs enough attempts",
			state:  practiced(25, map[string][2]int{"TAX": {3, 10}, "EST": {0, 9}}),
			action: ActionWeakAreas,
			domain: "TAX",
			prio:   PriorityHigh,
		},
		{
			name:   "worst weak domain by score",
			state:  practiced(25, map[string][2]int{"TAX": {6, 10}, "PSY": {2, 10}}),
			action: ActionWeakAreas,
			domain: "PSY",
			prio:   PriorityHigh,
		},
		{
			name:   "least attempted domain",
			state:  practiced(25, map[string][2]int{"RET": {12, 12}, "PSY": {5, 5}}),
			action: ActionNewContent,
			domain: "PSY",
			prio:   PriorityMedium,
		},
		{
			name: "mock exam when experienced and accurate",
			state: func() engine.State {
				s := practiced(40, nil)
				s.RecentResults = recent(8, 2)
				return s
			}(),
			action: ActionMockExam,
			prio:   PriorityMedium,
		},
		{
			name: "no mock exam below target accuracy",
			state: func() engine.State {
				s := practiced(40, nil)
				s.RecentResults = recent(7, 3)
				return s
			}(),
			action: ActionMaintain,
			prio:   PriorityLow,
		},
		{
			name: "no mock exam at exactly the attempt threshold",
			state: func() engine.State {
				s := practiced(40, map[string][2]int{"PSY": {20, 20}})
				s.RecentResults = recent(10, 0)
				return s
			}(),
			action: ActionMaintain,
			prio:   PriorityLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(tt.state, now)
			assert.Equal(t, tt.action, got.Action)
			assert.Equal(t, tt.domain, got.Domain)
			assert.Equal(t, tt.prio, got.Priority)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestRecommend_DoesNotModifyState(t *testing.T) {
	s := withDueReviews(practiced(25, nil), 3)
	before := s.Clone()
	_ = Recommend(s, now)
	assert.Equal(t, before, s)
}
