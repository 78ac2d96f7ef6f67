package selector

import (
	"fmt"

	"github.com/abhisek/examprep/internal/difficulty"
	"github.com/abhisek/examprep/internal/validate"
)

// MaxCount bounds a single selection.
const MaxCount = 500

// Criteria controls which questions Select returns.
type Criteria struct {
	// Domains restricts candidates to these domains. Empty means all.
	Domains []string

	// Difficulty is the level to match. Empty or Adaptive means the
	// learner's current level.
	Difficulty difficulty.Level `validate:"omitempty,oneof=easy medium hard adaptive"`

	// Count is the number of questions wanted. Negative counts are
	// treated as zero and counts above MaxCount are clamped.
	Count int

	ExcludeRecent       bool
	PrioritizeWeakAreas bool
	IncludeReviewDue    bool
	ExamWeighted        bool
}

// DefaultCriteria enables every pass at the learner's current level.
func DefaultCriteria(count int) Criteria {
	return Criteria{
		Difficulty:          difficulty.Adaptive,
		Count:               count,
		ExcludeRecent:       true,
		PrioritizeWeakAreas: true,
		IncludeReviewDue:    true,
		ExamWeighted:        true,
	}
}

// Normalize validates c and clamps Count into [0, MaxCount].
func (c Criteria) Normalize() (Criteria, error) {
	if err := validate.Struct(c); err != nil {
		return c, fmt.Errorf("invalid criteria: %w", err)
	}
	c.Count = max(0, min(c.Count, MaxCount))
	return c, nil
}

// target resolves the difficulty a candidate must carry.
func (c Criteria) target(current difficulty.Level) difficulty.Level {
	if c.Difficulty == "" || c.Difficulty == difficulty.Adaptive {
		return current
	}
	return c.Difficulty
}
