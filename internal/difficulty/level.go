package difficulty

import "fmt"

// Level is a question difficulty tag.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"

	// Adaptive is only meaningful in selection criteria: it means "use
	// the learner's current level". Questions are never tagged adaptive.
	Adaptive Level = "adaptive"
)

// DefaultLevel is the starting level for a new learner.
const DefaultLevel = Medium

// AllLevels lists the concrete levels from easiest to hardest.
var AllLevels = []Level{Easy, Medium, Hard}

// Valid reports whether l is a concrete level a question can carry.
func (l Level) Valid() bool {
	switch l {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Up returns the next harder level. Hard stays hard.
func (l Level) Up() Level {
	switch l {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return l
}

// Down returns the next easier level. Easy stays easy.
func (l Level) Down() Level {
	switch l {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return l
}

// Parse converts a string to a Level. Adaptive is accepted.
func Parse(s string) (Level, error) {
	l := Level(s)
	if l.Valid() || l == Adaptive {
		return l, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}
