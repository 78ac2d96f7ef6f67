package difficulty

const (
	// MinSamples is the number of recent results needed before the
	// level may change.
	MinSamples = 5

	// StepUpAccuracy is the rolling accuracy at or above which the
	// level goes up one step.
	StepUpAccuracy = 0.85

	// StepDownAccuracy is the rolling accuracy below which the level
	// goes down one step.
	StepDownAccuracy = 0.60
)

// Adjust returns the level after evaluating the recent results window.
// It moves at most one step per call.
func Adjust(recent []bool, current Level) Level {
	if !current.Valid() {
		current = DefaultLevel
	}
	if len(recent) < MinSamples {
		return current
	}

	correct := 0
	for _, r := range recent {
		if r {
			correct++
		}
	}
	acc := float64(correct) / float64(len(recent))

	switch {
	case acc >= StepUpAccuracy:
		return current.Up()
	case acc < StepDownAccuracy:
		return current.Down()
	default:
		return current
	}
}
