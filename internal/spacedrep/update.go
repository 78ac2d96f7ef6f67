package spacedrep

import (
	"math"
	"time"
)

// Update returns the history entry that results from answering a question.
// prev is nil on the first attempt. prev is never modified.
//
// domain overrides the entry's domain when non-empty, so a question that
// moves between domains is attributed to where it lives now.
func Update(prev *HistoryEntry, questionID, domain string, correct bool, now time.Time) HistoryEntry {
	var next HistoryEntry
	if prev != nil {
		next = *prev
	} else {
		next = HistoryEntry{QuestionID: questionID}
	}
	if domain != "" {
		next.Domain = domain
	}

	next.Attempts++
	if correct {
		next.CorrectCount++
	}
	next.LastAttempted = now
	next.LastResult = correct

	switch {
	case prev == nil && correct:
		next.Interval = FirstInterval
		next.EaseFactor = InitialEaseFactor
	case prev == nil:
		next.Interval = LapseInterval
		next.EaseFactor = MinEaseFactor
	case !correct:
		next.Interval = LapseInterval
		next.EaseFactor = clampEase(prev.EaseFactor - EasePenalty)
	case next.Attempts == 2:
		next.Interval = SecondInterval
	default:
		// Rounding a lapse interval (0.1 days) would otherwise pin the
		// question at zero forever.
		next.Interval = math.Max(FirstInterval, math.Round(prev.Interval*prev.EaseFactor))
		next.Interval = math.Min(next.Interval, MaxInterval)
		next.EaseFactor = clampEase(prev.EaseFactor + EaseBonus)
	}

	next.NextReviewDate = now.AddDate(0, 0, int(math.Ceil(next.Interval)))
	return next
}

// clampEase rounds to two decimals to keep repeated ±0.1/0.2 steps from
// drifting, then bounds the result.
func clampEase(ef float64) float64 {
	ef = math.Round(ef*100) / 100
	if ef < MinEaseFactor {
		return MinEaseFactor
	}
	if ef > MaxEaseFactor {
		return MaxEaseFactor
	}
	return ef
}
