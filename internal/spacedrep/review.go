package spacedrep

import (
	"math"
	"time"
)

// HistoryEntry holds the spaced repetition state for a single question.
type HistoryEntry struct {
	QuestionID     string    `json:"question_id"`
	Domain         string    `json:"domain"`
	Attempts       int       `json:"attempts"`
	CorrectCount   int       `json:"correct_count"`
	LastAttempted  time.Time `json:"last_attempted"`
	LastResult     bool      `json:"last_result"`
	EaseFactor     float64   `json:"ease_factor"`
	Interval       float64   `json:"interval"`
	NextReviewDate time.Time `json:"next_review_date"`
}

// IsDue returns true if the question is at or past its review date.
func (h HistoryEntry) IsDue(now time.Time) bool {
	return !now.Before(h.NextReviewDate)
}

// NeedsReview returns true if the question was last answered wrong and
// its review date has arrived.
func (h HistoryEntry) NeedsReview(now time.Time) bool {
	return !h.LastResult && h.IsDue(now)
}

// OverdueDays returns how many days past due the question is. Returns 0 if not yet due.
func (h HistoryEntry) OverdueDays(now time.Time) float64 {
	if now.Before(h.NextReviewDate) {
		return 0
	}
	return now.Sub(h.NextReviewDate).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (h HistoryEntry) DaysUntilReview(now time.Time) int {
	if h.IsDue(now) {
		return 0
	}
	return int(math.Ceil(h.NextReviewDate.Sub(now).Hours() / 24.0))
}

// Accuracy returns the fraction of attempts answered correctly.
func (h HistoryEntry) Accuracy() float64 {
	if h.Attempts == 0 {
		return 0
	}
	return float64(h.CorrectCount) / float64(h.Attempts)
}

// ReviewStatus describes a question's review status for display.
type ReviewStatus string

const (
	ReviewNotDue   ReviewStatus = "not_due"
	ReviewDue      ReviewStatus = "due"
	ReviewRetained ReviewStatus = "retained"
)

// Status returns the review status for display. A question that is due
// but was last answered correctly is "retained": it is not pulled into
// review passes.
func (h HistoryEntry) Status(now time.Time) ReviewStatus {
	switch {
	case h.NeedsReview(now):
		return ReviewDue
	case h.IsDue(now):
		return ReviewRetained
	default:
		return ReviewNotDue
	}
}
