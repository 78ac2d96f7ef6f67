package spacedrep

import (
	"testing"
	"time"
)

func TestIsDue_BeforeDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	h := HistoryEntry{NextReviewDate: now.Add(24 * time.Hour)}
	if h.IsDue(now) {
		t.Error("expected not due before review date")
	}
}

func TestIsDue_OnDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	h := HistoryEntry{NextReviewDate: now}
	if !h.IsDue(now) {
		t.Error("expected due on review date")
	}
}

func TestIsDue_AfterDate(t *testing.T) {
	now := time.Date(2025, 1, 3, 12, 0, 0, 0, time.UTC)
	h := HistoryEntry{NextReviewDate: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	if !h.IsDue(now) {
		t.Error("expected due after review date")
	}
}

func TestNeedsReview(t *testing.T) {
	reviewDate := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastResult bool
		now        time.Time
		want       bool
	}{
		{"wrong, not yet due", false, reviewDate.Add(-time.Minute), false},
		{"wrong, due", false, reviewDate, true},
		{"wrong, overdue", false, reviewDate.AddDate(0, 0, 5), true},
		{"right, due", true, reviewDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HistoryEntry{LastResult: tt.lastResult, NextReviewDate: reviewDate}
			if got := h.NeedsReview(tt.now); got != tt.want {
				t.Errorf("NeedsReview() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverdueDays_NotDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	h := HistoryEntry{NextReviewDate: now.Add(48 * time.Hour)}
	if got := h.OverdueDays(now); got != 0 {
		t.Errorf("OverdueDays() = %f, want 0", got)
	}
}

func TestOverdueDays_ThreeDaysOverdue(t *testing.T) {
	reviewDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := reviewDate.Add(3 * 24 * time.Hour)
	h := HistoryEntry{NextReviewDate: reviewDate}
	got := h.OverdueDays(now)
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		next time.Time
		want int
	}{
		{"already due", now.Add(-time.Hour), 0},
		{"exactly now", now, 0},
		{"half a day", now.Add(12 * time.Hour), 1},
		{"six days", now.AddDate(0, 0, 6), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HistoryEntry{NextReviewDate: tt.next}
			if got := h.DaysUntilReview(now); got != tt.want {
				t.Errorf("DaysUntilReview() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		h    HistoryEntry
		want ReviewStatus
	}{
		{"future", HistoryEntry{NextReviewDate: now.Add(time.Hour)}, ReviewNotDue},
		{"due after miss", HistoryEntry{NextReviewDate: now}, ReviewDue},
		{"due after hit", HistoryEntry{NextReviewDate: now, LastResult: true}, ReviewRetained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Status(now); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccuracy(t *testing.T) {
	if got := (HistoryEntry{}).Accuracy(); got != 0 {
		t.Errorf("Accuracy() with no attempts = %f, want 0", got)
	}
	h := HistoryEntry{Attempts: 4, CorrectCount: 3}
	if got := h.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy() = %f, want 0.75", got)
	}
}
