package spacedrep

import (
	"math"
	"testing"
	"time"
)

var day0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// answer replays a sequence of results for one question, one day apart,
// and returns every intermediate entry.
func answer(results ...bool) []HistoryEntry {
	var (
		prev *HistoryEntry
		out  []HistoryEntry
	)
	for i, correct := range results {
		next := Update(prev, "q1", "TAX", correct, day0.AddDate(0, 0, i))
		out = append(out, next)
		prev = &next
	}
	return out
}

func TestUpdate_FirstAttemptCorrect(t *testing.T) {
	h := Update(nil, "q1", "TAX", true, day0)

	if h.QuestionID != "q1" || h.Domain != "TAX" {
		t.Errorf("identity = %q/%q, want q1/TAX", h.QuestionID, h.Domain)
	}
	if h.Attempts != 1 || h.CorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", h.CorrectCount, h.Attempts)
	}
	if !h.LastResult {
		t.Error("expected LastResult true")
	}
	if !h.LastAttempted.Equal(day0) {
		t.Errorf("LastAttempted = %v, want %v", h.LastAttempted, day0)
	}
	if h.Interval != FirstInterval {
		t.Errorf("Interval = %v, want %v", h.Interval, FirstInterval)
	}
	if h.EaseFactor != InitialEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", h.EaseFactor, InitialEaseFactor)
	}
	if want := day0.AddDate(0, 0, 1); !h.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", h.NextReviewDate, want)
	}
}

func TestUpdate_FirstAttemptWrong(t *testing.T) {
	h := Update(nil, "q1", "TAX", false, day0)

	if h.Interval != LapseInterval {
		t.Errorf("Interval = %v, want %v", h.Interval, LapseInterval)
	}
	if h.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want %v", h.EaseFactor, MinEaseFactor)
	}
	// ceil(0.1) = 1 day.
	if want := day0.AddDate(0, 0, 1); !h.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", h.NextReviewDate, want)
	}
}

func TestUpdate_SecondCorrectIsSixDays(t *testing.T) {
	hs := answer(true, true)
	h := hs[1]
	if h.Interval != SecondInterval {
		t.Errorf("Interval = %v, want %v", h.Interval, SecondInterval)
	}
	if h.EaseFactor != InitialEaseFactor {
		t.Errorf("EaseFactor = %v, want unchanged %v", h.EaseFactor, InitialEaseFactor)
	}
	if want := day0.AddDate(0, 0, 1+6); !h.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", h.NextReviewDate, want)
	}
}

func TestUpdate_ThirdCorrectMultipliesByEase(t *testing.T) {
	hs := answer(true, true, true)
	h := hs[2]
	// round(6 × 2.5) = 15
	if h.Interval != 15 {
		t.Errorf("Interval = %v, want 15", h.Interval)
	}
	if !approx(h.EaseFactor, 2.6) {
		t.Errorf("EaseFactor = %v, want 2.6", h.EaseFactor)
	}
}

func TestUpdate_IntervalNonDecreasingOnStreak(t *testing.T) {
	for _, first := range []bool{true, false} {
		results := []bool{first}
		for i := 0; i < 12; i++ {
			results = append(results, true)
		}
		hs := answer(results...)
		for i := 2; i < len(hs); i++ {
			if hs[i].Interval < hs[i-1].Interval {
				t.Fatalf("first=%v attempt %d: interval %v < previous %v",
					first, i+1, hs[i].Interval, hs[i-1].Interval)
			}
		}
	}
}

func TestUpdate_WrongAnswerResets(t *testing.T) {
	hs := answer(true, true, true, true, true, false)
	before, after := hs[4], hs[5]

	if after.Interval != LapseInterval {
		t.Errorf("Interval = %v, want %v", after.Interval, LapseInterval)
	}
	if !approx(after.EaseFactor, before.EaseFactor-EasePenalty) {
		t.Errorf("EaseFactor = %v, want %v", after.EaseFactor, before.EaseFactor-EasePenalty)
	}
	if after.LastResult {
		t.Error("expected LastResult false")
	}
	if after.CorrectCount != 5 || after.Attempts != 6 {
		t.Errorf("counts = %d/%d, want 5/6", after.CorrectCount, after.Attempts)
	}
}

func TestUpdate_EaseNeverBelowFloor(t *testing.T) {
	results := []bool{true}
	for i := 0; i < 20; i++ {
		results = append(results, false)
	}
	for i, h := range answer(results...) {
		if h.EaseFactor < MinEaseFactor {
			t.Fatalf("attempt %d: EaseFactor %v below %v", i+1, h.EaseFactor, MinEaseFactor)
		}
	}
	last := answer(results...)[len(results)-1]
	if last.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", last.EaseFactor, MinEaseFactor)
	}
}

func TestUpdate_EaseCapped(t *testing.T) {
	results := make([]bool, 60)
	for i := range results {
		results[i] = true
	}
	hs := answer(results...)
	for i, h := range hs {
		if h.EaseFactor > MaxEaseFactor {
			t.Fatalf("attempt %d: EaseFactor %v above %v", i+1, h.EaseFactor, MaxEaseFactor)
		}
	}
	if got := hs[len(hs)-1].EaseFactor; got != MaxEaseFactor {
		t.Errorf("EaseFactor = %v, want cap %v", got, MaxEaseFactor)
	}
}

func TestUpdate_RecoversAfterLateLapse(t *testing.T) {
	hs := answer(true, true, true, false, true, true)

	if got := hs[4].Interval; got != FirstInterval {
		t.Errorf("first success after lapse: Interval = %v, want %v", got, FirstInterval)
	}
	if hs[5].Interval < hs[4].Interval {
		t.Errorf("interval shrank after recovery: %v -> %v", hs[4].Interval, hs[5].Interval)
	}
}

func TestUpdate_DoesNotModifyPrevious(t *testing.T) {
	prev := Update(nil, "q1", "TAX", true, day0)
	snapshot := prev

	_ = Update(&prev, "q1", "TAX", false, day0.AddDate(0, 0, 1))

	if prev != snapshot {
		t.Errorf("previous entry modified: %+v -> %+v", snapshot, prev)
	}
}

func TestUpdate_EmptyDomainKeepsPrevious(t *testing.T) {
	prev := Update(nil, "q1", "TAX", true, day0)
	next := Update(&prev, "q1", "", true, day0.AddDate(0, 0, 1))
	if next.Domain != "TAX" {
		t.Errorf("Domain = %q, want TAX", next.Domain)
	}
}

func TestUpdate_IntervalCapped(t *testing.T) {
	results := make([]bool, 40)
	for i := range results {
		results[i] = true
	}
	hs := answer(results...)
	last := hs[len(hs)-1]
	if last.Interval != MaxInterval {
		t.Errorf("Interval = %v, want cap %v", last.Interval, MaxInterval)
	}
	if want := last.LastAttempted.AddDate(0, 0, int(MaxInterval)); !last.NextReviewDate.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", last.NextReviewDate, want)
	}
}
