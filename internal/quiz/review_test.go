package quiz

import (
	"math"
	"testing"
	"time"
)

func newPrompt() *ReviewPrompt {
	return &ReviewPrompt{
		QuizID:       "quiz-0",
		QuestionIDs:  []string{"q0-1", "q0-2"},
		IntervalDays: InitialIntervalDays,
		EaseFactor:   InitialEaseFactor,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestApplyEasy(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := newPrompt()
	p.apply(RatingEasy, now)

	if !almostEqual(p.EaseFactor, 2.65) {
		t.Errorf("ease = %v, want 2.65", p.EaseFactor)
	}
	// Interval scales by the raised ease.
	if !almostEqual(p.IntervalDays, 2.65) {
		t.Errorf("interval = %v, want 2.65", p.IntervalDays)
	}
	if !p.DueAt.After(now) {
		t.Error("due date not pushed forward")
	}
}

func TestApplyMedium(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := newPrompt()
	p.apply(RatingMedium, now)

	if !almostEqual(p.EaseFactor, InitialEaseFactor) {
		t.Errorf("ease changed on medium: %v", p.EaseFactor)
	}
	if !almostEqual(p.IntervalDays, 2.5) {
		t.Errorf("interval = %v, want 2.5", p.IntervalDays)
	}
}

func TestApplyHard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := newPrompt()
	p.IntervalDays = 8
	p.apply(RatingHard, now)

	if !almostEqual(p.EaseFactor, 2.3) {
		t.Errorf("ease = %v, want 2.3", p.EaseFactor)
	}
	if !almostEqual(p.IntervalDays, 4) {
		t.Errorf("interval = %v, want 4", p.IntervalDays)
	}
}

func TestHardFloorsEaseAndInterval(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := newPrompt()

	for i := 0; i < 10; i++ {
		p.apply(RatingHard, now)
	}
	if !almostEqual(p.EaseFactor, MinEaseFactor) {
		t.Errorf("ease = %v, want floor %v", p.EaseFactor, MinEaseFactor)
	}
	if !almostEqual(p.IntervalDays, MinIntervalDays) {
		t.Errorf("interval = %v, want floor %v", p.IntervalDays, MinIntervalDays)
	}
}

func TestIsDueAndOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := newPrompt()
	p.DueAt = now.Add(-48 * time.Hour)

	if !p.IsDue(now) {
		t.Error("prompt 2 days past due should be due")
	}
	if got := p.OverdueDays(now); !almostEqual(got, 2) {
		t.Errorf("overdue = %v, want 2", got)
	}

	p.DueAt = now.Add(time.Hour)
	if p.IsDue(now) {
		t.Error("future prompt should not be due")
	}
}
