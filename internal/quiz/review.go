package quiz

import "time"

// ReviewRating is the learner's difficulty verdict on a completed review.
type ReviewRating string

const (
	RatingEasy   ReviewRating = "easy"
	RatingMedium ReviewRating = "medium"
	RatingHard   ReviewRating = "hard"
)

// Spaced repetition tuning, after SM-2.
const (
	InitialIntervalDays = 1.0
	InitialEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	EasyEaseBonus       = 0.15
	HardEasePenalty     = 0.2
	MinIntervalDays     = 1.0
)

// apply advances the prompt's schedule by one review. Easy reviews
// raise the ease factor before scaling; hard reviews lower it (never
// below MinEaseFactor) and halve the interval (never below one day).
func (p *ReviewPrompt) apply(rating ReviewRating, now time.Time) {
	switch rating {
	case RatingEasy:
		p.EaseFactor += EasyEaseBonus
		p.IntervalDays *= p.EaseFactor
	case RatingMedium:
		p.IntervalDays *= p.EaseFactor
	case RatingHard:
		p.EaseFactor -= HardEasePenalty
		if p.EaseFactor < MinEaseFactor {
			p.EaseFactor = MinEaseFactor
		}
		p.IntervalDays /= 2
		if p.IntervalDays < MinIntervalDays {
			p.IntervalDays = MinIntervalDays
		}
	}
	p.DueAt = dueAfter(now, p.IntervalDays)
}

// IsDue reports whether the prompt is ready for review.
func (p *ReviewPrompt) IsDue(now time.Time) bool {
	return !p.DueAt.After(now)
}

// OverdueDays returns how far past due the prompt is, in days.
// Zero or negative means not yet due.
func (p *ReviewPrompt) OverdueDays(now time.Time) float64 {
	return now.Sub(p.DueAt).Hours() / 24
}

func dueAfter(now time.Time, intervalDays float64) time.Time {
	return now.Add(time.Duration(intervalDays * 24 * float64(time.Hour)))
}
