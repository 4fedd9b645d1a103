package quiz

import "time"

// QuestionResult is the graded outcome of one question within an
// attempt. Score may be partial.
type QuestionResult struct {
	QuestionID string  `json:"question_id"`
	Answer     string  `json:"answer"`
	Correct    bool    `json:"correct"`
	Score      float64 `json:"score"`
	TimeSpent  int64   `json:"time_spent"` // seconds
}

// QuizAttempt is one pass through a quiz. Results accumulate while the
// attempt is current; Score and Percentage are filled on completion.
type QuizAttempt struct {
	ID          string                    `json:"id"`
	StartedAt   time.Time                 `json:"started_at"`
	CompletedAt *time.Time                `json:"completed_at,omitempty"`
	Results     map[string]QuestionResult `json:"results"`
	Score       float64                   `json:"score"`
	Percentage  int                       `json:"percentage"`
}

// QuizProgress is the full persistent record for one quiz: every
// attempt ever made plus the best percentage across them. BestScore
// never decreases.
type QuizProgress struct {
	QuizID           string        `json:"quiz_id"`
	Attempts         []QuizAttempt `json:"attempts"`
	BestScore        int           `json:"best_score"`
	CurrentAttemptID string        `json:"current_attempt_id,omitempty"`
}

// ReviewPrompt schedules a set of questions for spaced repetition.
// One prompt per quiz; IntervalDays and EaseFactor evolve with each
// completed review.
type ReviewPrompt struct {
	QuizID       string    `json:"quiz_id"`
	QuestionIDs  []string  `json:"question_ids"`
	DueAt        time.Time `json:"due_at"`
	IntervalDays float64   `json:"interval_days"`
	EaseFactor   float64   `json:"ease_factor"`
}

// State is the serialized shape stored under the quiz key.
type State struct {
	Quizzes map[string]*QuizProgress `json:"quizzes"`
	Reviews map[string]*ReviewPrompt `json:"reviews,omitempty"`
}

func newState() State {
	return State{
		Quizzes: make(map[string]*QuizProgress),
		Reviews: make(map[string]*ReviewPrompt),
	}
}
