package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rnnlab/rnncourse/internal/course"
	"github.com/rnnlab/rnncourse/internal/store"
)

var (
	// ErrUnknownQuiz means the quiz id is not in the catalog.
	ErrUnknownQuiz = errors.New("quiz: unknown quiz")

	// ErrNoActiveAttempt means an answer or completion arrived with no
	// attempt in progress for that quiz.
	ErrNoActiveAttempt = errors.New("quiz: no active attempt")
)

// Service owns quiz attempt history and the spaced repetition
// schedule. State loads once at construction and every mutation
// persists back through the injected repo.
type Service struct {
	state     State
	stateRepo store.StateRepo
	eventRepo store.EventRepo
}

// NewService loads quiz state from the repo. Missing or malformed
// state falls back to an empty record.
func NewService(ctx context.Context, stateRepo store.StateRepo, eventRepo store.EventRepo) *Service {
	s := &Service{
		state:     newState(),
		stateRepo: stateRepo,
		eventRepo: eventRepo,
	}

	raw, err := stateRepo.Load(ctx, store.KeyQuiz)
	if err != nil {
		return s
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return s
	}
	if st.Quizzes == nil {
		st.Quizzes = make(map[string]*QuizProgress)
	}
	if st.Reviews == nil {
		st.Reviews = make(map[string]*ReviewPrompt)
	}
	s.state = st
	return s
}

// Progress returns the attempt history for a quiz, or false if the
// quiz has never been started.
func (s *Service) Progress(quizID string) (QuizProgress, bool) {
	qp, ok := s.state.Quizzes[quizID]
	if !ok {
		return QuizProgress{}, false
	}
	return *qp, true
}

// BestScore returns the best percentage recorded for a quiz, zero if
// never completed.
func (s *Service) BestScore(quizID string) int {
	if qp, ok := s.state.Quizzes[quizID]; ok {
		return qp.BestScore
	}
	return 0
}

// StartQuiz opens a fresh attempt and makes it current. Any earlier
// unfinished attempt for the same quiz stays in the history but is no
// longer answerable.
func (s *Service) StartQuiz(ctx context.Context, quizID string, now time.Time) (*QuizAttempt, error) {
	if _, ok := course.GetQuiz(quizID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuiz, quizID)
	}

	qp := s.state.Quizzes[quizID]
	if qp == nil {
		qp = &QuizProgress{QuizID: quizID}
		s.state.Quizzes[quizID] = qp
	}

	attempt := QuizAttempt{
		ID:        uuid.NewString(),
		StartedAt: now,
		Results:   make(map[string]QuestionResult),
	}
	qp.Attempts = append(qp.Attempts, attempt)
	qp.CurrentAttemptID = attempt.ID

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitAnswer records one graded question into the current attempt.
// Re-answering the same question within an attempt overwrites the
// earlier result.
func (s *Service) SubmitAnswer(ctx context.Context, quizID string, result QuestionResult) error {
	attempt, err := s.currentAttempt(quizID)
	if err != nil {
		return err
	}
	attempt.Results[result.QuestionID] = result
	return s.save(ctx)
}

// CompleteQuiz finalizes the current attempt: sums the per-question
// scores, converts to a rounded percentage of the quiz's max score,
// raises BestScore if beaten, and clears the current pointer.
func (s *Service) CompleteQuiz(ctx context.Context, quizID string, now time.Time) (*QuizAttempt, error) {
	q, ok := course.GetQuiz(quizID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuiz, quizID)
	}
	attempt, err := s.currentAttempt(quizID)
	if err != nil {
		return nil, err
	}
	qp := s.state.Quizzes[quizID]

	var score float64
	for _, r := range attempt.Results {
		score += r.Score
	}
	attempt.Score = score
	attempt.CompletedAt = &now
	if q.MaxScore > 0 {
		attempt.Percentage = int(math.Round(score / q.MaxScore * 100))
	}
	if attempt.Percentage > qp.BestScore {
		qp.BestScore = attempt.Percentage
	}
	qp.CurrentAttemptID = ""

	s.appendActivity(ctx, store.ActivityEventData{
		Kind:   store.ActivityQuizCompleted,
		QuizID: &quizID,
		Detail: fmt.Sprintf("%d%%", attempt.Percentage),
	})

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	out := *attempt
	return &out, nil
}

// ScheduleReview puts a set of questions on the spaced repetition
// schedule, due one day out. Rescheduling a quiz that already has a
// prompt replaces the question set but keeps the learned interval.
func (s *Service) ScheduleReview(ctx context.Context, quizID string, questionIDs []string, now time.Time) error {
	p := s.state.Reviews[quizID]
	if p == nil {
		p = &ReviewPrompt{
			QuizID:       quizID,
			IntervalDays: InitialIntervalDays,
			EaseFactor:   InitialEaseFactor,
			DueAt:        dueAfter(now, InitialIntervalDays),
		}
		s.state.Reviews[quizID] = p
	}
	p.QuestionIDs = questionIDs
	return s.save(ctx)
}

// CompleteReview applies the learner's rating to the quiz's prompt and
// pushes the due date out by the new interval.
func (s *Service) CompleteReview(ctx context.Context, quizID string, rating ReviewRating, now time.Time) (*ReviewPrompt, error) {
	p := s.state.Reviews[quizID]
	if p == nil {
		return nil, fmt.Errorf("quiz: no review scheduled for %s", quizID)
	}
	p.apply(rating, now)

	s.appendActivity(ctx, store.ActivityEventData{
		Kind:   store.ActivityReviewCompleted,
		QuizID: &quizID,
		Detail: string(rating),
	})

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

// DueReviews returns every prompt whose due date has arrived, most
// overdue first.
func (s *Service) DueReviews(now time.Time) []ReviewPrompt {
	var due []ReviewPrompt
	for _, p := range s.state.Reviews {
		if p.IsDue(now) {
			due = append(due, *p)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		oi, oj := due[i].OverdueDays(now), due[j].OverdueDays(now)
		if oi != oj {
			return oi > oj
		}
		return due[i].QuizID < due[j].QuizID
	})
	return due
}

// Reset discards all quiz data, both in memory and in the store.
func (s *Service) Reset(ctx context.Context) error {
	s.state = newState()
	if err := s.stateRepo.Delete(ctx, store.KeyQuiz); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) currentAttempt(quizID string) (*QuizAttempt, error) {
	qp := s.state.Quizzes[quizID]
	if qp == nil || qp.CurrentAttemptID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoActiveAttempt, quizID)
	}
	for i := range qp.Attempts {
		if qp.Attempts[i].ID == qp.CurrentAttemptID {
			return &qp.Attempts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoActiveAttempt, quizID)
}

func (s *Service) appendActivity(ctx context.Context, data store.ActivityEventData) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendActivityEvent(ctx, data)
}

func (s *Service) save(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return s.stateRepo.Save(ctx, store.KeyQuiz, raw)
}
