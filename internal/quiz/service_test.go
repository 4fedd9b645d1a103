package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rnnlab/rnncourse/internal/store"
)

func newTestService() (*Service, *store.MemoryStateRepo) {
	repo := store.NewMemoryStateRepo()
	return NewService(context.Background(), repo, nil), repo
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestStartQuizUnknown(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.StartQuiz(context.Background(), "quiz-99", at(9))
	if !errors.Is(err, ErrUnknownQuiz) {
		t.Errorf("err = %v, want ErrUnknownQuiz", err)
	}
}

func TestSubmitWithoutAttempt(t *testing.T) {
	svc, _ := newTestService()
	err := svc.SubmitAnswer(context.Background(), "quiz-0", QuestionResult{QuestionID: "q0-1"})
	if !errors.Is(err, ErrNoActiveAttempt) {
		t.Errorf("err = %v, want ErrNoActiveAttempt", err)
	}
}

func TestQuizAttemptLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	attempt, err := svc.StartQuiz(ctx, "quiz-0", at(9))
	if err != nil {
		t.Fatal(err)
	}
	if attempt.ID == "" {
		t.Fatal("attempt id empty")
	}

	// 4 of 5 questions correct, one half-credit. Max score is 10.
	answers := []QuestionResult{
		{QuestionID: "q0-1", Answer: "a", Correct: true, Score: 2},
		{QuestionID: "q0-2", Answer: "b", Correct: true, Score: 2},
		{QuestionID: "q0-3", Answer: "c", Correct: true, Score: 2},
		{QuestionID: "q0-4", Answer: "d", Correct: true, Score: 2},
		{QuestionID: "q0-5", Answer: "e", Correct: false, Score: 1},
	}
	for _, a := range answers {
		if err := svc.SubmitAnswer(ctx, "quiz-0", a); err != nil {
			t.Fatal(err)
		}
	}

	done, err := svc.CompleteQuiz(ctx, "quiz-0", at(10))
	if err != nil {
		t.Fatal(err)
	}
	if done.Score != 9 {
		t.Errorf("score = %v, want 9", done.Score)
	}
	if done.Percentage != 90 {
		t.Errorf("percentage = %d, want 90", done.Percentage)
	}
	if done.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if svc.BestScore("quiz-0") != 90 {
		t.Errorf("best = %d, want 90", svc.BestScore("quiz-0"))
	}

	// Current pointer cleared; further answers rejected.
	if err := svc.SubmitAnswer(ctx, "quiz-0", answers[0]); !errors.Is(err, ErrNoActiveAttempt) {
		t.Errorf("answer after completion: %v, want ErrNoActiveAttempt", err)
	}
}

func TestReanswerOverwritesWithinAttempt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.StartQuiz(ctx, "quiz-0", at(9)); err != nil {
		t.Fatal(err)
	}
	if err := svc.SubmitAnswer(ctx, "quiz-0", QuestionResult{QuestionID: "q0-1", Score: 0}); err != nil {
		t.Fatal(err)
	}
	if err := svc.SubmitAnswer(ctx, "quiz-0", QuestionResult{QuestionID: "q0-1", Correct: true, Score: 2}); err != nil {
		t.Fatal(err)
	}

	done, err := svc.CompleteQuiz(ctx, "quiz-0", at(10))
	if err != nil {
		t.Fatal(err)
	}
	if done.Score != 2 {
		t.Errorf("score = %v, want 2 (overwrite, not sum)", done.Score)
	}
}

func TestBestScoreMonotone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	run := func(score float64) int {
		t.Helper()
		if _, err := svc.StartQuiz(ctx, "quiz-1", at(9)); err != nil {
			t.Fatal(err)
		}
		if err := svc.SubmitAnswer(ctx, "quiz-1", QuestionResult{QuestionID: "q1-1", Score: score}); err != nil {
			t.Fatal(err)
		}
		done, err := svc.CompleteQuiz(ctx, "quiz-1", at(10))
		if err != nil {
			t.Fatal(err)
		}
		return done.Percentage
	}

	if pct := run(8); pct != 80 || svc.BestScore("quiz-1") != 80 {
		t.Fatalf("first run: pct %d, best %d", pct, svc.BestScore("quiz-1"))
	}
	// A worse second attempt must not lower the best.
	if pct := run(4); pct != 40 {
		t.Fatalf("second run pct = %d", pct)
	}
	if got := svc.BestScore("quiz-1"); got != 80 {
		t.Errorf("best after worse attempt = %d, want 80", got)
	}
	if run(10) != 100 || svc.BestScore("quiz-1") != 100 {
		t.Errorf("best not raised by a better attempt")
	}

	qp, ok := svc.Progress("quiz-1")
	if !ok || len(qp.Attempts) != 3 {
		t.Errorf("attempt history = %d, want 3", len(qp.Attempts))
	}
}

func TestReviewScheduling(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.ScheduleReview(ctx, "quiz-0", []string{"q0-3", "q0-5"}, at(9)); err != nil {
		t.Fatal(err)
	}

	// Not due yet; due a day later.
	if got := svc.DueReviews(at(10)); len(got) != 0 {
		t.Errorf("due immediately: %v", got)
	}
	due := svc.DueReviews(at(9).AddDate(0, 0, 1))
	if len(due) != 1 || due[0].QuizID != "quiz-0" {
		t.Fatalf("due after a day: %v", due)
	}
	if len(due[0].QuestionIDs) != 2 {
		t.Errorf("question ids = %v", due[0].QuestionIDs)
	}

	p, err := svc.CompleteReview(ctx, "quiz-0", RatingMedium, at(9).AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if p.IntervalDays != 2.5 {
		t.Errorf("interval = %v, want 2.5", p.IntervalDays)
	}
	if got := svc.DueReviews(at(9).AddDate(0, 0, 1)); len(got) != 0 {
		t.Errorf("still due right after review: %v", got)
	}
}

func TestDueReviewsOrdering(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if err := svc.ScheduleReview(ctx, "quiz-0", []string{"q0-1"}, at(9)); err != nil {
		t.Fatal(err)
	}
	if err := svc.ScheduleReview(ctx, "quiz-1", []string{"q1-1"}, at(9).AddDate(0, 0, 3)); err != nil {
		t.Fatal(err)
	}

	due := svc.DueReviews(at(9).AddDate(0, 0, 10))
	if len(due) != 2 {
		t.Fatalf("due = %v", due)
	}
	// quiz-0 was scheduled first, so it is more overdue.
	if due[0].QuizID != "quiz-0" || due[1].QuizID != "quiz-1" {
		t.Errorf("order = %s, %s", due[0].QuizID, due[1].QuizID)
	}
}

func TestCompleteReviewUnscheduled(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CompleteReview(context.Background(), "quiz-7", RatingEasy, at(9)); err == nil {
		t.Error("expected error for unscheduled review")
	}
}

func TestStateRoundTrip(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.StartQuiz(ctx, "quiz-2", at(9)); err != nil {
		t.Fatal(err)
	}
	if err := svc.SubmitAnswer(ctx, "quiz-2", QuestionResult{QuestionID: "q2-1", Correct: true, Score: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteQuiz(ctx, "quiz-2", at(10)); err != nil {
		t.Fatal(err)
	}
	if err := svc.ScheduleReview(ctx, "quiz-2", []string{"q2-2"}, at(10)); err != nil {
		t.Fatal(err)
	}

	svc2 := NewService(ctx, repo, nil)
	if svc2.BestScore("quiz-2") != svc.BestScore("quiz-2") {
		t.Errorf("best score lost in round trip")
	}
	qp, ok := svc2.Progress("quiz-2")
	if !ok || len(qp.Attempts) != 1 {
		t.Fatalf("attempts lost in round trip: %+v", qp)
	}
	if qp.Attempts[0].Results["q2-1"].Score != 2 {
		t.Errorf("question result lost: %+v", qp.Attempts[0].Results)
	}
	if len(svc2.DueReviews(at(9).AddDate(0, 0, 2))) != 1 {
		t.Error("review schedule lost in round trip")
	}
}

func TestMalformedBlobFallsBack(t *testing.T) {
	repo := store.NewMemoryStateRepo()
	ctx := context.Background()
	if err := repo.Save(ctx, store.KeyQuiz, []byte(`{"quizzes": 42}`)); err != nil {
		t.Fatal(err)
	}
	svc := NewService(ctx, repo, nil)
	if _, ok := svc.Progress("quiz-0"); ok {
		t.Error("expected fresh state after malformed blob")
	}
}

func TestReset(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.StartQuiz(ctx, "quiz-0", at(9)); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := svc.Progress("quiz-0"); ok {
		t.Error("state survived reset")
	}
	if _, err := repo.Load(ctx, store.KeyQuiz); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("blob survived reset: %v", err)
	}
}
