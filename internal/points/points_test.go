package points

import (
	"testing"

	"github.com/rnnlab/rnncourse/internal/course"
)

func TestModulePointsFloor(t *testing.T) {
	// Every id, known or not, earns at least base + one difficulty step.
	ids := []int{-5, 0, 3, 11, 42}
	for _, id := range ids {
		if got := CalculateModulePoints(id); got < ModuleBase+ModulePerDifficulty {
			t.Errorf("CalculateModulePoints(%d) = %d, below floor", id, got)
		}
	}
}

func TestModulePointsScaleWithDifficulty(t *testing.T) {
	for _, m := range course.AllModules() {
		want := ModuleBase + ModulePerDifficulty*m.Difficulty
		if got := CalculateModulePoints(m.ID); got != want {
			t.Errorf("module %d: points = %d, want %d", m.ID, got, want)
		}
	}
}

func TestExercisePointsMonotonic(t *testing.T) {
	for attempts := 1; attempts <= 5; attempts++ {
		noHints := CalculateExercisePoints(0, attempts)
		withHints := CalculateExercisePoints(2, attempts)
		if noHints < withHints {
			t.Errorf("attempts=%d: no-hint award %d < hinted award %d", attempts, noHints, withHints)
		}
	}
	for hints := 0; hints <= 3; hints++ {
		firstTry := CalculateExercisePoints(hints, 1)
		retried := CalculateExercisePoints(hints, 4)
		if firstTry < retried {
			t.Errorf("hints=%d: first-try award %d < retry award %d", hints, firstTry, retried)
		}
	}
}

func TestExerciseBonusesStack(t *testing.T) {
	got := CalculateExercisePoints(0, 1)
	want := ExerciseBase + PerfectBonus + FirstTryBonus
	if got != want {
		t.Errorf("perfect first try = %d, want %d", got, want)
	}
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 12, 0},
		{12, 12, 100},
		{2, 4, 50},
		{1, 3, 33},
		{2, 3, 67},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateProgress(tt.completed, tt.total); got != tt.want {
			t.Errorf("CalculateProgress(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
		}
	}
}
