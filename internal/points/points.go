// Package points holds the pure award arithmetic. Nothing here touches
// storage or the clock; every function maps inputs to a non-negative
// integer.
package points

import (
	"math"

	"github.com/rnnlab/rnncourse/internal/course"
)

// Award constants. Bonuses are independent and additive.
const (
	ModuleBase          = 100 // completing any module
	ModulePerDifficulty = 25  // times the module's difficulty weight

	ExerciseBase    = 25 // completing any exercise
	PerfectBonus    = 15 // no hints used
	FirstTryBonus   = 10 // solved on the first attempt
	StreakDaily     = 10 // awarded on each new active day
	StreakWeekBonus = 50 // extra when the streak hits a multiple of 7
)

// CalculateModulePoints returns the award for completing a module.
// Unknown ids fall back to difficulty 1, so the result is always at
// least ModuleBase + ModulePerDifficulty.
func CalculateModulePoints(moduleID int) int {
	return ModuleBase + ModulePerDifficulty*course.Difficulty(moduleID)
}

// CalculateExercisePoints returns the award for completing an exercise.
// The perfect and first-try bonuses stack.
func CalculateExercisePoints(hintsUsed, attempts int) int {
	pts := ExerciseBase
	if hintsUsed == 0 {
		pts += PerfectBonus
	}
	if attempts == 1 {
		pts += FirstTryBonus
	}
	return pts
}

// CalculateProgress returns completion as a whole percentage.
// Zero total yields zero rather than dividing.
func CalculateProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
