package course

// LearningPath is a named, ordered subset of modules targeting a
// specific audience or time budget. Paths may skip modules; unlock
// gating always follows catalog order, not path order.
type LearningPath struct {
	ID          string
	Name        string
	Description string
	ModuleIDs   []int
	Duration    string
}

// Path ids referenced by the badge tables.
const (
	PathQuickWins   = "quick-wins"
	PathFullCourse  = "full-course"
	PathTheoryTrack = "theory-track"
)

var seedPaths = []LearningPath{
	{
		ID:          PathQuickWins,
		Name:        "Quick Wins",
		Description: "The shortest route to training and sampling your first language model.",
		ModuleIDs:   []int{0, 1, 2, 4, 8},
		Duration:    "2 hours",
	},
	{
		ID:          PathFullCourse,
		Name:        "Full Course",
		Description: "Every module, in order, from motivation to capstone.",
		ModuleIDs:   []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
		Duration:    "6 hours",
	},
	{
		ID:          PathTheoryTrack,
		Name:        "Theory Track",
		Description: "The mathematical core: cells, gates, gradients, and why training works.",
		ModuleIDs:   []int{2, 3, 5, 6, 7},
		Duration:    "3 hours",
	},
}
