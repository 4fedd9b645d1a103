package badges

// Category groups badges by what kind of behavior earns them.
type Category string

const (
	CategoryCompletion  Category = "completion"
	CategoryPractice    Category = "practice"
	CategoryConsistency Category = "consistency"
	CategoryPoints      Category = "points"
	CategoryTime        Category = "time"
	CategoryPath        Category = "path"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryCompletion,
		CategoryPractice,
		CategoryConsistency,
		CategoryPoints,
		CategoryTime,
		CategoryPath,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryCompletion:
		return "Completion"
	case CategoryPractice:
		return "Practice"
	case CategoryConsistency:
		return "Consistency"
	case CategoryPoints:
		return "Points"
	case CategoryTime:
		return "Time"
	case CategoryPath:
		return "Learning Path"
	default:
		return string(c)
	}
}
