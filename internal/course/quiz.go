package course

import "fmt"

// Quiz is the static descriptor of a per-module quiz. Question content
// lives with the course material; the engine needs only ids and scores.
type Quiz struct {
	ID          string
	ModuleID    int
	Title       string
	QuestionIDs []string
	MaxScore    float64
}

// questionsPerQuiz is uniform across the catalog.
const questionsPerQuiz = 5

// pointsPerQuestion is the full score for one question.
const pointsPerQuestion = 2.0

// seedQuizzes builds one quiz per module. Question ids follow the
// pattern q<module>-<n> and are stable across releases.
func seedQuizzes(modules []Module) []Quiz {
	quizzes := make([]Quiz, 0, len(modules))
	for _, m := range modules {
		ids := make([]string, questionsPerQuiz)
		for i := range ids {
			ids[i] = fmt.Sprintf("q%d-%d", m.ID, i+1)
		}
		quizzes = append(quizzes, Quiz{
			ID:          fmt.Sprintf("quiz-%d", m.ID),
			ModuleID:    m.ID,
			Title:       m.Title + " Quiz",
			QuestionIDs: ids,
			MaxScore:    questionsPerQuiz * pointsPerQuestion,
		})
	}
	return quizzes
}
