package course

import "fmt"

// catalog holds the static course content with precomputed indices.
type catalog struct {
	modules  []Module
	byID     map[int]*Module
	paths    []LearningPath
	pathByID map[string]*LearningPath
	quizzes  []Quiz
	quizByID map[string]*Quiz
}

// c is the package-level catalog singleton, built at init.
var c *catalog

func init() {
	if err := validateCatalog(seedModules, seedPaths); err != nil {
		panic(fmt.Sprintf("invalid course catalog: %v", err))
	}
	c = buildCatalog(seedModules, seedPaths, seedQuizzes(seedModules))
}

func buildCatalog(modules []Module, paths []LearningPath, quizzes []Quiz) *catalog {
	ct := &catalog{
		modules:  modules,
		byID:     make(map[int]*Module, len(modules)),
		paths:    paths,
		pathByID: make(map[string]*LearningPath, len(paths)),
		quizzes:  quizzes,
		quizByID: make(map[string]*Quiz, len(quizzes)),
	}
	for i := range ct.modules {
		ct.byID[ct.modules[i].ID] = &ct.modules[i]
	}
	for i := range ct.paths {
		ct.pathByID[ct.paths[i].ID] = &ct.paths[i]
	}
	for i := range ct.quizzes {
		ct.quizByID[ct.quizzes[i].ID] = &ct.quizzes[i]
	}
	return ct
}

// AllModules returns every module in catalog (id) order.
func AllModules() []Module {
	return c.modules
}

// ModuleCount returns the number of modules in the catalog.
func ModuleCount() int {
	return len(c.modules)
}

// GetModule returns the module with the given id.
func GetModule(id int) (Module, bool) {
	m, ok := c.byID[id]
	if !ok {
		return Module{}, false
	}
	return *m, true
}

// Difficulty returns the difficulty weight for a module.
// Unknown ids default to 1 so point math never fails.
func Difficulty(id int) int {
	m, ok := c.byID[id]
	if !ok || m.Difficulty < 1 {
		return 1
	}
	return m.Difficulty
}

// AllPaths returns every learning path in display order.
func AllPaths() []LearningPath {
	return c.paths
}

// GetPath returns the learning path with the given id.
func GetPath(id string) (LearningPath, bool) {
	p, ok := c.pathByID[id]
	if !ok {
		return LearningPath{}, false
	}
	return *p, true
}

// AllQuizzes returns every quiz descriptor in module order.
func AllQuizzes() []Quiz {
	return c.quizzes
}

// GetQuiz returns the quiz with the given id.
func GetQuiz(id string) (Quiz, bool) {
	q, ok := c.quizByID[id]
	if !ok {
		return Quiz{}, false
	}
	return *q, true
}

// QuizForModule returns the quiz belonging to a module.
func QuizForModule(moduleID int) (Quiz, bool) {
	for _, q := range c.quizzes {
		if q.ModuleID == moduleID {
			return q, true
		}
	}
	return Quiz{}, false
}
