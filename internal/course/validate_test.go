package course

import (
	"strings"
	"testing"
)

func TestSeedCatalogIsValid(t *testing.T) {
	if err := validateCatalog(seedModules, seedPaths); err != nil {
		t.Fatalf("seed catalog invalid: %v", err)
	}
}

func TestValidateDuplicateModuleID(t *testing.T) {
	modules := []Module{
		{ID: 0, Title: "A", Difficulty: 1},
		{ID: 0, Title: "B", Difficulty: 1},
	}
	err := validateCatalog(modules, nil)
	if err == nil || !strings.Contains(err.Error(), "duplicate module ID") {
		t.Errorf("err = %v, want duplicate module ID error", err)
	}
}

func TestValidateNonContiguousIDs(t *testing.T) {
	modules := []Module{
		{ID: 0, Title: "A", Difficulty: 1},
		{ID: 2, Title: "C", Difficulty: 1},
	}
	err := validateCatalog(modules, nil)
	if err == nil || !strings.Contains(err.Error(), "not contiguous") {
		t.Errorf("err = %v, want contiguity error", err)
	}
}

func TestValidateDanglingPathModule(t *testing.T) {
	modules := []Module{{ID: 0, Title: "A", Difficulty: 1}}
	paths := []LearningPath{
		{ID: "p", Name: "P", ModuleIDs: []int{0, 7}},
	}
	err := validateCatalog(modules, paths)
	if err == nil || !strings.Contains(err.Error(), "nonexistent module") {
		t.Errorf("err = %v, want dangling module error", err)
	}
}

func TestDifficultyDefaultsToOne(t *testing.T) {
	if got := Difficulty(-1); got != 1 {
		t.Errorf("Difficulty(-1) = %d, want 1", got)
	}
	if got := Difficulty(9999); got != 1 {
		t.Errorf("Difficulty(9999) = %d, want 1", got)
	}
	if got := Difficulty(11); got != 5 {
		t.Errorf("Difficulty(11) = %d, want 5 (capstone)", got)
	}
}

func TestLookups(t *testing.T) {
	m, ok := GetModule(3)
	if !ok || m.Title != "Long Short-Term Memory" {
		t.Errorf("GetModule(3) = %+v, %v", m, ok)
	}
	if _, ok := GetModule(99); ok {
		t.Error("GetModule(99) should not exist")
	}

	p, ok := GetPath(PathQuickWins)
	if !ok || len(p.ModuleIDs) != 5 {
		t.Errorf("GetPath(quick-wins) = %+v, %v", p, ok)
	}

	q, ok := QuizForModule(3)
	if !ok || q.ID != "quiz-3" {
		t.Errorf("QuizForModule(3) = %+v, %v", q, ok)
	}
	if q.MaxScore != 10 {
		t.Errorf("quiz max score = %v, want 10", q.MaxScore)
	}
}
