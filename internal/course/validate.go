package course

import (
	"fmt"
	"strings"
)

// validateCatalog performs structural checks on the seeded content.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(modules []Module, paths []LearningPath) error {
	var errs []string

	idSet := make(map[int]bool, len(modules))
	for _, m := range modules {
		if idSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %d", m.ID))
		}
		idSet[m.ID] = true
		if m.Title == "" {
			errs = append(errs, fmt.Sprintf("module %d has empty title", m.ID))
		}
		if m.Difficulty < 1 || m.Difficulty > 5 {
			errs = append(errs, fmt.Sprintf("module %d difficulty %d out of range 1-5", m.ID, m.Difficulty))
		}
	}

	// Module unlocking walks the previous catalog id, so ids must form
	// a contiguous range starting at 0.
	for i := 0; i < len(modules); i++ {
		if !idSet[i] {
			errs = append(errs, fmt.Sprintf("module ids not contiguous: missing %d", i))
		}
	}

	pathIDSet := make(map[string]bool, len(paths))
	for _, p := range paths {
		if pathIDSet[p.ID] {
			errs = append(errs, fmt.Sprintf("duplicate path ID: %q", p.ID))
		}
		pathIDSet[p.ID] = true
		if len(p.ModuleIDs) == 0 {
			errs = append(errs, fmt.Sprintf("path %q has no modules", p.ID))
		}
		seen := make(map[int]bool, len(p.ModuleIDs))
		for _, id := range p.ModuleIDs {
			if !idSet[id] {
				errs = append(errs, fmt.Sprintf("path %q references nonexistent module %d", p.ID, id))
			}
			if seen[id] {
				errs = append(errs, fmt.Sprintf("path %q lists module %d twice", p.ID, id))
			}
			seen[id] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
