package ui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/neurotask/internal/task"
)

// findTask resolves a full id or a unique id prefix against the live
// collection, matching the shortened ids the list command prints.
func findTask(repo *task.Repository, ref string) (*task.Task, error) {
	if t := repo.Get(ref); t != nil {
		return t, nil
	}

	var matches []*task.Task
	for _, t := range repo.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous: %d tasks match", ref, len(matches))
	}
}
