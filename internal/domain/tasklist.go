package domain

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// TaskList is an ordered list of free-text tasks. A task is identified by
// its position; removing one shifts the later ones down.
type TaskList struct {
	items []string
}

// Len returns the number of tasks.
func (l TaskList) Len() int { return len(l.items) }

// Items returns a copy of the tasks in insertion order.
func (l TaskList) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the task at index i.
func (l TaskList) At(i int) (string, bool) {
	if i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

// Add appends text as entered. Text that is blank after trimming is
// rejected.
func (l *TaskList) Add(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	l.items = append(l.items, text)
	return true
}

// Remove deletes the task at index i. Out-of-range indices are ignored.
func (l *TaskList) Remove(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return true
}

// Match returns the positions of the tasks matching query, best match
// first. An empty query matches every task in insertion order.
func (l TaskList) Match(query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		idx := make([]int, len(l.items))
		for i := range l.items {
			idx[i] = i
		}
		return idx
	}
	matches := fuzzy.Find(query, l.items)
	idx := make([]int, 0, len(matches))
	for _, m := range matches {
		idx = append(idx, m.Index)
	}
	return idx
}
