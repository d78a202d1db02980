package valueobjects

import (
	"fmt"
	"strings"
)

// Priority identifies a ticket priority. Values match the seeded ids of the
// ticket_priorities catalog table. A ticket may have no priority.
type Priority uint

const (
	PriorityCritical Priority = 1
	PriorityUrgent   Priority = 2
	PriorityMild     Priority = 3
)

var priorityNames = map[Priority]string{
	PriorityCritical: "Critical",
	PriorityUrgent:   "Urgent",
	PriorityMild:     "Mild",
}

// AllPriorities returns every priority from most to least pressing.
func AllPriorities() []Priority {
	return []Priority{PriorityCritical, PriorityUrgent, PriorityMild}
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", uint(p))
}

func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// ParsePriority resolves a human label, case-insensitively.
func ParsePriority(label string) (Priority, error) {
	label = strings.TrimSpace(label)
	for p, name := range priorityNames {
		if strings.EqualFold(name, label) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid priority: %q", label)
}

// NewPriority validates a catalog id.
func NewPriority(id uint) (Priority, error) {
	p := Priority(id)
	if !p.IsValid() {
		return 0, fmt.Errorf("invalid priority id: %d", id)
	}
	return p, nil
}
