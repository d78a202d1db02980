package valueobjects

import (
	"fmt"
	"strings"
)

// Status identifies a ticket status. Values match the seeded ids of the
// ticket_statuses catalog table.
type Status uint

const (
	StatusRequested       Status = 1
	StatusOngoing         Status = 2
	StatusForVerification Status = 3
	StatusCompleted       Status = 4
	StatusCancelled       Status = 5
)

var statusNames = map[Status]string{
	StatusRequested:       "Requested",
	StatusOngoing:         "On-going",
	StatusForVerification: "For Verification",
	StatusCompleted:       "Completed",
	StatusCancelled:       "Cancelled",
}

// AllStatuses returns every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusRequested,
		StatusOngoing,
		StatusForVerification,
		StatusCompleted,
		StatusCancelled,
	}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint(s))
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ParseStatus resolves a human label, case-insensitively.
func ParseStatus(label string) (Status, error) {
	label = strings.TrimSpace(label)
	for s, name := range statusNames {
		if strings.EqualFold(name, label) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid ticket status: %q", label)
}

// NewStatus validates a catalog id.
func NewStatus(id uint) (Status, error) {
	s := Status(id)
	if !s.IsValid() {
		return 0, fmt.Errorf("invalid ticket status id: %d", id)
	}
	return s, nil
}
