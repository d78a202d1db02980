package ticket

import (
	"strings"
	"time"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
	"github.com/ecobarangay/wasteops/internal/shared/errors"
)

// Request bodies are accepted as JSON or as multipart form fields next to an
// optional "file" part. Content rules are enforced by the use cases.

type CreateTicketRequest struct {
	Title    string `json:"title" form:"title"`
	Details  string `json:"details" form:"details"`
	Priority string `json:"priority" form:"priority"`
	DueDate  string `json:"due_date" form:"due_date" example:"2026-03-05"`
}

type AcceptTicketRequest struct {
	AssignTo uint   `json:"assign_to" form:"assign_to"`
	Priority string `json:"priority" form:"priority"`
	DueDate  string `json:"due_date" form:"due_date" example:"2026-03-05"`
}

type AddRemarksRequest struct {
	Remarks string `json:"remarks" form:"remarks"`
}

type ListTicketsRequest struct {
	Status     string `form:"status"`
	AssignedTo *uint  `form:"assigned_to"`
	CreatedBy  *uint  `form:"created_by"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:     r.Status,
		AssignedTo: r.AssignedTo,
		CreatedBy:  r.CreatedBy,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}

// parseDueDate reads an optional calendar date in the business timezone.
func parseDueDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	due, err := biztime.ParseDate(raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid due_date", "expected YYYY-MM-DD")
	}
	return &due, nil
}
