package maintenance

import (
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
	"github.com/ecobarangay/wasteops/internal/shared/biztime"
)

// MaxTitleLength is the longest accepted ticket title, in characters.
const MaxTitleLength = 200

// creatorRoles may open maintenance tickets.
var creatorRoles = []authorization.Role{
	authorization.RoleAdmin,
	authorization.RoleStaff,
	authorization.RoleOperator,
}

// CreatorRoles returns the roles allowed to open a ticket.
func CreatorRoles() []authorization.Role {
	out := make([]authorization.Role, len(creatorRoles))
	copy(out, creatorRoles)
	return out
}

// Ticket is a maintenance request. Its status only changes through Workflow.
type Ticket struct {
	id          uint
	title       string
	details     string
	priority    *vo.Priority
	status      vo.Status
	createdBy   uint
	assignedTo  *uint
	dueDate     *time.Time
	remarks     string
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time
}

// NewTicket opens a ticket in Requested status.
func NewTicket(
	title string,
	details string,
	priority *vo.Priority,
	creator authorization.Actor,
	dueDate *time.Time,
	now time.Time,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if creator.AccountID == 0 {
		return nil, ErrCreatorRequired
	}
	if !creator.Role.In(creatorRoles...) {
		return nil, ErrCreatorRole
	}

	return &Ticket{
		title:     title,
		details:   strings.TrimSpace(details),
		priority:  priority,
		status:    vo.StatusRequested,
		createdBy: creator.AccountID,
		dueDate:   dueDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTicket rebuilds a persisted ticket.
func ReconstructTicket(
	id uint,
	title string,
	details string,
	priority *vo.Priority,
	status vo.Status,
	createdBy uint,
	assignedTo *uint,
	dueDate *time.Time,
	remarks string,
	createdAt, updatedAt time.Time,
	completedAt *time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		title:       title,
		details:     details,
		priority:    priority,
		status:      status,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		dueDate:     dueDate,
		remarks:     remarks,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		completedAt: completedAt,
	}
}

func (t *Ticket) ID() uint { return t.id }
func (t *Ticket) Title() string { return t.title }
func (t *Ticket) Details() string { return t.details }
func (t *Ticket) Priority() *vo.Priority { return t.priority }
func (t *Ticket) Status() vo.Status { return t.status }
func (t *Ticket) CreatedBy() uint { return t.createdBy }
func (t *Ticket) AssignedTo() *uint { return t.assignedTo }
func (t *Ticket) DueDate() *time.Time { return t.dueDate }
func (t *Ticket) Remarks() string { return t.remarks }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }
func (t *Ticket) CompletedAt() *time.Time { return t.completedAt }

// SetID assigns the storage id after insert.
func (t *Ticket) SetID(id uint) {
	if t.id == 0 {
		t.id = id
	}
}

// IsAssignee reports whether accountID is the current assignee.
func (t *Ticket) IsAssignee(accountID uint) bool {
	return t.assignedTo != nil && *t.assignedTo == accountID
}

// IsCreator reports whether accountID opened the ticket.
func (t *Ticket) IsCreator(accountID uint) bool {
	return t.createdBy == accountID
}

// stamp returns a write time that never precedes the last update.
func (t *Ticket) stamp(now time.Time) time.Time {
	if now.Before(t.updatedAt) {
		return t.updatedAt
	}
	return now
}

func (t *Ticket) moveTo(status vo.Status, at time.Time) {
	t.status = status
	t.updatedAt = at
	if status == vo.StatusCompleted {
		completed := at
		t.completedAt = &completed
	}
}

func (t *Ticket) assign(accountID uint) {
	id := accountID
	t.assignedTo = &id
}

// appendRemark adds a "[YYYY-MM-DD HH:MM] text" line to the remarks log.
func (t *Ticket) appendRemark(text string, at time.Time) {
	line := "[" + biztime.FormatStamp(at) + "] " + text
	if t.remarks == "" {
		t.remarks = line
	} else {
		t.remarks += "\n" + line
	}
	t.updatedAt = at
}
