package maintenance

import (
	"sort"
	"strings"
	"time"

	vo "github.com/ecobarangay/wasteops/internal/domain/maintenance/valueobjects"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
)

// Action is a caller intent against a ticket.
type Action string

const (
	ActionAccept              Action = "accept"
	ActionMarkOngoing         Action = "mark_ongoing"
	ActionMarkForVerification Action = "mark_for_verification"
	ActionVerifyCompletion    Action = "verify_completion"
	ActionCancel              Action = "cancel"
)

// AllActions lists the state machine actions in table order.
func AllActions() []Action {
	return []Action{
		ActionAccept,
		ActionMarkOngoing,
		ActionMarkForVerification,
		ActionVerifyCompletion,
		ActionCancel,
	}
}

// Guard describes who may request an action.
//
// An actor passes when their role is listed (and, with RequireAssignee, they
// are the current assignee), or when AllowCreator is set and they opened the
// ticket.
type Guard struct {
	Roles           []authorization.Role
	RequireAssignee bool
	AllowCreator    bool
}

// Allows evaluates g for actor against t.
func (g Guard) Allows(t *Ticket, actor authorization.Actor) bool {
	if actor.Role.In(g.Roles...) && (!g.RequireAssignee || t.IsAssignee(actor.AccountID)) {
		return true
	}
	return g.AllowCreator && t.IsCreator(actor.AccountID)
}

// Transition is one edge of the state machine.
type Transition struct {
	From   vo.Status
	Action Action
	To     vo.Status
	Event  EventType
}

type edgeKey struct {
	from   vo.Status
	action Action
}

var officeRoles = []authorization.Role{authorization.RoleStaff, authorization.RoleAdmin}

var defaultGuards = map[Action]Guard{
	ActionAccept:              {Roles: officeRoles},
	ActionMarkOngoing:         {Roles: []authorization.Role{authorization.RoleOperator}, RequireAssignee: true},
	ActionMarkForVerification: {Roles: []authorization.Role{authorization.RoleOperator}, RequireAssignee: true},
	ActionVerifyCompletion:    {Roles: officeRoles},
	ActionCancel:              {Roles: officeRoles, AllowCreator: true},
}

var strictEdges = []Transition{
	{vo.StatusRequested, ActionAccept, vo.StatusOngoing, EventAccepted},
	{vo.StatusOngoing, ActionAccept, vo.StatusOngoing, EventAccepted},
	{vo.StatusOngoing, ActionMarkOngoing, vo.StatusOngoing, EventOngoing},
	{vo.StatusOngoing, ActionMarkForVerification, vo.StatusForVerification, EventForVerification},
	{vo.StatusForVerification, ActionVerifyCompletion, vo.StatusCompleted, EventCompleted},
	{vo.StatusRequested, ActionCancel, vo.StatusCancelled, EventCancelled},
	{vo.StatusOngoing, ActionCancel, vo.StatusCancelled, EventCancelled},
	{vo.StatusForVerification, ActionCancel, vo.StatusCancelled, EventCancelled},
}

// permissiveVerificationEdges let staff close a ticket without the operator
// hand-off.
var permissiveVerificationEdges = []Transition{
	{vo.StatusRequested, ActionVerifyCompletion, vo.StatusCompleted, EventCompleted},
	{vo.StatusOngoing, ActionVerifyCompletion, vo.StatusCompleted, EventCompleted},
}

// reworkEdges let staff send a ticket under verification back to the field.
var reworkEdges = []Transition{
	{vo.StatusForVerification, ActionAccept, vo.StatusOngoing, EventAccepted},
}

// RemarksPolicy controls who may annotate a ticket.
type RemarksPolicy string

const (
	// RemarksAnyone lets any authenticated account add remarks.
	RemarksAnyone RemarksPolicy = "any"
	// RemarksParticipants limits remarks to the creator, the assignee, staff and admins.
	RemarksParticipants RemarksPolicy = "participants"
)

// Workflow is the ticket state machine.
type Workflow struct {
	edges   map[edgeKey]Transition
	guards  map[Action]Guard
	remarks RemarksPolicy
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithPermissiveVerification allows completion from Requested and On-going.
func WithPermissiveVerification() Option {
	return func(w *Workflow) {
		for _, tr := range permissiveVerificationEdges {
			w.edges[edgeKey{tr.From, tr.Action}] = tr
		}
	}
}

// WithRework allows accept on a ticket awaiting verification, returning it
// to On-going.
func WithRework() Option {
	return func(w *Workflow) {
		for _, tr := range reworkEdges {
			w.edges[edgeKey{tr.From, tr.Action}] = tr
		}
	}
}

// WithRemarksPolicy sets who may add remarks. Unknown values keep RemarksAnyone.
func WithRemarksPolicy(p RemarksPolicy) Option {
	return func(w *Workflow) {
		if p == RemarksParticipants {
			w.remarks = p
		}
	}
}

// NewWorkflow builds the strict state machine and applies opts.
func NewWorkflow(opts ...Option) *Workflow {
	w := &Workflow{
		edges:   make(map[edgeKey]Transition, len(strictEdges)+len(permissiveVerificationEdges)+len(reworkEdges)),
		guards:  make(map[Action]Guard, len(defaultGuards)),
		remarks: RemarksAnyone,
	}
	for _, tr := range strictEdges {
		w.edges[edgeKey{tr.From, tr.Action}] = tr
	}
	for action, g := range defaultGuards {
		w.guards[action] = g
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Guard returns the guard of action.
func (w *Workflow) Guard(action Action) (Guard, bool) {
	g, ok := w.guards[action]
	return g, ok
}

// Edge looks up the transition for action from status.
func (w *Workflow) Edge(from vo.Status, action Action) (Transition, bool) {
	tr, ok := w.edges[edgeKey{from, action}]
	return tr, ok
}

// Transitions returns every edge ordered by source status, then action.
func (w *Workflow) Transitions() []Transition {
	out := make([]Transition, 0, len(w.edges))
	for _, tr := range w.edges {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return strings.Compare(string(out[i].Action), string(out[j].Action)) < 0
	})
	return out
}

// RemarksPolicy returns the active remarks policy.
func (w *Workflow) RemarksPolicy() RemarksPolicy {
	return w.remarks
}

// Decide checks actor against the action guard, then looks up the edge from
// the ticket's current status. Guard failures win over missing edges.
func (w *Workflow) Decide(t *Ticket, actor authorization.Actor, action Action) (Transition, error) {
	g, ok := w.guards[action]
	if !ok {
		return Transition{}, ErrUnknownAction
	}
	if !g.Allows(t, actor) {
		return Transition{}, ErrForbidden
	}
	tr, ok := w.edges[edgeKey{t.status, action}]
	if !ok {
		return Transition{}, ErrInvalidTransition
	}
	return tr, nil
}

// AcceptParams carries the accept/assign inputs.
type AcceptParams struct {
	AssignTo uint
	Priority *vo.Priority
	DueDate  *time.Time
}

// Accept assigns t and moves it to On-going. The event is REASSIGNED when a
// different account held the ticket before.
func (w *Workflow) Accept(t *Ticket, actor authorization.Actor, p AcceptParams, now time.Time) (*Event, error) {
	if p.DueDate == nil || p.DueDate.IsZero() {
		return nil, ErrDueDateRequired
	}
	if p.AssignTo == 0 {
		return nil, ErrAssigneeRequired
	}
	tr, err := w.Decide(t, actor, ActionAccept)
	if err != nil {
		return nil, err
	}

	eventType := tr.Event
	payload := map[string]any{
		PayloadAssignee: p.AssignTo,
		PayloadDueDate:  p.DueDate.UTC().Format(time.RFC3339),
	}
	if prev := t.assignedTo; prev != nil {
		payload[PayloadPreviousAssignee] = *prev
		if *prev != p.AssignTo {
			eventType = EventReassigned
		}
	}
	if p.Priority != nil {
		payload[PayloadPriority] = p.Priority.String()
		priority := *p.Priority
		t.priority = &priority
	}
	due := p.DueDate.UTC()
	t.dueDate = &due
	t.assign(p.AssignTo)

	return w.apply(t, actor, tr, eventType, now, payload), nil
}

// MarkOngoing re-affirms that the assigned operator is working the ticket.
func (w *Workflow) MarkOngoing(t *Ticket, actor authorization.Actor, now time.Time) (*Event, error) {
	return w.simple(t, actor, ActionMarkOngoing, now)
}

// MarkForVerification hands the ticket back to the office for review.
func (w *Workflow) MarkForVerification(t *Ticket, actor authorization.Actor, now time.Time) (*Event, error) {
	return w.simple(t, actor, ActionMarkForVerification, now)
}

// VerifyCompletion closes the ticket as Completed.
func (w *Workflow) VerifyCompletion(t *Ticket, actor authorization.Actor, now time.Time) (*Event, error) {
	return w.simple(t, actor, ActionVerifyCompletion, now)
}

// Cancel closes the ticket as Cancelled.
func (w *Workflow) Cancel(t *Ticket, actor authorization.Actor, now time.Time) (*Event, error) {
	return w.simple(t, actor, ActionCancel, now)
}

func (w *Workflow) simple(t *Ticket, actor authorization.Actor, action Action, now time.Time) (*Event, error) {
	tr, err := w.Decide(t, actor, action)
	if err != nil {
		return nil, err
	}
	return w.apply(t, actor, tr, tr.Event, now, nil), nil
}

func (w *Workflow) apply(t *Ticket, actor authorization.Actor, tr Transition, eventType EventType, now time.Time, payload map[string]any) *Event {
	at := t.stamp(now)
	from := t.status
	t.moveTo(tr.To, at)
	return newEvent(t, eventType, actor.AccountID, &from, at, payload)
}

// CanRemark reports whether actor may annotate t under the active policy.
func (w *Workflow) CanRemark(t *Ticket, actor authorization.Actor) bool {
	if w.remarks == RemarksAnyone {
		return true
	}
	return actor.Role.IsStaffOrAdmin() || t.IsCreator(actor.AccountID) || t.IsAssignee(actor.AccountID)
}

// AddRemark appends a timestamped remark without changing status.
func (w *Workflow) AddRemark(t *Ticket, actor authorization.Actor, text string, now time.Time) (*Event, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrRemarksRequired
	}
	if !w.CanRemark(t, actor) {
		return nil, ErrForbidden
	}
	at := t.stamp(now)
	from := t.status
	t.appendRemark(text, at)
	return newEvent(t, EventRemarkAdded, actor.AccountID, &from, at, map[string]any{PayloadRemark: text}), nil
}

// ReplayStatus folds events in (created_at, id) order. Each event moves the
// status only if its edge exists from the status reached so far. The first
// event must be REQUESTED; remarks never move the status.
func (w *Workflow) ReplayStatus(events []*Event) (vo.Status, bool) {
	ordered := make([]*Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].createdAt.Equal(ordered[j].createdAt) {
			return ordered[i].createdAt.Before(ordered[j].createdAt)
		}
		return ordered[i].id < ordered[j].id
	})

	if len(ordered) == 0 || ordered[0].eventType != EventRequested {
		return 0, false
	}

	status := vo.StatusRequested
	for _, e := range ordered[1:] {
		action, ok := actionOf(e.eventType)
		if !ok {
			continue
		}
		if tr, ok := w.edges[edgeKey{status, action}]; ok {
			status = tr.To
		}
	}
	return status, true
}

func actionOf(e EventType) (Action, bool) {
	switch e {
	case EventAccepted, EventReassigned:
		return ActionAccept, true
	case EventOngoing:
		return ActionMarkOngoing, true
	case EventForVerification:
		return ActionMarkForVerification, true
	case EventCompleted:
		return ActionVerifyCompletion, true
	case EventCancelled:
		return ActionCancel, true
	}
	return "", false
}
