package permission

import (
	"sort"

	"github.com/ecobarangay/wasteops/internal/domain/maintenance"
	"github.com/ecobarangay/wasteops/internal/shared/authorization"
)

const (
	ResourceTicket       = "maintenance_ticket"
	ResourceNotification = "notification"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionRemark = "remark"
	ActionAttach = "attach"
	ActionUpdate = "update"
)

// Policy grants Role the right to attempt Action on Resource.
type Policy struct {
	Role     authorization.Role
	Resource string
	Action   string
}

func (p Policy) rule() []string {
	return []string{p.Role.String(), p.Resource, p.Action}
}

// Policies derives the route-level grants from the workflow guards. A role is
// granted a workflow action when the guard lists it, or when the guard lets
// creators act and the role may create tickets.
func Policies(wf *maintenance.Workflow) []Policy {
	seen := map[Policy]struct{}{}
	add := func(role authorization.Role, resource, action string) {
		seen[Policy{Role: role, Resource: resource, Action: action}] = struct{}{}
	}

	for _, action := range maintenance.AllActions() {
		g, ok := wf.Guard(action)
		if !ok {
			continue
		}
		for _, role := range g.Roles {
			add(role, ResourceTicket, string(action))
		}
		if g.AllowCreator {
			for _, role := range maintenance.CreatorRoles() {
				add(role, ResourceTicket, string(action))
			}
		}
	}

	for _, role := range maintenance.CreatorRoles() {
		add(role, ResourceTicket, ActionCreate)
	}

	for _, role := range authorization.AllRoles() {
		add(role, ResourceTicket, ActionRead)
		add(role, ResourceTicket, ActionAttach)
		add(role, ResourceNotification, ActionRead)
		add(role, ResourceNotification, ActionUpdate)
		if wf.RemarksPolicy() == maintenance.RemarksAnyone || role.IsStaffOrAdmin() || role.In(maintenance.CreatorRoles()...) {
			add(role, ResourceTicket, ActionRemark)
		}
	}

	out := make([]Policy, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Role < out[j].Role
	})
	return out
}
