// Package authorization defines the caller identity resolved at the request
// boundary: an account id and a typed role.
package authorization

import (
	"fmt"
	"strings"
)

// Role is the account role as issued by the identity provider. The numeric
// values are stable and travel inside access tokens.
type Role uint8

const (
	RoleUnknown   Role = 0
	RoleAdmin     Role = 1
	RoleStaff     Role = 2
	RoleOperator  Role = 3
	RoleHousehold Role = 4
)

var roleNames = map[Role]string{
	RoleAdmin:     "admin",
	RoleStaff:     "staff",
	RoleOperator:  "operator",
	RoleHousehold: "household",
}

// AllRoles lists every valid role in id order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleStaff, RoleOperator, RoleHousehold}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaffOrAdmin reports whether r belongs to the barangay office.
func (r Role) IsStaffOrAdmin() bool {
	return r == RoleAdmin || r == RoleStaff
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

// RoleFromID converts the numeric claim value into a Role.
func RoleFromID(id int) (Role, error) {
	if id < 0 || id > 255 {
		return RoleUnknown, fmt.Errorf("invalid role id %d", id)
	}
	role := Role(id)
	if !role.IsValid() {
		return RoleUnknown, fmt.Errorf("invalid role id %d", id)
	}
	return role, nil
}

// ParseRole resolves a role by name, case-insensitively.
func ParseRole(s string) (Role, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for role, roleName := range roleNames {
		if roleName == name {
			return role, nil
		}
	}
	return RoleUnknown, fmt.Errorf("invalid role %q", s)
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	AccountID uint
	Role      Role
}

func (a Actor) IsValid() bool {
	return a.AccountID != 0 && a.Role.IsValid()
}
