// Package rbac is the role-based access policy for employee profiles.
// Everything here is pure data and pure functions: a viewer's role and
// whether the profile is their own go in, a capability table comes out.
// Unknown inputs always resolve to no access.
package rbac

// Role is one of the three selectable demo roles.
type Role string

const (
	RoleHRAdmin  Role = "hr_admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleHRAdmin, RoleManager, RoleEmployee}

// ParseRole returns the matching role, or false for anything unknown.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleHRAdmin:
		return RoleHRAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleEmployee:
		return RoleEmployee, true
	default:
		return "", false
	}
}

// DisplayName is the human-facing label for a role.
func (r Role) DisplayName() string {
	switch r {
	case RoleHRAdmin:
		return "HR Administrator"
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee (Self-Service)"
	default:
		return "Unknown"
	}
}
