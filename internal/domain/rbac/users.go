package rbac

// User is one of the built-in demo identities, one per role. There is
// no real authentication in this system; selecting a role selects the
// matching user.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	EmployeeID string `json:"employeeId,omitempty"`
}

// DemoEmployeeRecordID is the seed roster record owned by the demo
// employee user, so the self-service paths have a profile to act on.
const DemoEmployeeRecordID = "emp-003"

var demoUsers = map[Role]User{
	RoleHRAdmin: {
		ID:    "user-hr-admin",
		Name:  "Sarah Lim",
		Email: "sarah.lim@octomate.example",
		Role:  RoleHRAdmin,
	},
	RoleManager: {
		ID:    "user-manager",
		Name:  "David Tan",
		Email: "david.tan@octomate.example",
		Role:  RoleManager,
	},
	RoleEmployee: {
		ID:         "user-employee",
		Name:       "Nurul Binte Rahman",
		Email:      "nurul.rahman@octomate.example",
		Role:       RoleEmployee,
		EmployeeID: DemoEmployeeRecordID,
	},
}

// UserForRole returns the demo user acting under the given role.
func UserForRole(role Role) (User, bool) {
	user, ok := demoUsers[role]
	return user, ok
}
