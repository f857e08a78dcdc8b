package rbac

// CanViewEmployee reports whether the viewer may open a profile at all.
// Employees may only view their own record.
func CanViewEmployee(role Role, employeeID, viewerEmployeeID string) bool {
	switch role {
	case RoleHRAdmin, RoleManager:
		return true
	case RoleEmployee:
		return viewerEmployeeID != "" && employeeID == viewerEmployeeID
	default:
		return false
	}
}

// CanEditEmployee reports whether the viewer may enter the edit flow.
// Managers are read-only; employees may edit only themselves, and the
// field-level table further restricts what self-service can touch.
func CanEditEmployee(role Role, employeeID, viewerEmployeeID string) bool {
	switch role {
	case RoleHRAdmin:
		return true
	case RoleEmployee:
		return viewerEmployeeID != "" && employeeID == viewerEmployeeID
	default:
		return false
	}
}

// CanViewAuditLogs restricts the audit trail to HR administrators.
func CanViewAuditLogs(role Role) bool {
	return role == RoleHRAdmin
}

// CanExportData allows profile exports for HR and managers. Manager
// exports still carry masked values only.
func CanExportData(role Role) bool {
	return role == RoleHRAdmin || role == RoleManager
}

// CanBulkImport restricts bulk roster import to HR administrators.
func CanBulkImport(role Role) bool {
	return role == RoleHRAdmin
}

// CanAddEmployee restricts record creation to HR administrators.
func CanAddEmployee(role Role) bool {
	return role == RoleHRAdmin
}

// CanDeleteEmployee restricts record deletion to HR administrators.
func CanDeleteEmployee(role Role) bool {
	return role == RoleHRAdmin
}
