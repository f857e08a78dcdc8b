package rbac

// CoreIdentityPermissions covers the identity tab, one capability per field.
type CoreIdentityPermissions struct {
	FullName      Capability `json:"fullName"`
	Alias         Capability `json:"alias"`
	NricFin       Capability `json:"nricFin"`
	IdentityNo    Capability `json:"identityNo"`
	CardType      Capability `json:"cardType"`
	Nationality   Capability `json:"nationality"`
	DateOfBirth   Capability `json:"dateOfBirth"`
	Gender        Capability `json:"gender"`
	Race          Capability `json:"race"`
	Religion      Capability `json:"religion"`
	MaritalStatus Capability `json:"maritalStatus"`
}

// EmploymentPermissions covers the employment tab. EmployeeID,
// RetirementYear and RetirementDate are system-derived and never exceed
// read-only, for any role.
type EmploymentPermissions struct {
	WorkEmail        Capability `json:"workEmail"`
	EmployeeID       Capability `json:"employeeId"`
	Department       Capability `json:"department"`
	JobTitle         Capability `json:"jobTitle"`
	EmploymentDate   Capability `json:"employmentDate"`
	RetirementAge    Capability `json:"retirementAge"`
	RetirementYear   Capability `json:"retirementYear"`
	RetirementDate   Capability `json:"retirementDate"`
	ReEmploymentDate Capability `json:"reEmploymentDate"`
	EmploymentStatus Capability `json:"employmentStatus"`
}

// ContactPermissions covers the contact tab.
type ContactPermissions struct {
	ContactNo       Capability `json:"contactNo"`
	HomeNo          Capability `json:"homeNo"`
	PersonalEmail   Capability `json:"personalEmail"`
	MailingAddress  Capability `json:"mailingAddress"`
	OverseasAddress Capability `json:"overseasAddress"`
}

// BankingPermissions gates the banking tab as a unit. When Visible is
// false the tab must not be rendered at all.
type BankingPermissions struct {
	Visible   bool       `json:"visible"`
	AllFields Capability `json:"allFields"`
}

// GroupPermissions gates a tab whose fields share one capability.
type GroupPermissions struct {
	AllFields Capability `json:"allFields"`
}

// TabPermissions is the full capability table for one (role, self) pair.
// It is derived fresh on every Resolve call and never mutated.
type TabPermissions struct {
	CoreIdentity      CoreIdentityPermissions `json:"coreIdentity"`
	Employment        EmploymentPermissions   `json:"employment"`
	Contact           ContactPermissions      `json:"contact"`
	Banking           BankingPermissions      `json:"banking"`
	Qualifications    GroupPermissions        `json:"qualifications"`
	EmergencyContacts GroupPermissions        `json:"emergencyContacts"`
}

// Resolve maps a role and profile ownership to the capability table.
// It is a pure function: identical inputs yield identical tables, and
// unrecognized roles fall through to the deny-everything table.
func Resolve(role Role, isSelfProfile bool) TabPermissions {
	switch role {
	case RoleHRAdmin:
		return hrAdminPermissions()
	case RoleManager:
		return managerPermissions()
	case RoleEmployee:
		return employeePermissions(isSelfProfile)
	default:
		return employeePermissions(false)
	}
}

func hrAdminPermissions() TabPermissions {
	return TabPermissions{
		CoreIdentity: CoreIdentityPermissions{
			FullName:      fullAccess,
			Alias:         fullAccess,
			NricFin:       fullAccess,
			IdentityNo:    fullAccess,
			CardType:      fullAccess,
			Nationality:   fullAccess,
			DateOfBirth:   fullAccess,
			Gender:        fullAccess,
			Race:          fullAccess,
			Religion:      fullAccess,
			MaritalStatus: fullAccess,
		},
		Employment: EmploymentPermissions{
			WorkEmail:        fullAccess,
			EmployeeID:       readOnly, // generated once at creation
			Department:       fullAccess,
			JobTitle:         fullAccess,
			EmploymentDate:   fullAccess,
			RetirementAge:    fullAccess,
			RetirementYear:   readOnly, // derived
			RetirementDate:   readOnly, // derived
			ReEmploymentDate: fullAccess,
			EmploymentStatus: fullAccess,
		},
		Contact: ContactPermissions{
			ContactNo:       fullAccess,
			HomeNo:          fullAccess,
			PersonalEmail:   fullAccess,
			MailingAddress:  fullAccess,
			OverseasAddress: fullAccess,
		},
		Banking:           BankingPermissions{Visible: true, AllFields: fullAccess},
		Qualifications:    GroupPermissions{AllFields: fullAccess},
		EmergencyContacts: GroupPermissions{AllFields: fullAccess},
	}
}

func managerPermissions() TabPermissions {
	return TabPermissions{
		CoreIdentity: CoreIdentityPermissions{
			FullName:      readOnly,
			Alias:         readOnly,
			NricFin:       maskedRead,
			IdentityNo:    maskedRead,
			CardType:      readOnly,
			Nationality:   readOnly,
			DateOfBirth:   readOnly,
			Gender:        readOnly,
			Race:          readOnly,
			Religion:      readOnly,
			MaritalStatus: readOnly,
		},
		Employment: EmploymentPermissions{
			WorkEmail:        readOnly,
			EmployeeID:       readOnly,
			Department:       readOnly,
			JobTitle:         readOnly,
			EmploymentDate:   readOnly,
			RetirementAge:    readOnly,
			RetirementYear:   readOnly,
			RetirementDate:   readOnly,
			ReEmploymentDate: readOnly,
			EmploymentStatus: readOnly,
		},
		Contact: ContactPermissions{
			ContactNo:       readOnly,
			HomeNo:          readOnly,
			PersonalEmail:   readOnly,
			MailingAddress:  readOnly,
			OverseasAddress: readOnly,
		},
		// Banking is hidden from managers entirely, not just read-only.
		Banking:           BankingPermissions{Visible: false, AllFields: noAccess},
		Qualifications:    GroupPermissions{AllFields: readOnly},
		EmergencyContacts: GroupPermissions{AllFields: readOnly},
	}
}

func employeePermissions(isSelfProfile bool) TabPermissions {
	if !isSelfProfile {
		// A foreign profile is completely off limits for the employee role.
		return TabPermissions{
			Banking: BankingPermissions{Visible: false, AllFields: noAccess},
		}
	}

	return TabPermissions{
		CoreIdentity: CoreIdentityPermissions{
			FullName:      readOnly,
			Alias:         fullAccess,
			NricFin:       readOnly,
			IdentityNo:    readOnly,
			CardType:      readOnly,
			Nationality:   readOnly,
			DateOfBirth:   readOnly,
			Gender:        readOnly,
			Race:          readOnly,
			Religion:      fullAccess,
			MaritalStatus: fullAccess,
		},
		Employment: EmploymentPermissions{
			WorkEmail:        readOnly,
			EmployeeID:       readOnly,
			Department:       readOnly,
			JobTitle:         readOnly,
			EmploymentDate:   readOnly,
			RetirementAge:    readOnly,
			RetirementYear:   readOnly,
			RetirementDate:   readOnly,
			ReEmploymentDate: readOnly,
			EmploymentStatus: readOnly,
		},
		Contact: ContactPermissions{
			ContactNo:       fullAccess,
			HomeNo:          fullAccess,
			PersonalEmail:   fullAccess,
			MailingAddress:  fullAccess,
			OverseasAddress: fullAccess,
		},
		// Own banking details are visible but changes go through a
		// request workflow, never direct edits.
		Banking:           BankingPermissions{Visible: true, AllFields: readOnly},
		Qualifications:    GroupPermissions{AllFields: fullAccess},
		EmergencyContacts: GroupPermissions{AllFields: fullAccess},
	}
}
