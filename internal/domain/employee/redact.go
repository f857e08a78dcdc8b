package employee

import (
	"octomate/internal/domain/rbac"
	"octomate/internal/validate"
)

// Redact returns a copy of emp carrying only what the capability table
// lets the viewer read. Masked identity numbers leave here already
// masked; the stored record is never touched. Banking is removed
// entirely when the tab is not visible. The response boundary is the
// render boundary for an API, so nothing unreadable may survive it.
func Redact(emp Employee, perms rbac.TabPermissions) Employee {
	out := emp

	ci := perms.CoreIdentity
	if !ci.FullName.Read() {
		out.FullName = ""
		out.PhotoURL = ""
	}
	if !ci.Alias.Read() {
		out.Alias = ""
	}
	switch {
	case !ci.NricFin.Read():
		out.NricFin = ""
	case ci.NricFin.Masked():
		out.NricFin = validate.MaskNRIC(out.NricFin, false)
	}
	switch {
	case !ci.IdentityNo.Read():
		out.IdentityNo = ""
	case ci.IdentityNo.Masked():
		out.IdentityNo = validate.MaskNRIC(out.IdentityNo, false)
	}
	if !ci.CardType.Read() {
		out.CardType = ""
	}
	if !ci.Nationality.Read() {
		out.Nationality = ""
	}
	if !ci.DateOfBirth.Read() {
		out.DateOfBirth = ""
	}
	if !ci.Gender.Read() {
		out.Gender = ""
	}
	if !ci.Race.Read() {
		out.Race = ""
	}
	if !ci.Religion.Read() {
		out.Religion = ""
	}
	if !ci.MaritalStatus.Read() {
		out.MaritalStatus = ""
	}

	em := perms.Employment
	if !em.WorkEmail.Read() {
		out.WorkEmail = ""
	}
	if !em.EmployeeID.Read() {
		out.EmployeeID = ""
	}
	if !em.Department.Read() {
		out.Department = ""
	}
	if !em.JobTitle.Read() {
		out.JobTitle = ""
	}
	if !em.EmploymentDate.Read() {
		out.EmploymentDate = ""
	}
	if !em.RetirementAge.Read() {
		out.RetirementAge = 0
	}
	if !em.RetirementYear.Read() {
		out.RetirementYear = 0
	}
	if !em.RetirementDate.Read() {
		out.RetirementDate = ""
	}
	if !em.ReEmploymentDate.Read() {
		out.ReEmploymentDate = ""
	}
	if !em.EmploymentStatus.Read() {
		out.EmploymentStatus = ""
	}

	co := perms.Contact
	if !co.ContactNo.Read() {
		out.ContactNo = ""
	}
	if !co.HomeNo.Read() {
		out.HomeNo = ""
	}
	if !co.PersonalEmail.Read() {
		out.PersonalEmail = ""
	}
	if !co.MailingAddress.Read() {
		out.MailingAddress = nil
	}
	if !co.OverseasAddress.Read() {
		out.OverseasAddress = nil
	}

	if !perms.Banking.Visible || !perms.Banking.AllFields.Read() {
		out.BankingInfo = nil
	}

	if !perms.Qualifications.AllFields.Read() {
		out.HighestQualification = ""
		out.EducationHistory = nil
		out.WorkExperience = nil
	}

	if !perms.EmergencyContacts.AllFields.Read() {
		out.EmergencyContact1 = nil
		out.EmergencyContact2 = nil
	}

	return out
}
