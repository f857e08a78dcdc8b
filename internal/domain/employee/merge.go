package employee

import "octomate/internal/domain/rbac"

// MergeWritable copies from src into dst only the fields the capability
// table allows the viewer to write. Every field is addressed by a typed
// assignment; there is no path-string traversal, so a field outside the
// table can never be smuggled in. System fields (id, employeeId, the
// derived retirement pair, timestamps) are never merged.
func MergeWritable(dst *Employee, src Employee, perms rbac.TabPermissions) {
	ci := perms.CoreIdentity
	if ci.FullName.Write() {
		dst.FullName = src.FullName
	}
	if ci.Alias.Write() {
		dst.Alias = src.Alias
	}
	if ci.NricFin.Write() {
		dst.NricFin = src.NricFin
	}
	if ci.IdentityNo.Write() {
		dst.IdentityNo = src.IdentityNo
	}
	if ci.CardType.Write() {
		dst.CardType = src.CardType
	}
	if ci.Nationality.Write() {
		dst.Nationality = src.Nationality
	}
	if ci.DateOfBirth.Write() {
		dst.DateOfBirth = src.DateOfBirth
	}
	if ci.Gender.Write() {
		dst.Gender = src.Gender
	}
	if ci.Race.Write() {
		dst.Race = src.Race
	}
	if ci.Religion.Write() {
		dst.Religion = src.Religion
	}
	if ci.MaritalStatus.Write() {
		dst.MaritalStatus = src.MaritalStatus
	}
	if ci.FullName.Write() {
		// Photo and PDPA metadata ride with full administrative access.
		dst.PhotoURL = src.PhotoURL
		dst.PDPAConsent = src.PDPAConsent
		dst.PDPAConsentDate = src.PDPAConsentDate
	}

	em := perms.Employment
	if em.WorkEmail.Write() {
		dst.WorkEmail = src.WorkEmail
	}
	if em.Department.Write() {
		dst.Department = src.Department
	}
	if em.JobTitle.Write() {
		dst.JobTitle = src.JobTitle
	}
	if em.EmploymentDate.Write() {
		dst.EmploymentDate = src.EmploymentDate
	}
	if em.RetirementAge.Write() {
		dst.RetirementAge = src.RetirementAge
	}
	if em.ReEmploymentDate.Write() {
		dst.ReEmploymentDate = src.ReEmploymentDate
	}
	if em.EmploymentStatus.Write() {
		dst.EmploymentStatus = src.EmploymentStatus
	}

	co := perms.Contact
	if co.ContactNo.Write() {
		dst.ContactNo = src.ContactNo
	}
	if co.HomeNo.Write() {
		dst.HomeNo = src.HomeNo
	}
	if co.PersonalEmail.Write() {
		dst.PersonalEmail = src.PersonalEmail
	}
	if co.MailingAddress.Write() {
		dst.MailingAddress = cloneAddress(src.MailingAddress)
	}
	if co.OverseasAddress.Write() {
		dst.OverseasAddress = cloneOverseas(src.OverseasAddress)
	}

	if perms.Banking.Visible && perms.Banking.AllFields.Write() {
		dst.BankingInfo = cloneBanking(src.BankingInfo)
	}

	if perms.Qualifications.AllFields.Write() {
		dst.HighestQualification = src.HighestQualification
		dst.EducationHistory = cloneEducation(src.EducationHistory)
		dst.WorkExperience = cloneExperience(src.WorkExperience)
	}

	if perms.EmergencyContacts.AllFields.Write() {
		dst.EmergencyContact1 = cloneContact(src.EmergencyContact1)
		dst.EmergencyContact2 = cloneContact(src.EmergencyContact2)
	}
}

func cloneAddress(a *Address) *Address {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

func cloneOverseas(a *OverseasAddress) *OverseasAddress {
	if a == nil {
		return nil
	}
	out := *a
	return &out
}

func cloneBanking(b *BankingInfo) *BankingInfo {
	if b == nil {
		return nil
	}
	out := *b
	return &out
}

func cloneContact(c *EmergencyContact) *EmergencyContact {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

func cloneEducation(in []Education) []Education {
	if in == nil {
		return nil
	}
	out := make([]Education, len(in))
	copy(out, in)
	return out
}

func cloneExperience(in []WorkExperience) []WorkExperience {
	if in == nil {
		return nil
	}
	out := make([]WorkExperience, len(in))
	copy(out, in)
	return out
}
