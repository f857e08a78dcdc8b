package employee

import (
	"fmt"

	"octomate/internal/domain/rbac"
	"octomate/internal/validate"
)

// FieldView is one rendered form field: the display string after
// capability application, plus the flags the form needs.
type FieldView struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Editable bool   `json:"editable"`
	Masked   bool   `json:"masked"`
}

// BankingView is the banking tab. Present only when the tab is visible.
type BankingView struct {
	Editable bool        `json:"editable"`
	Fields   []FieldView `json:"fields"`
}

// QualificationsView carries the education and experience sub-records
// verbatim when readable; they have no per-field masking.
type QualificationsView struct {
	Editable             bool             `json:"editable"`
	HighestQualification string           `json:"highestQualification,omitempty"`
	EducationHistory     []Education      `json:"educationHistory"`
	WorkExperience       []WorkExperience `json:"workExperience"`
}

type EmergencyContactsView struct {
	Editable bool              `json:"editable"`
	Contact1 *EmergencyContact `json:"contact1,omitempty"`
	Contact2 *EmergencyContact `json:"contact2,omitempty"`
}

// ProfileView is the per-tab rendering of one record for one viewer.
// A nil Banking means the tab must not be rendered at all.
type ProfileView struct {
	CoreIdentity      []FieldView            `json:"coreIdentity"`
	Employment        []FieldView            `json:"employment"`
	Contact           []FieldView            `json:"contact"`
	Banking           *BankingView           `json:"banking,omitempty"`
	Qualifications    *QualificationsView    `json:"qualifications,omitempty"`
	EmergencyContacts *EmergencyContactsView `json:"emergencyContacts,omitempty"`
}

func maskIdentity(v string) string { return validate.MaskNRIC(v, false) }
func maskAccount(v string) string  { return validate.MaskBankAccount(v) }

func field(name, value string, cap rbac.Capability, editing bool, mask rbac.MaskFunc) FieldView {
	return FieldView{
		Name:     name,
		Value:    rbac.DisplayValue(value, cap, mask),
		Editable: rbac.Editable(cap, editing),
		Masked:   cap.Masked(),
	}
}

// RenderProfile applies the capability table to a record, producing the
// tab views the form renders. Masking happens here and only here; the
// record itself is never rewritten.
func RenderProfile(emp Employee, perms rbac.TabPermissions, editing bool) ProfileView {
	ci := perms.CoreIdentity
	em := perms.Employment
	co := perms.Contact

	view := ProfileView{
		CoreIdentity: []FieldView{
			field("fullName", emp.FullName, ci.FullName, editing, nil),
			field("alias", emp.Alias, ci.Alias, editing, nil),
			field("nricFin", emp.NricFin, ci.NricFin, editing, maskIdentity),
			field("identityNo", emp.IdentityNo, ci.IdentityNo, editing, maskIdentity),
			field("cardType", emp.CardType, ci.CardType, editing, nil),
			field("nationality", emp.Nationality, ci.Nationality, editing, nil),
			field("dateOfBirth", emp.DateOfBirth, ci.DateOfBirth, editing, nil),
			field("gender", emp.Gender, ci.Gender, editing, nil),
			field("race", emp.Race, ci.Race, editing, nil),
			field("religion", emp.Religion, ci.Religion, editing, nil),
			field("maritalStatus", emp.MaritalStatus, ci.MaritalStatus, editing, nil),
		},
		Employment: []FieldView{
			field("workEmail", emp.WorkEmail, em.WorkEmail, editing, nil),
			field("employeeId", emp.EmployeeID, em.EmployeeID, editing, nil),
			field("department", emp.Department, em.Department, editing, nil),
			field("jobTitle", emp.JobTitle, em.JobTitle, editing, nil),
			field("employmentDate", emp.EmploymentDate, em.EmploymentDate, editing, nil),
			field("retirementAge", intValue(emp.RetirementAge), em.RetirementAge, editing, nil),
			field("retirementYear", intValue(emp.RetirementYear), em.RetirementYear, editing, nil),
			field("retirementDate", emp.RetirementDate, em.RetirementDate, editing, nil),
			field("reEmploymentDate", emp.ReEmploymentDate, em.ReEmploymentDate, editing, nil),
			field("employmentStatus", emp.EmploymentStatus, em.EmploymentStatus, editing, nil),
		},
		Contact: []FieldView{
			field("contactNo", emp.ContactNo, co.ContactNo, editing, nil),
			field("homeNo", emp.HomeNo, co.HomeNo, editing, nil),
			field("personalEmail", emp.PersonalEmail, co.PersonalEmail, editing, nil),
			field("mailingAddress", addressValue(emp.MailingAddress), co.MailingAddress, editing, nil),
			field("overseasAddress", overseasValue(emp.OverseasAddress), co.OverseasAddress, editing, nil),
		},
	}

	if perms.Banking.Visible {
		view.Banking = renderBanking(emp.BankingInfo, perms.Banking, editing)
	}

	if perms.Qualifications.AllFields.Read() {
		view.Qualifications = &QualificationsView{
			Editable:             rbac.Editable(perms.Qualifications.AllFields, editing),
			HighestQualification: emp.HighestQualification,
			EducationHistory:     emp.EducationHistory,
			WorkExperience:       emp.WorkExperience,
		}
	}

	if perms.EmergencyContacts.AllFields.Read() {
		view.EmergencyContacts = &EmergencyContactsView{
			Editable: rbac.Editable(perms.EmergencyContacts.AllFields, editing),
			Contact1: emp.EmergencyContact1,
			Contact2: emp.EmergencyContact2,
		}
	}

	return view
}

func renderBanking(info *BankingInfo, perms rbac.BankingPermissions, editing bool) *BankingView {
	cap := perms.AllFields
	var b BankingInfo
	if info != nil {
		b = *info
	}
	return &BankingView{
		Editable: rbac.Editable(cap, editing),
		Fields: []FieldView{
			field("namePerBankAccount", b.NamePerBankAccount, cap, editing, nil),
			field("bankCountry", b.BankCountry, cap, editing, nil),
			field("bankEntity", b.BankEntity, cap, editing, nil),
			field("branchCode", b.BranchCode, cap, editing, nil),
			field("accountNumber", b.AccountNumber, cap, editing, maskAccount),
			field("bicSwiftCode", b.BicSwiftCode, cap, editing, nil),
		},
	}
}

func intValue(v int) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

func addressValue(a *Address) string {
	if a == nil {
		return ""
	}
	out := a.AddressLine1
	if a.AddressLine2 != "" {
		out += ", " + a.AddressLine2
	}
	if a.PostalCode != "" {
		out += ", Singapore " + a.PostalCode
	}
	return out
}

func overseasValue(a *OverseasAddress) string {
	if a == nil {
		return ""
	}
	out := a.AddressLine
	if a.PostalCode != "" {
		out += ", " + a.PostalCode
	}
	if a.Country != "" {
		out += ", " + a.Country
	}
	return out
}
