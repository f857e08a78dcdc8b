// Package employee holds the roster domain: the profile record with its
// six sections, the derived-field rules, and the permission-aware
// merge/redact/render helpers the transport layer composes.
package employee

// Enumerations used by the profile forms. Values are stored as their
// display strings.
var (
	CardTypes = []string{"NRIC", "FIN", "Passport", "Work Permit"}
	Genders   = []string{"Male", "Female", "Other"}
	Races     = []string{"Chinese", "Malay", "Indian", "Eurasian", "Others"}
	Religions = []string{
		"Buddhism", "Christianity", "Islam", "Hinduism", "Taoism", "No Religion", "Others",
	}
	MaritalStatuses    = []string{"Single", "Married", "Divorced", "Widowed"}
	EmploymentStatuses = []string{"Active", "Resigned", "Retired", "Terminated", "On Leave", "Probation"}
	Relationships      = []string{"Spouse", "Parent", "Sibling", "Child", "Friend", "Other"}
	Qualifications     = []string{
		"PhD", "Masters", "Bachelors", "Diploma", "A-Level", "O-Level", "N-Level", "PSLE", "Others",
	}
)

type Education struct {
	ID            string `json:"id"`
	Institution   string `json:"institution"`
	Qualification string `json:"qualification"`
	FieldOfStudy  string `json:"fieldOfStudy"`
	YearObtained  int    `json:"yearObtained"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description"`
	IsCurrent   bool   `json:"isCurrent"`
}

type EmergencyContact struct {
	Name             string `json:"name"`
	MobileNumber     string `json:"mobileNumber"`
	Relationship     string `json:"relationship"`
	HomeOfficeNumber string `json:"homeOfficeNumber,omitempty"`
}

type BankingInfo struct {
	NamePerBankAccount string `json:"namePerBankAccount"`
	BankCountry        string `json:"bankCountry"`
	BankEntity         string `json:"bankEntity"`
	BranchCode         string `json:"branchCode"`
	AccountNumber      string `json:"accountNumber"`
	BicSwiftCode       string `json:"bicSwiftCode"`
}

type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PostalCode   string `json:"postalCode"`
}

type OverseasAddress struct {
	AddressLine string `json:"addressLine"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

// Employee is one roster record. ID is the immutable storage identity;
// EmployeeID is the human-facing code generated once at creation.
// RetirementYear and RetirementDate are derived from DateOfBirth and
// RetirementAge and are recomputed on every save, never set directly.
// All dates are stored as YYYY-MM-DD strings, timestamps as RFC3339.
type Employee struct {
	ID string `json:"id"`

	// Core identity
	FullName      string `json:"fullName"`
	Alias         string `json:"alias,omitempty"`
	NricFin       string `json:"nricFin"`
	IdentityNo    string `json:"identityNo"`
	CardType      string `json:"cardType"`
	Nationality   string `json:"nationality"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	Race          string `json:"race"`
	Religion      string `json:"religion"`
	MaritalStatus string `json:"maritalStatus"`
	PhotoURL      string `json:"photoUrl,omitempty"`

	// Employment and lifecycle
	WorkEmail        string `json:"workEmail"`
	EmployeeID       string `json:"employeeId"`
	Department       string `json:"department"`
	JobTitle         string `json:"jobTitle"`
	EmploymentDate   string `json:"employmentDate"`
	RetirementAge    int    `json:"retirementAge"`
	RetirementYear   int    `json:"retirementYear,omitempty"`
	RetirementDate   string `json:"retirementDate,omitempty"`
	ReEmploymentDate string `json:"reEmploymentDate,omitempty"`
	EmploymentStatus string `json:"employmentStatus"`

	// Contact
	ContactNo       string           `json:"contactNo,omitempty"`
	HomeNo          string           `json:"homeNo,omitempty"`
	PersonalEmail   string           `json:"personalEmail,omitempty"`
	MailingAddress  *Address         `json:"mailingAddress,omitempty"`
	OverseasAddress *OverseasAddress `json:"overseasAddress,omitempty"`

	// Banking
	BankingInfo *BankingInfo `json:"bankingInfo,omitempty"`

	// Qualifications and experience
	HighestQualification string           `json:"highestQualification,omitempty"`
	EducationHistory     []Education      `json:"educationHistory"`
	WorkExperience       []WorkExperience `json:"workExperience"`

	// Emergency contacts (at most two)
	EmergencyContact1 *EmergencyContact `json:"emergencyContact1,omitempty"`
	EmergencyContact2 *EmergencyContact `json:"emergencyContact2,omitempty"`

	// Metadata
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
	PDPAConsent     bool   `json:"pdpaConsent"`
	PDPAConsentDate string `json:"pdpaConsentDate,omitempty"`
}

// FilterOptions selects and orders a roster listing.
type FilterOptions struct {
	Search     string
	Department string
	Status     string
	SortBy     string // name, employeeId, department, status, updatedAt
	SortOrder  string // asc, desc
}

// DashboardStats are the aggregate counters shown on the landing page.
type DashboardStats struct {
	TotalEmployees      int            `json:"totalEmployees"`
	ActiveEmployees     int            `json:"activeEmployees"`
	PendingUpdates      int            `json:"pendingUpdates"`
	RecentChanges       int            `json:"recentChanges"`
	DepartmentBreakdown map[string]int `json:"departmentBreakdown"`
	StatusBreakdown     map[string]int `json:"statusBreakdown"`
}
