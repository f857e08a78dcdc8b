package employee

// SeedRoster is the demo data loaded when the employee collection is
// absent or unreadable. Record emp-003 belongs to the demo self-service
// user. NRIC values carry valid checksums so the validators accept
// round-trips of seed data.
func SeedRoster() []Employee {
	return []Employee{
		{
			ID:            "emp-001",
			FullName:      "Tan Wei Ming",
			Alias:         "Wayne",
			NricFin:       "S1234567D",
			IdentityNo:    "S1234567D",
			CardType:      "NRIC",
			Nationality:   "Singaporean",
			DateOfBirth:   "1970-03-15",
			Gender:        "Male",
			Race:          "Chinese",
			Religion:      "Buddhism",
			MaritalStatus: "Married",

			WorkEmail:        "weiming.tan@octomate.example",
			EmployeeID:       "EMP-2015-1042",
			Department:       "Engineering",
			JobTitle:         "Principal Engineer",
			EmploymentDate:   "2015-06-01",
			RetirementAge:    63,
			RetirementYear:   2033,
			RetirementDate:   "2033-03-15",
			EmploymentStatus: "Active",

			ContactNo:     "+65 9123 4567",
			HomeNo:        "+65 6345 1234",
			PersonalEmail: "weiming.tan@example.com",
			MailingAddress: &Address{
				AddressLine1: "Blk 123 Tampines Street 11",
				AddressLine2: "#08-456",
				PostalCode:   "521123",
			},

			BankingInfo: &BankingInfo{
				NamePerBankAccount: "Tan Wei Ming",
				BankCountry:        "Singapore",
				BankEntity:         "DBS Bank",
				BranchCode:         "081",
				AccountNumber:      "0811234567",
				BicSwiftCode:       "DBSSSGSG",
			},

			HighestQualification: "Masters",
			EducationHistory: []Education{
				{
					ID:            "edu-001",
					Institution:   "National University of Singapore",
					Qualification: "Masters",
					FieldOfStudy:  "Computer Science",
					YearObtained:  1996,
				},
			},
			WorkExperience: []WorkExperience{
				{
					ID:          "exp-001",
					CompanyName: "ST Engineering",
					JobTitle:    "Software Engineer",
					StartDate:   "1996-07-01",
					EndDate:     "2015-05-20",
					Description: "Defence systems software",
				},
			},

			EmergencyContact1: &EmergencyContact{
				Name:         "Lim Mei Ling",
				MobileNumber: "+65 9876 5432",
				Relationship: "Spouse",
			},

			CreatedAt:       "2024-01-05T09:00:00Z",
			UpdatedAt:       "2024-01-05T09:00:00Z",
			PDPAConsent:     true,
			PDPAConsentDate: "2024-01-05",
		},
		{
			ID:            "emp-002",
			FullName:      "Priya d/o Rajan",
			NricFin:       "S9876543C",
			IdentityNo:    "S9876543C",
			CardType:      "NRIC",
			Nationality:   "Singaporean",
			DateOfBirth:   "1985-11-02",
			Gender:        "Female",
			Race:          "Indian",
			Religion:      "Hinduism",
			MaritalStatus: "Single",

			WorkEmail:        "priya.rajan@octomate.example",
			EmployeeID:       "EMP-2018-2210",
			Department:       "Finance",
			JobTitle:         "Finance Manager",
			EmploymentDate:   "2018-02-12",
			RetirementAge:    63,
			RetirementYear:   2048,
			RetirementDate:   "2048-11-02",
			EmploymentStatus: "Active",

			ContactNo: "+65 8234 5678",
			MailingAddress: &Address{
				AddressLine1: "Blk 456 Clementi Avenue 3",
				PostalCode:   "120456",
			},

			BankingInfo: &BankingInfo{
				NamePerBankAccount: "Priya Rajan",
				BankCountry:        "Singapore",
				BankEntity:         "OCBC Bank",
				BranchCode:         "501",
				AccountNumber:      "501987654321",
				BicSwiftCode:       "OCBCSGSG",
			},

			HighestQualification: "Bachelors",
			EducationHistory: []Education{
				{
					ID:            "edu-002",
					Institution:   "Nanyang Technological University",
					Qualification: "Bachelors",
					FieldOfStudy:  "Accountancy",
					YearObtained:  2008,
				},
			},
			WorkExperience: []WorkExperience{},

			EmergencyContact1: &EmergencyContact{
				Name:         "Rajan s/o Kumar",
				MobileNumber: "+65 9111 2222",
				Relationship: "Parent",
			},

			CreatedAt:       "2024-01-05T09:00:00Z",
			UpdatedAt:       "2024-01-05T09:00:00Z",
			PDPAConsent:     true,
			PDPAConsentDate: "2024-01-05",
		},
		{
			ID:            "emp-003",
			FullName:      "Nurul Binte Rahman",
			NricFin:       "T0123456G",
			IdentityNo:    "T0123456G",
			CardType:      "NRIC",
			Nationality:   "Singaporean",
			DateOfBirth:   "2001-07-21",
			Gender:        "Female",
			Race:          "Malay",
			Religion:      "Islam",
			MaritalStatus: "Single",

			WorkEmail:        "nurul.rahman@octomate.example",
			EmployeeID:       "EMP-2023-3307",
			Department:       "Human Resources",
			JobTitle:         "HR Executive",
			EmploymentDate:   "2023-08-01",
			RetirementAge:    63,
			RetirementYear:   2064,
			RetirementDate:   "2064-07-21",
			EmploymentStatus: "Active",

			ContactNo:     "+65 9333 4444",
			PersonalEmail: "nurul.r@example.com",
			MailingAddress: &Address{
				AddressLine1: "Blk 789 Yishun Ring Road",
				AddressLine2: "#12-101",
				PostalCode:   "760789",
			},

			BankingInfo: &BankingInfo{
				NamePerBankAccount: "Nurul Binte Rahman",
				BankCountry:        "Singapore",
				BankEntity:         "UOB",
				BranchCode:         "001",
				AccountNumber:      "0013456789012",
				BicSwiftCode:       "UOVBSGSG",
			},

			HighestQualification: "Diploma",
			EducationHistory: []Education{
				{
					ID:            "edu-003",
					Institution:   "Singapore Polytechnic",
					Qualification: "Diploma",
					FieldOfStudy:  "Human Resource Management",
					YearObtained:  2021,
				},
			},
			WorkExperience: []WorkExperience{},

			EmergencyContact1: &EmergencyContact{
				Name:         "Rahman Bin Ismail",
				MobileNumber: "+65 9555 6666",
				Relationship: "Parent",
			},
			EmergencyContact2: &EmergencyContact{
				Name:             "Siti Binte Rahman",
				MobileNumber:     "+65 9777 8888",
				Relationship:     "Sibling",
				HomeOfficeNumber: "+65 6777 8888",
			},

			CreatedAt:       "2024-01-05T09:00:00Z",
			UpdatedAt:       "2024-01-05T09:00:00Z",
			PDPAConsent:     true,
			PDPAConsentDate: "2024-01-05",
		},
		{
			ID:            "emp-004",
			FullName:      "Marcus Oh Jun Kai",
			Alias:         "Marcus",
			NricFin:       "F2468135K",
			IdentityNo:    "F2468135K",
			CardType:      "FIN",
			Nationality:   "Malaysian",
			DateOfBirth:   "1992-04-09",
			Gender:        "Male",
			Race:          "Chinese",
			Religion:      "Christianity",
			MaritalStatus: "Married",

			WorkEmail:        "marcus.oh@octomate.example",
			EmployeeID:       "EMP-2021-4190",
			Department:       "Engineering",
			JobTitle:         "Software Engineer",
			EmploymentDate:   "2021-03-15",
			RetirementAge:    63,
			RetirementYear:   2055,
			RetirementDate:   "2055-04-09",
			EmploymentStatus: "Probation",

			ContactNo: "+65 8765 4321",
			OverseasAddress: &OverseasAddress{
				AddressLine: "12 Jalan Bukit Bintang",
				PostalCode:  "55100",
				Country:     "Malaysia",
			},

			HighestQualification: "Bachelors",
			EducationHistory:     []Education{},
			WorkExperience:       []WorkExperience{},

			CreatedAt:   "2024-01-05T09:00:00Z",
			UpdatedAt:   "2024-01-05T09:00:00Z",
			PDPAConsent: true,
		},
		{
			ID:            "emp-005",
			FullName:      "Grace Wong Li Lin",
			NricFin:       "G1122334L",
			IdentityNo:    "G1122334L",
			CardType:      "Work Permit",
			Nationality:   "Chinese",
			DateOfBirth:   "1998-12-30",
			Gender:        "Female",
			Race:          "Chinese",
			Religion:      "No Religion",
			MaritalStatus: "Single",

			WorkEmail:        "grace.wong@octomate.example",
			EmployeeID:       "EMP-2022-5521",
			Department:       "Operations",
			JobTitle:         "Operations Analyst",
			EmploymentDate:   "2022-09-05",
			RetirementAge:    63,
			RetirementYear:   2061,
			RetirementDate:   "2061-12-30",
			EmploymentStatus: "On Leave",

			ContactNo:            "+65 9999 0000",
			HighestQualification: "Bachelors",
			EducationHistory:     []Education{},
			WorkExperience:       []WorkExperience{},

			CreatedAt:   "2024-01-05T09:00:00Z",
			UpdatedAt:   "2024-01-05T09:00:00Z",
			PDPAConsent: false,
		},
	}
}
