package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"octomate/internal/domain/employee"
	"octomate/internal/domain/rbac"
)

func sampleEmployee() employee.Employee {
	return employee.Employee{
		ID:               "emp-100",
		FullName:         "Lee Wei Ming",
		NricFin:          "S1234567D",
		IdentityNo:       "S1234567D",
		CardType:         "NRIC",
		Department:       "Engineering",
		JobTitle:         "Analyst",
		EmployeeID:       "EMP-2024-0001",
		WorkEmail:        "wei.ming@octomate.example",
		EmploymentStatus: "Active",
		EmploymentDate:   "2024-01-02",
		BankingInfo: &employee.BankingInfo{
			NamePerBankAccount: "Lee Wei Ming",
			BankEntity:         "DBS Bank",
			AccountNumber:      "0012345678",
		},
	}
}

func TestProfileJSONRedactsForViewer(t *testing.T) {
	emp := sampleEmployee()
	perms := rbac.Resolve(rbac.RoleManager, false)

	data, err := ProfileJSON(emp, perms, "David Tan")
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Contains(data, []byte("0012345678")) {
		t.Fatal("manager export carries the bank account number")
	}
	if bytes.Contains(data, []byte(`"nricFin": "S1234567D"`)) {
		t.Fatal("manager export carries the unmasked identity number")
	}

	var payload ProfileExport
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.ExportedBy != "David Tan" || payload.ExportedAt == "" {
		t.Fatalf("export metadata incomplete: %+v", payload)
	}
	if payload.Employee.BankingInfo != nil {
		t.Fatal("banking section present in manager export")
	}
	if payload.Employee.Department != "Engineering" {
		t.Fatalf("readable field lost: %q", payload.Employee.Department)
	}
}

func TestProfileJSONAdminKeepsEverything(t *testing.T) {
	data, err := ProfileJSON(sampleEmployee(), rbac.Resolve(rbac.RoleHRAdmin, false), "Sarah Lim")
	if err != nil {
		t.Fatal(err)
	}
	var payload ProfileExport
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Employee.NricFin != "S1234567D" {
		t.Fatalf("admin export lost the identity number: %q", payload.Employee.NricFin)
	}
	if payload.Employee.BankingInfo == nil || payload.Employee.BankingInfo.AccountNumber != "0012345678" {
		t.Fatal("admin export lost banking data")
	}
}

func TestProfilePDF(t *testing.T) {
	data, err := ProfilePDF(sampleEmployee(), rbac.Resolve(rbac.RoleManager, false), "David Tan")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
}

func TestRosterCSV(t *testing.T) {
	data, err := RosterCSV([]employee.Employee{sampleEmployee()})
	if err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[0][0] != "employeeId" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "Lee Wei Ming" || rows[1][2] != "Engineering" {
		t.Fatalf("unexpected row %v", rows[1])
	}
	if strings.Contains(string(data), "S1234567D") || strings.Contains(string(data), "0012345678") {
		t.Fatal("roster export carries sensitive values")
	}
}

func TestFieldLabel(t *testing.T) {
	cases := map[string]string{
		"fullName":         "Full Name",
		"nricFin":          "Nric Fin",
		"reEmploymentDate": "Re Employment Date",
		"department":       "Department",
	}
	for in, want := range cases {
		if got := fieldLabel(in); got != want {
			t.Fatalf("fieldLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
