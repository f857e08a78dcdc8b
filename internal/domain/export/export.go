// Package export produces the downloadable renditions of profile data.
// Every export goes through the viewer's capability table first, so a
// file never carries more than its requester could see on screen.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"octomate/internal/domain/employee"
	"octomate/internal/domain/rbac"
)

// ProfileExport is the JSON download envelope for a single record.
type ProfileExport struct {
	ExportedAt string            `json:"exportedAt"`
	ExportedBy string            `json:"exportedBy"`
	Employee   employee.Employee `json:"employee"`
}

// ProfileJSON serializes one record after redaction for the viewer.
func ProfileJSON(emp employee.Employee, perms rbac.TabPermissions, exportedBy string) ([]byte, error) {
	payload := ProfileExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		ExportedBy: exportedBy,
		Employee:   employee.Redact(emp, perms),
	}
	return json.MarshalIndent(payload, "", "  ")
}

// ProfilePDF renders one record as an A4 document. Fields the viewer
// cannot read come through as the same placeholders the profile form
// shows, masked fields as their masked form.
func ProfilePDF(emp employee.Employee, perms rbac.TabPermissions, exportedBy string) ([]byte, error) {
	view := employee.RenderProfile(emp, perms, false)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Employee Profile")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Exported %s by %s", time.Now().UTC().Format("2006-01-02 15:04"), exportedBy))
	pdf.Ln(10)

	section := func(title string, fields []employee.FieldView) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, f := range fields {
			pdf.Cell(60, 6, fieldLabel(f.Name))
			pdf.Cell(0, 6, f.Value)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	section("Core Identity", view.CoreIdentity)
	section("Employment", view.Employment)
	section("Contact", view.Contact)
	if view.Banking != nil {
		section("Banking", view.Banking.Fields)
	}
	if view.Qualifications != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Qualifications")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(60, 6, "Highest Qualification")
		pdf.Cell(0, 6, view.Qualifications.HighestQualification)
		pdf.Ln(6)
		for _, edu := range view.Qualifications.EducationHistory {
			pdf.Cell(0, 6, fmt.Sprintf("%s, %s (%d)", edu.Qualification, edu.Institution, edu.YearObtained))
			pdf.Ln(6)
		}
		for _, exp := range view.Qualifications.WorkExperience {
			pdf.Cell(0, 6, fmt.Sprintf("%s at %s", exp.JobTitle, exp.CompanyName))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}
	if view.EmergencyContacts != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Emergency Contacts")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, contact := range []*employee.EmergencyContact{
			view.EmergencyContacts.Contact1, view.EmergencyContacts.Contact2,
		} {
			if contact == nil {
				continue
			}
			pdf.Cell(0, 6, fmt.Sprintf("%s (%s) %s", contact.Name, contact.Relationship, contact.MobileNumber))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RosterCSV writes the list-page columns for a set of records. Only
// non-sensitive listing fields appear; identity and banking data never
// reach the roster export.
func RosterCSV(roster []employee.Employee) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		"employeeId", "fullName", "department", "jobTitle", "employmentStatus", "workEmail", "employmentDate",
	}); err != nil {
		return nil, err
	}
	for _, emp := range roster {
		if err := w.Write([]string{
			emp.EmployeeID, emp.FullName, emp.Department, emp.JobTitle,
			emp.EmploymentStatus, emp.WorkEmail, emp.EmploymentDate,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fieldLabel spaces out a camelCase field name for print.
func fieldLabel(name string) string {
	var out []rune
	for i, r := range name {
		if i == 0 {
			out = append(out, r-('a'-'A'))
			continue
		}
		if r >= 'A' && r <= 'Z' {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
