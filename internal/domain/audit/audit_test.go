package audit

import (
	"strings"
	"testing"

	"octomate/internal/domain/employee"
	"octomate/internal/domain/rbac"
	"octomate/internal/platform/storage"
)

var testActor = Actor{UserID: "user-1", UserName: "Sarah Lim", Role: rbac.RoleHRAdmin}

func baseRecord() employee.Employee {
	return employee.Employee{
		ID:               "emp-100",
		FullName:         "Lee Wei Ming",
		NricFin:          "S1234567D",
		Department:       "Engineering",
		JobTitle:         "Analyst",
		EmploymentStatus: "Active",
		MailingAddress: &employee.Address{
			AddressLine1: "10 Anson Road",
			PostalCode:   "079903",
		},
	}
}

func TestDiffIdenticalRecords(t *testing.T) {
	rec := baseRecord()
	if entries := Diff(rec, rec, testActor); len(entries) != 0 {
		t.Fatalf("expected no entries for identical records, got %d", len(entries))
	}
}

func TestDiffSingleFieldChange(t *testing.T) {
	before := baseRecord()
	after := baseRecord()
	after.Department = "Finance"

	entries := Diff(before, after, testActor)
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Action != ActionUpdate {
		t.Fatalf("action = %q, want %q", entry.Action, ActionUpdate)
	}
	if entry.Field != "department" {
		t.Fatalf("field = %q, want %q", entry.Field, "department")
	}
	if entry.OldValue != "Engineering" || entry.NewValue != "Finance" {
		t.Fatalf("values = %q -> %q", entry.OldValue, entry.NewValue)
	}
	if !strings.Contains(entry.Description, "department") {
		t.Fatalf("description %q does not name the field", entry.Description)
	}
	if entry.EmployeeID != "emp-100" || entry.EmployeeName != "Lee Wei Ming" {
		t.Fatalf("entry not attributed to the record: %+v", entry)
	}
	if entry.UserID != testActor.UserID || entry.UserRole != testActor.Role {
		t.Fatalf("entry not attributed to the actor: %+v", entry)
	}
}

func TestDiffObjectFieldCountsOnce(t *testing.T) {
	before := baseRecord()
	after := baseRecord()
	after.MailingAddress = &employee.Address{
		AddressLine1: "21 Orchard Boulevard",
		PostalCode:   "238895",
	}

	entries := Diff(before, after, testActor)
	if len(entries) != 1 {
		t.Fatalf("expected one entry for a nested change, got %d", len(entries))
	}
	if entries[0].Field != "mailingAddress" {
		t.Fatalf("field = %q, want mailingAddress", entries[0].Field)
	}
}

func TestDiffMissingFieldComparesAsEmpty(t *testing.T) {
	before := baseRecord()
	after := baseRecord()
	after.Alias = "Wei Ming"

	entries := Diff(before, after, testActor)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].OldValue != "" {
		t.Fatalf("old value = %q, want empty string for absent field", entries[0].OldValue)
	}
	if entries[0].NewValue != "Wei Ming" {
		t.Fatalf("new value = %q", entries[0].NewValue)
	}

	// Clearing the field runs the other direction.
	entries = Diff(after, before, testActor)
	if len(entries) != 1 || entries[0].NewValue != "" {
		t.Fatalf("expected cleared field to compare against empty, got %+v", entries)
	}
}

func TestDiffMultipleFields(t *testing.T) {
	before := baseRecord()
	after := baseRecord()
	after.JobTitle = "Senior Analyst"
	after.EmploymentStatus = "On Leave"

	entries := Diff(before, after, testActor)
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(entries))
	}
	fields := map[string]bool{}
	for _, entry := range entries {
		fields[entry.Field] = true
		if entry.ID == "" || entry.Timestamp == "" {
			t.Fatalf("entry missing identity or timestamp: %+v", entry)
		}
	}
	if !fields["jobTitle"] || !fields["employmentStatus"] {
		t.Fatalf("unexpected field set %v", fields)
	}
}

func TestServiceAppendPrepends(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(store)

	rec := baseRecord()
	if err := svc.RecordCreate(rec, testActor); err != nil {
		t.Fatal(err)
	}
	updated := rec
	updated.JobTitle = "Senior Analyst"
	if err := svc.Append(Diff(rec, updated, testActor)...); err != nil {
		t.Fatal(err)
	}

	log, total, err := svc.List(Filter{}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(log) != 2 {
		t.Fatalf("expected 2 entries, got %d (total %d)", len(log), total)
	}
	if log[0].Action != ActionUpdate {
		t.Fatalf("newest entry should be first, got action %q", log[0].Action)
	}
	if log[1].Description != "Created new employee profile" {
		t.Fatalf("create entry = %q", log[1].Description)
	}
}

func TestServiceListFilters(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(store)

	rec := baseRecord()
	other := baseRecord()
	other.ID = "emp-200"
	other.FullName = "Tan Mei Hua"

	if err := svc.RecordCreate(rec, testActor); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordDelete(other, testActor); err != nil {
		t.Fatal(err)
	}
	if err := svc.RecordExport(rec, testActor, "pdf"); err != nil {
		t.Fatal(err)
	}

	byAction, total, err := svc.List(Filter{Action: ActionDelete}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || byAction[0].EmployeeID != "emp-200" {
		t.Fatalf("action filter returned %+v", byAction)
	}

	bySearch, total, err := svc.List(Filter{Search: "mei hua"}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || bySearch[0].Action != ActionDelete {
		t.Fatalf("search filter returned %+v", bySearch)
	}

	byEmployee, total, err := svc.List(Filter{EmployeeID: "emp-100"}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Fatalf("employee filter total = %d, want 2", total)
	}
	_ = byEmployee

	page, total, err := svc.List(Filter{}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(page) != 2 {
		t.Fatalf("pagination returned %d of %d", len(page), total)
	}
}

func TestServiceListEmptyLog(t *testing.T) {
	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(store)

	log, total, err := svc.List(Filter{}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 || len(log) != 0 {
		t.Fatalf("expected empty log, got %d", len(log))
	}
}

func TestDelta(t *testing.T) {
	entry := Entry{Field: "jobTitle", OldValue: "Analyst", NewValue: "Senior Analyst"}
	patch := Delta(entry)
	if patch == "" {
		t.Fatal("expected a patch for a changed value")
	}
	if !strings.Contains(patch, "Senior") {
		t.Fatalf("patch does not carry the insertion: %q", patch)
	}

	if Delta(Entry{Description: "Created new employee profile"}) != "" {
		t.Fatal("coarse entries should produce no patch")
	}
	if Delta(Entry{Field: "alias", OldValue: "x", NewValue: "x"}) != "" {
		t.Fatal("unchanged values should produce no patch")
	}
}
