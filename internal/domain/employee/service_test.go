package employee

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"octomate/internal/platform/storage"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewService(store), dir
}

func TestListSeedsOnFirstUse(t *testing.T) {
	svc, _ := newTestService(t)
	roster, err := svc.List(FilterOptions{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roster) == 0 {
		t.Fatal("expected seed roster on empty store")
	}
}

func TestCorruptCollectionFallsBackToSeed(t *testing.T) {
	svc, dir := newTestService(t)
	path := filepath.Join(dir, StorageKey+".json")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	roster, err := svc.List(FilterOptions{})
	if err != nil {
		t.Fatalf("list should recover from corruption: %v", err)
	}
	if len(roster) != len(SeedRoster()) {
		t.Fatalf("expected seed roster, got %d records", len(roster))
	}
}

func TestCreateAssignsIdentityAndDerivedFields(t *testing.T) {
	svc, _ := newTestService(t)
	created, err := svc.Create(Employee{
		FullName:    "New Hire",
		DateOfBirth: "1970-03-15",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" || created.EmployeeID == "" {
		t.Fatal("create must assign ids")
	}
	if created.RetirementYear != 2033 || created.RetirementDate != "2033-03-15" {
		t.Fatalf("derived fields missing: %d %s", created.RetirementYear, created.RetirementDate)
	}
	if created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Fatal("timestamps missing")
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("get after create failed: %v", err)
	}
	if got.FullName != "New Hire" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestUpdatePreservesImmutablesAndRecomputesDerived(t *testing.T) {
	svc, _ := newTestService(t)
	current, err := svc.Get("emp-001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	updated := current
	updated.EmployeeID = "EMP-0000-0000"
	updated.RetirementAge = 65
	updated.RetirementYear = 1900
	updated.CreatedAt = "1900-01-01T00:00:00Z"

	saved, err := svc.Update(current.ID, updated)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if saved.EmployeeID != current.EmployeeID {
		t.Fatal("employee code must survive updates")
	}
	if saved.CreatedAt != current.CreatedAt {
		t.Fatal("createdAt must survive updates")
	}
	if saved.RetirementYear != 2035 || saved.RetirementDate != "2035-03-15" {
		t.Fatalf("derived fields not recomputed for new age: %d %s", saved.RetirementYear, saved.RetirementDate)
	}
	if saved.UpdatedAt == current.UpdatedAt {
		t.Fatal("updatedAt should move forward")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.Update("missing", Employee{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Delete("emp-002"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get("emp-002"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
	if err := svc.Delete("emp-002"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	svc, _ := newTestService(t)

	engineering, err := svc.List(FilterOptions{Department: "Engineering"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, emp := range engineering {
		if emp.Department != "Engineering" {
			t.Fatalf("department filter leaked %s", emp.Department)
		}
	}
	if len(engineering) != 2 {
		t.Fatalf("expected 2 engineering records, got %d", len(engineering))
	}

	probation, err := svc.List(FilterOptions{Status: "Probation"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(probation) != 1 || probation[0].ID != "emp-004" {
		t.Fatalf("unexpected probation listing: %+v", probation)
	}

	byName, err := svc.List(FilterOptions{Search: "nurul"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != "emp-003" {
		t.Fatalf("unexpected search result: %+v", byName)
	}
}

func TestListSorting(t *testing.T) {
	svc, _ := newTestService(t)

	asc, err := svc.List(FilterOptions{SortBy: "employeeId", SortOrder: "asc"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	desc, err := svc.List(FilterOptions{SortBy: "employeeId", SortOrder: "desc"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(asc) < 2 {
		t.Fatal("need at least two records")
	}
	if asc[0].EmployeeID != desc[len(desc)-1].EmployeeID {
		t.Fatal("desc should reverse asc")
	}
	for i := 1; i < len(asc); i++ {
		if asc[i-1].EmployeeID > asc[i].EmployeeID {
			t.Fatalf("ascending order violated at %d", i)
		}
	}
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)
	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalEmployees != len(SeedRoster()) {
		t.Fatalf("unexpected total: %d", stats.TotalEmployees)
	}
	if stats.ActiveEmployees != 3 {
		t.Fatalf("expected 3 active, got %d", stats.ActiveEmployees)
	}
	if stats.PendingUpdates != 1 {
		t.Fatalf("expected 1 probation record, got %d", stats.PendingUpdates)
	}
	if stats.DepartmentBreakdown["Engineering"] != 2 {
		t.Fatalf("unexpected engineering count: %d", stats.DepartmentBreakdown["Engineering"])
	}
}

func TestDepartments(t *testing.T) {
	svc, _ := newTestService(t)
	departments, err := svc.Departments()
	if err != nil {
		t.Fatalf("departments failed: %v", err)
	}
	if len(departments) != 4 {
		t.Fatalf("expected 4 departments, got %v", departments)
	}
	for i := 1; i < len(departments); i++ {
		if departments[i-1] > departments[i] {
			t.Fatal("departments should be sorted")
		}
	}
}
