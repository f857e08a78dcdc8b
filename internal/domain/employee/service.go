package employee

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"octomate/internal/platform/storage"
)

// StorageKey holds the roster collection.
const StorageKey = "octomate_employees"

// ErrNotFound is returned for lookups of unknown record ids.
var ErrNotFound = errors.New("employee: not found")

// Service provides whole-collection operations over the roster: every
// mutation reads the full collection, computes the new one and writes it
// back. There is a single local actor, so last-write-wins is enough.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// load returns the roster, falling back to the seed set when the
// collection is absent or corrupt.
func (s *Service) load() ([]Employee, error) {
	var roster []Employee
	err := s.store.Get(StorageKey, &roster)
	switch {
	case err == nil:
		return roster, nil
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		roster = SeedRoster()
		if err := s.store.Put(StorageKey, roster); err != nil {
			return nil, err
		}
		return roster, nil
	default:
		return nil, err
	}
}

func (s *Service) save(roster []Employee) error {
	return s.store.Put(StorageKey, roster)
}

// Seed writes the demo roster. Existing data is kept unless force is set.
func (s *Service) Seed(force bool) error {
	if !force {
		var existing []Employee
		if err := s.store.Get(StorageKey, &existing); err == nil {
			return nil
		}
	}
	return s.save(SeedRoster())
}

// List returns roster records matching the filter, sorted as requested.
func (s *Service) List(opts FilterOptions) ([]Employee, error) {
	roster, err := s.load()
	if err != nil {
		return nil, err
	}

	out := make([]Employee, 0, len(roster))
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	for _, emp := range roster {
		if opts.Department != "" && emp.Department != opts.Department {
			continue
		}
		if opts.Status != "" && emp.EmploymentStatus != opts.Status {
			continue
		}
		if search != "" && !matchesSearch(emp, search) {
			continue
		}
		out = append(out, emp)
	}

	sortRoster(out, opts.SortBy, opts.SortOrder)
	return out, nil
}

func matchesSearch(emp Employee, search string) bool {
	for _, candidate := range []string{
		emp.FullName, emp.Alias, emp.EmployeeID, emp.WorkEmail, emp.Department, emp.JobTitle,
	} {
		if strings.Contains(strings.ToLower(candidate), search) {
			return true
		}
	}
	return false
}

func sortRoster(roster []Employee, sortBy, sortOrder string) {
	less := func(a, b Employee) bool { return a.FullName < b.FullName }
	switch sortBy {
	case "employeeId":
		less = func(a, b Employee) bool { return a.EmployeeID < b.EmployeeID }
	case "department":
		less = func(a, b Employee) bool { return a.Department < b.Department }
	case "status":
		less = func(a, b Employee) bool { return a.EmploymentStatus < b.EmploymentStatus }
	case "updatedAt":
		less = func(a, b Employee) bool { return a.UpdatedAt < b.UpdatedAt }
	}

	descending := sortOrder == "desc"
	sort.SliceStable(roster, func(i, j int) bool {
		if descending {
			return less(roster[j], roster[i])
		}
		return less(roster[i], roster[j])
	})
}

// Get returns one record by its storage id.
func (s *Service) Get(id string) (Employee, error) {
	roster, err := s.load()
	if err != nil {
		return Employee{}, err
	}
	for _, emp := range roster {
		if emp.ID == id {
			return emp, nil
		}
	}
	return Employee{}, ErrNotFound
}

// Create assigns identity and derived fields, appends the record and
// persists the roster. The employee code is generated here and never
// changes afterwards.
func (s *Service) Create(emp Employee) (Employee, error) {
	roster, err := s.load()
	if err != nil {
		return Employee{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	emp.ID = uuid.NewString()
	emp.EmployeeID = GenerateEmployeeCode(roster)
	ApplyDerived(&emp)
	emp.CreatedAt = now
	emp.UpdatedAt = now

	roster = append(roster, emp)
	if err := s.save(roster); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// Update replaces a record, preserving its immutable identity fields
// and recomputing the derived ones.
func (s *Service) Update(id string, updated Employee) (Employee, error) {
	roster, err := s.load()
	if err != nil {
		return Employee{}, err
	}

	for i, emp := range roster {
		if emp.ID != id {
			continue
		}
		updated.ID = emp.ID
		updated.EmployeeID = emp.EmployeeID
		updated.CreatedAt = emp.CreatedAt
		ApplyDerived(&updated)
		updated.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		roster[i] = updated
		if err := s.save(roster); err != nil {
			return Employee{}, err
		}
		return updated, nil
	}
	return Employee{}, ErrNotFound
}

// Delete removes a record from the roster.
func (s *Service) Delete(id string) error {
	roster, err := s.load()
	if err != nil {
		return err
	}

	out := roster[:0]
	found := false
	for _, emp := range roster {
		if emp.ID == id {
			found = true
			continue
		}
		out = append(out, emp)
	}
	if !found {
		return ErrNotFound
	}
	return s.save(out)
}

// Stats computes the dashboard aggregates. RecentChanges is filled by
// the caller from the audit log.
func (s *Service) Stats() (DashboardStats, error) {
	roster, err := s.load()
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalEmployees:      len(roster),
		DepartmentBreakdown: make(map[string]int),
		StatusBreakdown:     make(map[string]int),
	}
	for _, emp := range roster {
		stats.DepartmentBreakdown[emp.Department]++
		stats.StatusBreakdown[emp.EmploymentStatus]++
		switch emp.EmploymentStatus {
		case "Active":
			stats.ActiveEmployees++
		case "Probation":
			stats.PendingUpdates++
		}
	}
	return stats, nil
}

// Departments returns the distinct department names in the roster,
// sorted, for the list page filter dropdown.
func (s *Service) Departments() ([]string, error) {
	roster, err := s.load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, emp := range roster {
		if emp.Department == "" || seen[emp.Department] {
			continue
		}
		seen[emp.Department] = true
		out = append(out, emp.Department)
	}
	sort.Strings(out)
	return out, nil
}

// String renders a short identity for log lines.
func (e Employee) String() string {
	return fmt.Sprintf("%s (%s)", e.FullName, e.EmployeeID)
}
