package audit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"octomate/internal/domain/employee"
	"octomate/internal/platform/storage"
)

// StorageKey holds the audit collection.
const StorageKey = "octomate_audit_logs"

// Filter narrows an audit listing. Search matches the employee name,
// actor name, description and field, case-insensitively.
type Filter struct {
	Search     string
	Action     Action
	EmployeeID string
}

// Service persists the prepend-only log.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) load() ([]Entry, error) {
	var log []Entry
	err := s.store.Get(StorageKey, &log)
	switch {
	case err == nil:
		return log, nil
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		// A missing or unreadable log restarts empty rather than failing.
		return nil, nil
	default:
		return nil, err
	}
}

// Append prepends entries to the log, newest first. Existing entries
// are never reordered or rewritten.
func (s *Service) Append(entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	log, err := s.load()
	if err != nil {
		return err
	}
	return s.store.Put(StorageKey, append(entries, log...))
}

// List returns matching entries in stored (newest first) order along
// with the total match count for pagination.
func (s *Service) List(filter Filter, limit, offset int) ([]Entry, int, error) {
	log, err := s.load()
	if err != nil {
		return nil, 0, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var matched []Entry
	for _, entry := range log {
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if filter.EmployeeID != "" && entry.EmployeeID != filter.EmployeeID {
			continue
		}
		if search != "" && !entryMatches(entry, search) {
			continue
		}
		matched = append(matched, entry)
	}

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func entryMatches(entry Entry, search string) bool {
	for _, candidate := range []string{
		entry.EmployeeName, entry.UserName, entry.Description, entry.Field,
	} {
		if strings.Contains(strings.ToLower(candidate), search) {
			return true
		}
	}
	return false
}

// RecordCreate appends the coarse-grained entry for a new record.
func (s *Service) RecordCreate(emp employee.Employee, actor Actor) error {
	return s.Append(coarseEntry(emp, actor, ActionCreate, "Created new employee profile"))
}

// RecordDelete appends the coarse-grained entry for a removed record.
func (s *Service) RecordDelete(emp employee.Employee, actor Actor) error {
	return s.Append(coarseEntry(emp, actor, ActionDelete, "Deleted employee profile"))
}

// RecordExport appends an entry for a data export, so the trail
// answers who pulled a profile and in which format.
func (s *Service) RecordExport(emp employee.Employee, actor Actor, format string) error {
	return s.Append(coarseEntry(emp, actor, ActionExport, "Exported employee profile as "+format))
}

func coarseEntry(emp employee.Employee, actor Actor, action Action, description string) Entry {
	return Entry{
		ID:           uuid.NewString(),
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		UserID:       actor.UserID,
		UserName:     actor.UserName,
		UserRole:     actor.Role,
		Action:       action,
		Description:  description,
	}
}
