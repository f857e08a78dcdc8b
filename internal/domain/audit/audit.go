// Package audit records field-level profile changes. Entries are
// immutable once created and the log is prepend-only: the newest entry
// is always first and nothing ever rewrites or removes a prior one.
package audit

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"octomate/internal/domain/employee"
	"octomate/internal/domain/rbac"
)

// Action classifies an audit entry. View and export exist in the model;
// only export currently has a call site, view is reserved.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionView   Action = "view"
	ActionExport Action = "export"
)

// Entry is one immutable audit record. Field, OldValue and NewValue are
// set only for field-level updates.
type Entry struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Timestamp    string    `json:"timestamp"`
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	UserRole     rbac.Role `json:"userRole"`
	Action       Action    `json:"action"`
	Field        string    `json:"field,omitempty"`
	OldValue     string    `json:"oldValue,omitempty"`
	NewValue     string    `json:"newValue,omitempty"`
	Description  string    `json:"description"`
}

// Actor identifies who performed a change. Callers supply it; nothing
// here derives it from ambient state.
type Actor struct {
	UserID   string
	UserName string
	Role     rbac.Role
}

// Diff compares two versions of a record field by field and returns one
// update entry per changed top-level field. Values are compared in
// serialized form: object and array valued fields count as single
// units, so one change anywhere inside an address or the banking group
// yields exactly one entry for that group. Missing or null values
// compare as the empty string. Identical records yield nothing.
//
// Diff emits update entries only; create/delete/export entries are the
// caller's responsibility.
func Diff(original, updated employee.Employee, actor Actor) []Entry {
	origFields := toFieldMap(original)
	updFields := toFieldMap(updated)

	names := make([]string, 0, len(origFields))
	seen := make(map[string]bool, len(origFields))
	for name := range origFields {
		names = append(names, name)
		seen[name] = true
	}
	for name := range updFields {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	now := time.Now().UTC().Format(time.RFC3339)
	var entries []Entry
	for _, name := range names {
		oldRaw, newRaw := origFields[name], updFields[name]
		if rawEqual(oldRaw, newRaw) {
			continue
		}
		entries = append(entries, Entry{
			ID:           uuid.NewString(),
			EmployeeID:   updated.ID,
			EmployeeName: updated.FullName,
			Timestamp:    now,
			UserID:       actor.UserID,
			UserName:     actor.UserName,
			UserRole:     actor.Role,
			Action:       ActionUpdate,
			Field:        name,
			OldValue:     stringify(oldRaw),
			NewValue:     stringify(newRaw),
			Description:  "Updated " + name,
		})
	}
	return entries
}

func toFieldMap(emp employee.Employee) map[string]json.RawMessage {
	data, err := json.Marshal(emp)
	if err != nil {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	return fields
}

func rawEqual(a, b json.RawMessage) bool {
	return bytes.Equal(normalizeRaw(a), normalizeRaw(b))
}

// normalizeRaw folds absent and null into the same empty value so a
// field going from missing to null is not a change.
func normalizeRaw(raw json.RawMessage) []byte {
	if raw == nil || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}

// stringify renders a serialized field value the way the audit page
// shows it: strings unquoted, missing/null as empty, anything else as
// its compact JSON form.
func stringify(raw json.RawMessage) string {
	raw = normalizeRaw(raw)
	if raw == nil {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.String()
	}
	return string(raw)
}
