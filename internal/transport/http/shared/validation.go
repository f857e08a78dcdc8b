package shared

import (
	"net/http"
	"sort"
	"strings"

	"octomate/internal/transport/http/api"
	"octomate/internal/validate"
)

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validator accumulates field issues across a payload so the caller
// gets every problem in one response.
type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

func (v *Validator) Enum(field, value string, allowed []string, reason string) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return
	}
	for _, candidate := range allowed {
		if normalized == strings.ToLower(strings.TrimSpace(candidate)) {
			return
		}
	}
	v.Add(field, reason)
}

// Check records the error from one of the validate package checks
// under the given field. Empty values pass; Required covers presence.
func (v *Validator) Check(field, value string, fn func(string) error) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if err := fn(value); err != nil {
		v.Add(field, err.Error())
	}
}

func (v *Validator) NRIC(field, value string) {
	v.Check(field, value, validate.NRIC)
}

func (v *Validator) Email(field, value string) {
	v.Check(field, value, func(s string) error { return validate.Email(s, false) })
}

func (v *Validator) Phone(field, value string, kind validate.PhoneKind) {
	v.Check(field, value, func(s string) error { return validate.Phone(s, kind) })
}

func (v *Validator) PostalCode(field, value string) {
	v.Check(field, value, validate.PostalCode)
}

func (v *Validator) DateOfBirth(field, value string) {
	v.Check(field, value, validate.DateOfBirth)
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Reject writes the validation failure and reports whether it did.
func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	FailValidation(w, requestID, v.Issues())
	return true
}

func FailValidation(w http.ResponseWriter, requestID string, issues []ValidationIssue) {
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": issues},
		requestID,
	)
}
