// Package employeeshandler exposes the roster CRUD, the rendered
// profile views, and the export endpoints. Every response passes the
// viewer's capability table before leaving the process.
package employeeshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"octomate/internal/domain/audit"
	"octomate/internal/domain/employee"
	"octomate/internal/domain/export"
	"octomate/internal/domain/rbac"
	"octomate/internal/transport/http/api"
	"octomate/internal/transport/http/middleware"
	"octomate/internal/transport/http/shared"
	"octomate/internal/validate"
)

type Handler struct {
	Employees *employee.Service
	Audit     *audit.Service
}

func NewHandler(employees *employee.Service, auditLog *audit.Service) *Handler {
	return &Handler{Employees: employees, Audit: auditLog}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/export.csv", h.handleRosterCSV)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
			r.Get("/profile", h.handleProfile)
			r.Get("/permissions", h.handlePermissions)
			r.Get("/export", h.handleExport)
		})
	})
	r.Get("/departments", h.handleDepartments)
}

func actorFor(user rbac.User) audit.Actor {
	return audit.Actor{UserID: user.ID, UserName: user.Name, Role: user.Role}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	query := r.URL.Query()
	roster, err := h.Employees.List(employee.FilterOptions{
		Search:     query.Get("search"),
		Department: query.Get("department"),
		Status:     query.Get("status"),
		SortBy:     query.Get("sortBy"),
		SortOrder:  query.Get("sortOrder"),
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list employees", reqID)
		return
	}

	filtered := make([]employee.Employee, 0, len(roster))
	for _, emp := range roster {
		if !rbac.CanViewEmployee(user.Role, emp.ID, user.EmployeeID) {
			continue
		}
		isSelf := emp.ID == user.EmployeeID
		filtered = append(filtered, employee.Redact(emp, rbac.Resolve(user.Role, isSelf)))
	}

	api.Success(w, filtered, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}
	if !rbac.CanAddEmployee(user.Role) {
		api.Fail(w, http.StatusForbidden, "access_denied", "only HR administrators can add employees", reqID)
		return
	}

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", reqID)
		return
	}

	v := shared.NewValidator()
	validateEmployee(v, payload)
	if v.Reject(w, reqID) {
		return
	}

	created, err := h.Employees.Create(payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "create_failed", "failed to create employee", reqID)
		return
	}

	if err := h.Audit.RecordCreate(created, actorFor(user)); err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_failed", "failed to record audit entry", reqID)
		return
	}

	api.Created(w, created, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if !rbac.CanViewEmployee(user.Role, employeeID, user.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "access_denied", "you do not have access to this profile", reqID)
		return
	}

	emp, err := h.Employees.Get(employeeID)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	isSelf := emp.ID == user.EmployeeID
	api.Success(w, employee.Redact(emp, rbac.Resolve(user.Role, isSelf)), reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if !rbac.CanEditEmployee(user.Role, employeeID, user.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "access_denied", "you do not have permission to edit this profile", reqID)
		return
	}

	current, err := h.Employees.Get(employeeID)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", reqID)
		return
	}

	v := shared.NewValidator()
	validateEmployee(v, payload)
	if v.Reject(w, reqID) {
		return
	}

	isSelf := current.ID == user.EmployeeID
	perms := rbac.Resolve(user.Role, isSelf)

	merged := current
	employee.MergeWritable(&merged, payload, perms)
	employee.ApplyDerived(&merged)

	// The change set is computed before the save so metadata updates
	// never show up as field changes.
	entries := audit.Diff(current, merged, actorFor(user))

	updated, err := h.Employees.Update(employeeID, merged)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	if err := h.Audit.Append(entries...); err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_failed", "failed to record audit entries", reqID)
		return
	}

	api.Success(w, employee.Redact(updated, perms), reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}
	if !rbac.CanDeleteEmployee(user.Role) {
		api.Fail(w, http.StatusForbidden, "access_denied", "only HR administrators can delete employees", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	emp, err := h.Employees.Get(employeeID)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	if err := h.Employees.Delete(employeeID); err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	if err := h.Audit.RecordDelete(emp, actorFor(user)); err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_failed", "failed to record audit entry", reqID)
		return
	}

	api.Success(w, map[string]string{"deleted": employeeID}, reqID)
}

// handleProfile returns the tab-by-tab rendering of one record for the
// current viewer, the same shape the profile form binds to. The editing
// query flag flips the editable markers when the viewer may edit.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if !rbac.CanViewEmployee(user.Role, employeeID, user.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "access_denied", "you do not have access to this profile", reqID)
		return
	}

	emp, err := h.Employees.Get(employeeID)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	isSelf := emp.ID == user.EmployeeID
	canEdit := rbac.CanEditEmployee(user.Role, employeeID, user.EmployeeID)
	editing := canEdit && r.URL.Query().Get("editing") == "true"

	api.Success(w, map[string]any{
		"profile": employee.RenderProfile(emp, rbac.Resolve(user.Role, isSelf), editing),
		"canEdit": canEdit,
		"isSelf":  isSelf,
	}, reqID)
}

func (h *Handler) handlePermissions(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if !rbac.CanViewEmployee(user.Role, employeeID, user.EmployeeID) {
		api.Fail(w, http.StatusForbidden, "access_denied", "you do not have access to this profile", reqID)
		return
	}

	isSelf := employeeID == user.EmployeeID
	api.Success(w, rbac.Resolve(user.Role, isSelf), reqID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}
	if !rbac.CanExportData(user.Role) {
		api.Fail(w, http.StatusForbidden, "access_denied", "you do not have permission to export data", reqID)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	emp, err := h.Employees.Get(employeeID)
	if err != nil {
		h.failLookup(w, err, reqID)
		return
	}

	isSelf := emp.ID == user.EmployeeID
	perms := rbac.Resolve(user.Role, isSelf)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "json":
		data, err = export.ProfileJSON(emp, perms, user.Name)
		contentType = "application/json"
	case "pdf":
		data, err = export.ProfilePDF(emp, perms, user.Name)
		contentType = "application/pdf"
	default:
		api.Fail(w, http.StatusBadRequest, "bad_request", "format must be json or pdf", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export profile", reqID)
		return
	}

	if err := h.Audit.RecordExport(emp, actorFor(user), format); err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_failed", "failed to record audit entry", reqID)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-profile.%s", emp.EmployeeID, format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleRosterCSV(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}
	if !rbac.CanExportData(user.Role) {
		api.Fail(w, http.StatusForbidden, "access_denied", "you do not have permission to export data", reqID)
		return
	}

	roster, err := h.Employees.List(employee.FilterOptions{
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list employees", reqID)
		return
	}

	data, err := export.RosterCSV(roster)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export roster", reqID)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=employees.csv")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "session required", reqID)
		return
	}

	departments, err := h.Employees.Departments()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "list_failed", "failed to list departments", reqID)
		return
	}
	api.Success(w, departments, reqID)
}

func (h *Handler) failLookup(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, employee.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "storage_failed", "storage operation failed", reqID)
}

// validateEmployee applies the profile form rules to a payload. Only
// format checks run on optional fields; presence is enforced for the
// core identity minimum.
func validateEmployee(v *shared.Validator, emp employee.Employee) {
	v.Required("fullName", emp.FullName, "full name is required")
	v.Required("nricFin", emp.NricFin, "NRIC/FIN is required")
	v.NRIC("nricFin", emp.NricFin)
	v.Required("workEmail", emp.WorkEmail, "work email is required")
	v.Email("workEmail", emp.WorkEmail)
	v.Email("personalEmail", emp.PersonalEmail)
	v.Required("dateOfBirth", emp.DateOfBirth, "date of birth is required")
	v.DateOfBirth("dateOfBirth", emp.DateOfBirth)

	v.Enum("cardType", emp.CardType, employee.CardTypes, "unknown card type")
	v.Enum("gender", emp.Gender, employee.Genders, "unknown gender")
	v.Enum("race", emp.Race, employee.Races, "unknown race")
	v.Enum("religion", emp.Religion, employee.Religions, "unknown religion")
	v.Enum("maritalStatus", emp.MaritalStatus, employee.MaritalStatuses, "unknown marital status")
	v.Enum("employmentStatus", emp.EmploymentStatus, employee.EmploymentStatuses, "unknown employment status")
	v.Enum("highestQualification", emp.HighestQualification, employee.Qualifications, "unknown qualification")

	v.Phone("contactNo", emp.ContactNo, validate.Mobile)
	v.Phone("homeNo", emp.HomeNo, validate.Landline)
	if emp.MailingAddress != nil {
		v.PostalCode("mailingAddress.postalCode", emp.MailingAddress.PostalCode)
	}
	if emp.BankingInfo != nil {
		v.Check("bankingInfo.accountNumber", emp.BankingInfo.AccountNumber, validate.BankAccount)
		v.Check("bankingInfo.bicSwiftCode", emp.BankingInfo.BicSwiftCode, validate.SwiftCode)
	}
	for i, contact := range []*employee.EmergencyContact{emp.EmergencyContact1, emp.EmergencyContact2} {
		if contact == nil {
			continue
		}
		prefix := fmt.Sprintf("emergencyContact%d", i+1)
		v.Phone(prefix+".mobileNumber", contact.MobileNumber, validate.Mobile)
		v.Enum(prefix+".relationship", contact.Relationship, employee.Relationships, "unknown relationship")
	}
}
