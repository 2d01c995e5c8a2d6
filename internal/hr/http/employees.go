package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type EmployeesHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleList returns the full directory.
//
//	@Summary		List employees
//	@Description	Returns every employee in insertion order. Admin only.
//	@Tags			Directory
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrsdk.ListEmployeesResponse	"Employee directory"
//	@Failure		401	{object}	hrsdk.ErrorResponse			"Invalid or missing session token"
//	@Failure		403	{object}	hrsdk.ErrorResponse			"Caller is not an admin"
//	@Router			/v1/employees [get].
func (h *EmployeesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.DirectoryService.ListEmployees(ctx, httpx.RoleFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.ListEmployeesResponse{
		Employees: make([]hrsdk.Employee, 0, len(employees)),
	}
	for _, emp := range employees {
		response.Employees = append(response.Employees, toWireEmployee(emp))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleGet returns a single employee by record id.
//
//	@Summary		Get employee
//	@Description	Returns one employee record. Admin only.
//	@Tags			Directory
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"Employee record id (ULID)"
//	@Success		200	{object}	hrsdk.Employee		"Employee record"
//	@Failure		401	{object}	hrsdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	hrsdk.ErrorResponse	"Caller is not an admin"
//	@Failure		404	{object}	hrsdk.ErrorResponse	"No such employee"
//	@Router			/v1/employees/{id} [get].
func (h *EmployeesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.DirectoryService.GetEmployee(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWireEmployee(emp))
}

// HandleUpdate applies an admin patch to any employee, including role changes.
//
//	@Summary		Update employee
//	@Description	Applies a partial update to any employee record. Admins may change
//	@Description	the role; id, employeeId and email stay immutable.
//	@Tags			Directory
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Employee record id (ULID)"
//	@Param			request	body		hrsdk.AdminEmployeeUpdateRequest	true	"Fields to change"
//	@Success		200		{object}	hrsdk.Employee						"Updated employee record"
//	@Failure		400		{object}	hrsdk.ErrorResponse					"Malformed body or immutable field"
//	@Failure		401		{object}	hrsdk.ErrorResponse					"Invalid or missing session token"
//	@Failure		403		{object}	hrsdk.ErrorResponse					"Caller is not an admin"
//	@Failure		404		{object}	hrsdk.ErrorResponse					"No such employee"
//	@Router			/v1/employees/{id} [patch].
func (h *EmployeesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	update, apiErr := parseAdminPatch(body)
	if apiErr != nil {
		apiErr.WriteError(w)
		return
	}

	emp, err := h.DirectoryService.AdminUpdateEmployee(ctx, httpx.RoleFromCtx(ctx), r.PathValue("id"), update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWireEmployee(emp))
}

// parseAdminPatch decodes an admin employee patch. Unlike the self-service
// patch, role is allowed to appear.
func parseAdminPatch(body []byte) (domain.AdminEmployeeUpdate, *hrsdk.APIError) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.AdminEmployeeUpdate{}, hrsdk.ErrInvalidRequest
	}
	for _, field := range []string{"id", "employeeId", "email"} {
		if _, present := raw[field]; present {
			return domain.AdminEmployeeUpdate{}, hrsdk.ErrImmutableField
		}
	}

	var req hrsdk.AdminEmployeeUpdateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return domain.AdminEmployeeUpdate{}, hrsdk.ErrInvalidRequest
	}

	update := domain.AdminEmployeeUpdate{
		ProfileUpdate: domain.ProfileUpdate{
			Name:       req.Name,
			Phone:      req.Phone,
			Address:    req.Address,
			Department: req.Department,
			Position:   req.Position,
			Salary:     req.Salary,
		},
		Role: req.Role,
	}
	if req.JoinDate != nil {
		joined, err := time.Parse(domain.DateFormat, *req.JoinDate)
		if err != nil {
			return domain.AdminEmployeeUpdate{}, hrsdk.ErrInvalidRequest
		}
		update.JoinDate = &joined
	}
	return update, nil
}
