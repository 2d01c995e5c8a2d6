package http

import (
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

type PayrollHandler struct {
	PayrollService   *service.PayrollService
	DirectoryService *service.DirectoryService
}

// HandleStatement returns the caller's payroll statement for one month.
//
//	@Summary		Payroll statement
//	@Description	Computes the caller's payroll statement for a month. Defaults to
//	@Description	the current month. Statements are derived on demand, never stored.
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string					false	"Month (YYYY-MM), defaults to current"
//	@Success		200		{object}	hrsdk.PayrollStatement	"Monthly statement"
//	@Failure		400		{object}	hrsdk.ErrorResponse		"Malformed month"
//	@Failure		401		{object}	hrsdk.ErrorResponse		"Invalid or missing session token"
//	@Failure		404		{object}	hrsdk.ErrorResponse		"Month outside the employee's payable range"
//	@Router			/v1/payroll [get].
func (h *PayrollHandler) HandleStatement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	emp, ok := h.loadCaller(w, r)
	if !ok {
		return
	}

	statement, err := h.PayrollService.Statement(ctx, emp, r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWirePayroll(statement))
}

// HandleHistory returns the caller's payroll history.
//
//	@Summary		Payroll history
//	@Description	Returns monthly statements from the current month back to the
//	@Description	caller's join month, newest first, capped at two years.
//	@Tags			Payroll
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrsdk.PayrollHistoryResponse	"Payroll statements"
//	@Failure		401	{object}	hrsdk.ErrorResponse				"Invalid or missing session token"
//	@Router			/v1/payroll/history [get].
func (h *PayrollHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	emp, ok := h.loadCaller(w, r)
	if !ok {
		return
	}

	statements, err := h.PayrollService.History(ctx, emp)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.PayrollHistoryResponse{
		Statements: make([]hrsdk.PayrollStatement, 0, len(statements)),
	}
	for _, st := range statements {
		response.Statements = append(response.Statements, toWirePayroll(st))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}

// loadCaller resolves the authenticated employee. Payroll math needs the
// salary and join date, which token claims don't carry.
func (h *PayrollHandler) loadCaller(w http.ResponseWriter, r *http.Request) (emp domain.Employee, ok bool) {
	ctx := r.Context()

	loaded, err := h.DirectoryService.GetEmployee(ctx, httpx.EmployeeIDFromCtx(ctx))
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to load employee for payroll", "err", err)
		hrsdk.ErrInvalidToken.WriteError(w)
		return emp, false
	}
	return loaded, true
}
