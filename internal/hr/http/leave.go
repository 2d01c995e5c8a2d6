package http

import (
	"encoding/json"
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

type LeaveHandler struct {
	LeaveService     *service.LeaveService
	DirectoryService *service.DirectoryService
}

// HandleSubmit files a new leave request for the caller.
//
//	@Summary		Submit leave request
//	@Description	Files a leave request. The inclusive day count is computed from the
//	@Description	date range; the request starts out pending.
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrsdk.SubmitLeaveRequest	true	"Leave details"
//	@Success		201		{object}	hrsdk.LeaveRequest			"Pending leave request"
//	@Failure		400		{object}	hrsdk.ErrorResponse			"Malformed or invalid leave details"
//	@Failure		401		{object}	hrsdk.ErrorResponse			"Invalid or missing session token"
//	@Router			/v1/leave [post].
func (h *LeaveHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hrsdk.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	lr, err := h.LeaveService.Submit(ctx, httpx.EmployeeIDFromCtx(ctx), service.SubmitParams{
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toWireLeave(lr))
}

// HandleListMine returns the caller's leave requests.
//
//	@Summary		List own leave requests
//	@Description	Returns the caller's leave requests, newest first.
//	@Tags			Leave
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrsdk.ListLeaveResponse	"Leave requests"
//	@Failure		401	{object}	hrsdk.ErrorResponse		"Invalid or missing session token"
//	@Router			/v1/leave [get].
func (h *LeaveHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.LeaveService.ListMine(ctx, httpx.EmployeeIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeLeaveList(w, requests)
}

// HandleListAll returns every leave request in the system.
//
//	@Summary		List all leave requests
//	@Description	Returns all leave requests, newest first, optionally filtered by
//	@Description	status. Admin only.
//	@Tags			Leave
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string					false	"Status filter (pending, approved, rejected)"
//	@Success		200		{object}	hrsdk.ListLeaveResponse	"Leave requests"
//	@Failure		400		{object}	hrsdk.ErrorResponse		"Unknown status filter"
//	@Failure		401		{object}	hrsdk.ErrorResponse		"Invalid or missing session token"
//	@Failure		403		{object}	hrsdk.ErrorResponse		"Caller is not an admin"
//	@Router			/v1/admin/leave [get].
func (h *LeaveHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.LeaveService.ListAll(ctx,
		httpx.RoleFromCtx(ctx), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeLeaveList(w, requests)
}

// HandleReview approves or rejects a pending leave request.
//
//	@Summary		Review leave request
//	@Description	Approves or rejects a pending leave request, recording the reviewing
//	@Description	admin's staff number and optional comment. Admin only.
//	@Tags			Leave
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Leave request id (ULID)"
//	@Param			request	body		hrsdk.ReviewLeaveRequest	true	"Review decision"
//	@Success		200		{object}	hrsdk.LeaveRequest			"Reviewed leave request"
//	@Failure		400		{object}	hrsdk.ErrorResponse			"Malformed body or unknown decision"
//	@Failure		401		{object}	hrsdk.ErrorResponse			"Invalid or missing session token"
//	@Failure		403		{object}	hrsdk.ErrorResponse			"Caller is not an admin"
//	@Failure		404		{object}	hrsdk.ErrorResponse			"No such leave request"
//	@Failure		409		{object}	hrsdk.ErrorResponse			"Already reviewed"
//	@Router			/v1/admin/leave/{id}/review [post].
func (h *LeaveHandler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req hrsdk.ReviewLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		hrsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	// The review is attributed to the reviewer's staff number, so load the
	// full record rather than trusting token claims alone.
	reviewer, err := h.DirectoryService.GetEmployee(ctx, httpx.EmployeeIDFromCtx(ctx))
	if err != nil {
		log.Warn("failed to load reviewer", "err", err)
		hrsdk.ErrInvalidToken.WriteError(w)
		return
	}

	lr, err := h.LeaveService.Review(ctx, reviewer, r.PathValue("id"), req.Status, req.Comment)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWireLeave(lr))
}

func writeLeaveList(w http.ResponseWriter, requests []domain.LeaveRequest) {
	response := hrsdk.ListLeaveResponse{
		Requests: make([]hrsdk.LeaveRequest, 0, len(requests)),
	}
	for _, lr := range requests {
		response.Requests = append(response.Requests, toWireLeave(lr))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
