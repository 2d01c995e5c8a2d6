package http

import (
	"net/http"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/httpx"
)

type AttendanceHandler struct {
	AttendanceService *service.AttendanceService
}

// HandleCheckIn opens today's attendance record for the caller.
//
//	@Summary		Check in
//	@Description	Records the caller's check-in for today. A second check-in on the
//	@Description	same day is a conflict.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	hrsdk.AttendanceRecord	"New attendance record"
//	@Failure		401	{object}	hrsdk.ErrorResponse		"Invalid or missing session token"
//	@Failure		409	{object}	hrsdk.ErrorResponse		"Already checked in today"
//	@Router			/v1/attendance/checkin [post].
func (h *AttendanceHandler) HandleCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, err := h.AttendanceService.CheckIn(ctx, httpx.EmployeeIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, toWireAttendance(rec))
}

// HandleCheckOut closes today's attendance record and computes worked hours.
//
//	@Summary		Check out
//	@Description	Records the caller's check-out for today. Worked hours and the
//	@Description	present/half-day status are computed from the check-in time.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	hrsdk.AttendanceRecord	"Closed attendance record"
//	@Failure		401	{object}	hrsdk.ErrorResponse		"Invalid or missing session token"
//	@Failure		409	{object}	hrsdk.ErrorResponse		"Not checked in, or already checked out"
//	@Router			/v1/attendance/checkout [post].
func (h *AttendanceHandler) HandleCheckOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, err := h.AttendanceService.CheckOut(ctx, httpx.EmployeeIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toWireAttendance(rec))
}

// HandleList returns the caller's attendance records.
//
//	@Summary		List attendance
//	@Description	Returns the caller's attendance records, newest first. An optional
//	@Description	month filter narrows the range.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string						false	"Month filter (YYYY-MM)"
//	@Success		200		{object}	hrsdk.ListAttendanceResponse	"Attendance records"
//	@Failure		400		{object}	hrsdk.ErrorResponse				"Malformed month filter"
//	@Failure		401		{object}	hrsdk.ErrorResponse				"Invalid or missing session token"
//	@Router			/v1/attendance [get].
func (h *AttendanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.AttendanceService.ListAttendance(ctx,
		httpx.EmployeeIDFromCtx(ctx), r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.ListAttendanceResponse{
		Records: make([]hrsdk.AttendanceRecord, 0, len(records)),
	}
	for _, rec := range records {
		response.Records = append(response.Records, toWireAttendance(rec))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleAdminList returns every employee's attendance for one day.
//
//	@Summary		List attendance across employees
//	@Description	Returns every employee's attendance record for a calendar day.
//	@Description	Defaults to today when no date is given. Requires the admin role.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date	query		string							false	"Day (YYYY-MM-DD), defaults to today"
//	@Success		200		{object}	hrsdk.ListAttendanceResponse	"Attendance records for the day"
//	@Failure		400		{object}	hrsdk.ErrorResponse				"Malformed date"
//	@Failure		401		{object}	hrsdk.ErrorResponse				"Invalid or missing session token"
//	@Failure		403		{object}	hrsdk.ErrorResponse				"Caller is not an admin"
//	@Router			/v1/admin/attendance [get].
func (h *AttendanceHandler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.AttendanceService.ListAllOnDate(ctx,
		httpx.RoleFromCtx(ctx), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.ListAttendanceResponse{
		Records: make([]hrsdk.AttendanceRecord, 0, len(records)),
	}
	for _, rec := range records {
		response.Records = append(response.Records, toWireAttendance(rec))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleSummary returns the caller's monthly attendance aggregate.
//
//	@Summary		Attendance summary
//	@Description	Aggregates the caller's attendance for a month. Defaults to the
//	@Description	current month when no filter is given.
//	@Tags			Attendance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			month	query		string					false	"Month (YYYY-MM), defaults to current"
//	@Success		200		{object}	hrsdk.AttendanceSummary	"Monthly aggregate"
//	@Failure		400		{object}	hrsdk.ErrorResponse		"Malformed month"
//	@Failure		401		{object}	hrsdk.ErrorResponse		"Invalid or missing session token"
//	@Router			/v1/attendance/summary [get].
func (h *AttendanceHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.AttendanceService.Summary(ctx,
		httpx.EmployeeIDFromCtx(ctx), r.URL.Query().Get("month"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := hrsdk.AttendanceSummary{
		Month:        summary.Month.Format(domain.MonthFormat),
		PresentDays:  summary.PresentDays,
		HalfDays:     summary.HalfDays,
		LeaveDays:    summary.LeaveDays,
		AbsentDays:   summary.AbsentDays,
		TotalHours:   summary.TotalHours,
		AverageHours: summary.AverageHours,
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
