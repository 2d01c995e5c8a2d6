package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/service"
	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

// toWireEmployee projects a directory record onto the public wire shape.
// The credential hash stays behind.
func toWireEmployee(e domain.Employee) hrsdk.Employee {
	return hrsdk.Employee{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Name:       e.Name,
		Role:       e.Role,
		Phone:      e.Phone,
		Address:    e.Address,
		Department: e.Department,
		Position:   e.Position,
		JoinDate:   e.JoinDate.Format(domain.DateFormat),
		Salary:     e.Salary,
	}
}

func toWireAttendance(rec domain.AttendanceRecord) hrsdk.AttendanceRecord {
	out := hrsdk.AttendanceRecord{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date.Format(domain.DateFormat),
		Status:     rec.Status,
		WorkHours:  rec.WorkHours,
	}
	if rec.CheckIn != nil {
		out.CheckIn = rec.CheckIn.Format(time.RFC3339)
	}
	if rec.CheckOut != nil {
		out.CheckOut = rec.CheckOut.Format(time.RFC3339)
	}
	return out
}

func toWireLeave(lr domain.LeaveRequest) hrsdk.LeaveRequest {
	return hrsdk.LeaveRequest{
		ID:            lr.ID,
		EmployeeID:    lr.EmployeeID,
		Type:          lr.Type,
		StartDate:     lr.StartDate.Format(domain.DateFormat),
		EndDate:       lr.EndDate.Format(domain.DateFormat),
		Days:          lr.Days,
		Reason:        lr.Reason,
		Status:        lr.Status,
		ReviewedBy:    lr.ReviewedBy,
		ReviewComment: lr.ReviewComment,
		CreatedAt:     lr.CreatedAt.Format(time.RFC3339),
	}
}

func toWirePayroll(st domain.PayrollStatement) hrsdk.PayrollStatement {
	return hrsdk.PayrollStatement{
		EmployeeID: st.EmployeeID,
		Month:      st.Month.Format(domain.MonthFormat),
		BaseSalary: st.BaseSalary,
		Allowances: st.Allowances,
		Deductions: st.Deductions,
		NetPay:     st.NetPay,
	}
}

// writeServiceError maps service sentinel errors to their wire representation.
// Unknown errors become an opaque 500 and get logged with detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		hrsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrDuplicateIdentity):
		hrsdk.ErrDuplicateIdentity.WriteError(w)
	case errors.Is(err, service.ErrNoActiveSession):
		hrsdk.ErrNoActiveSession.WriteError(w)
	case errors.Is(err, service.ErrImmutableField):
		hrsdk.ErrImmutableField.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		hrsdk.ErrInsufficientRole.WriteError(w)
	case errors.Is(err, service.ErrInvalidInput):
		hrsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		hrsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		hrsdk.NewAPIError(http.StatusConflict, hrsdk.ErrorCodeConflict,
			"already checked in today").WriteError(w)
	case errors.Is(err, service.ErrNotCheckedIn):
		hrsdk.NewAPIError(http.StatusConflict, hrsdk.ErrorCodeConflict,
			"no open check-in for today").WriteError(w)
	case errors.Is(err, service.ErrAlreadyCheckedOut):
		hrsdk.NewAPIError(http.StatusConflict, hrsdk.ErrorCodeConflict,
			"already checked out today").WriteError(w)
	case errors.Is(err, service.ErrAlreadyReviewed):
		hrsdk.NewAPIError(http.StatusConflict, hrsdk.ErrorCodeConflict,
			"leave request has already been reviewed").WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "error", err)
		hrsdk.ErrServerError.WriteError(w)
	}
}
