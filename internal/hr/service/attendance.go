package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/store"
	"github.com/dayflowhq/dayflow/pkg/idx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

// AttendanceService tracks daily check-ins and check-outs. One record per
// employee per calendar day (UTC).
type AttendanceService struct {
	Store store.Store

	// Clock is overridable for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *AttendanceService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// CheckIn opens today's attendance record for the employee.
// A second check-in on the same day returns ErrAlreadyCheckedIn.
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID string) (domain.AttendanceRecord, error) {
	now := s.now()
	today := midnightUTC(now)
	checkIn := now

	rec := domain.AttendanceRecord{
		ID:         idx.New().String(),
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    &checkIn,
		Status:     domain.AttendancePresent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.Attendance().CreateAttendance(ctx, rec); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.AttendanceRecord{}, ErrAlreadyCheckedIn
		}
		return domain.AttendanceRecord{}, err
	}

	slogx.FromContext(ctx).Info("checked in", slog.String("date", today.Format(domain.DateFormat)))
	return rec, nil
}

// CheckOut closes today's attendance record and settles the day's status:
// present when at least FullDayHours were worked, half-day otherwise.
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID string) (domain.AttendanceRecord, error) {
	now := s.now()
	today := midnightUTC(now)

	rec, err := s.Store.Attendance().GetAttendanceByDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AttendanceRecord{}, ErrNotCheckedIn
		}
		return domain.AttendanceRecord{}, err
	}
	if rec.CheckIn == nil {
		return domain.AttendanceRecord{}, ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return domain.AttendanceRecord{}, ErrAlreadyCheckedOut
	}

	checkOut := now
	rec.CheckOut = &checkOut
	rec.WorkHours = roundHours(checkOut.Sub(*rec.CheckIn).Hours())
	if rec.WorkHours >= domain.FullDayHours {
		rec.Status = domain.AttendancePresent
	} else {
		rec.Status = domain.AttendanceHalfDay
	}
	rec.UpdatedAt = now

	if err := s.Store.Attendance().UpdateAttendance(ctx, rec); err != nil {
		return domain.AttendanceRecord{}, err
	}

	slogx.FromContext(ctx).Info("checked out",
		slog.String("date", today.Format(domain.DateFormat)),
		slog.Float64("hours", rec.WorkHours),
	)
	return rec, nil
}

// ListAttendance returns the employee's records, optionally limited to one
// month (formatted YYYY-MM), newest first.
func (s *AttendanceService) ListAttendance(ctx context.Context, employeeID, month string) ([]domain.AttendanceRecord, error) {
	if month == "" {
		return s.Store.Attendance().ListAttendance(ctx, employeeID)
	}

	m, err := time.Parse(domain.MonthFormat, month)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.Store.Attendance().ListAttendanceByMonth(ctx, employeeID, m)
}

// ListAllOnDate returns every employee's attendance for one calendar day
// (formatted YYYY-MM-DD). An empty date means today. Only admins may call
// it; the check lives here, not just in the route guard.
func (s *AttendanceService) ListAllOnDate(ctx context.Context, actorRole, date string) ([]domain.AttendanceRecord, error) {
	if actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	day := midnightUTC(s.now())
	if date != "" {
		parsed, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return nil, ErrInvalidInput
		}
		day = parsed
	}
	return s.Store.Attendance().ListAttendanceOnDate(ctx, day)
}

// Summary aggregates one month of the employee's attendance. An empty month
// means the current month.
func (s *AttendanceService) Summary(ctx context.Context, employeeID, month string) (domain.AttendanceSummary, error) {
	m := midnightUTC(s.now())
	if month != "" {
		parsed, err := time.Parse(domain.MonthFormat, month)
		if err != nil {
			return domain.AttendanceSummary{}, ErrInvalidInput
		}
		m = parsed
	}

	records, err := s.Store.Attendance().ListAttendanceByMonth(ctx, employeeID, m)
	if err != nil {
		return domain.AttendanceSummary{}, err
	}

	summary := domain.AttendanceSummary{
		Month: time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
	for _, rec := range records {
		switch rec.Status {
		case domain.AttendancePresent:
			summary.PresentDays++
		case domain.AttendanceHalfDay:
			summary.HalfDays++
		case domain.AttendanceLeave:
			summary.LeaveDays++
		case domain.AttendanceAbsent:
			summary.AbsentDays++
		}
		summary.TotalHours += rec.WorkHours
	}

	if worked := summary.PresentDays + summary.HalfDays; worked > 0 {
		summary.AverageHours = roundHours(summary.TotalHours / float64(worked))
	}
	return summary, nil
}

// roundHours keeps worked hours to two decimal places so they render cleanly.
func roundHours(h float64) float64 {
	return float64(int(h*100+0.5)) / 100
}
