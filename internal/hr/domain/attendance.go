package domain

import "time"

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceHalfDay = "half-day"
	AttendanceLeave   = "leave"
)

// FullDayHours is the minimum worked hours for a day to count as present.
// Anything below counts as a half day.
const FullDayHours = 6.0

type AttendanceRecord struct {
	ID         string
	EmployeeID string // Foreign key to employees.id (ULID, not the staff number)
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     string
	WorkHours  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AttendanceSummary aggregates one employee's records for a month.
type AttendanceSummary struct {
	Month        time.Time
	PresentDays  int
	HalfDays     int
	LeaveDays    int
	AbsentDays   int
	TotalHours   float64
	AverageHours float64
}
