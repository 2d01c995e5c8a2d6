package domain

import "time"

// Leave types.
const (
	LeavePaid   = "paid"
	LeaveSick   = "sick"
	LeaveUnpaid = "unpaid"
)

// Leave statuses.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// ValidLeaveType reports whether t is a recognized leave type.
func ValidLeaveType(t string) bool {
	return t == LeavePaid || t == LeaveSick || t == LeaveUnpaid
}

type LeaveRequest struct {
	ID            string
	EmployeeID    string // Foreign key to employees.id
	Type          string
	StartDate     time.Time
	EndDate       time.Time
	Days          int // Inclusive span in days
	Reason        string
	Status        string
	ReviewedBy    string // Staff number of the reviewing admin, empty while pending
	ReviewComment string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeaveDays returns the inclusive number of days between start and end.
func LeaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
