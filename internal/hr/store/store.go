package store

import (
	"context"
	"errors"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Employees() Employees
	Attendance() Attendance
	Leave() Leave

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., sign-up's
	// duplicate check plus insert). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Employees interface {
	// GetEmployeeByID returns an employee by its ULID.
	GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error)

	// GetEmployeeByEmail is used during sign-in. The lookup is an exact,
	// case-sensitive match on the email column.
	GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error)

	// GetEmployeeByStaffNumber returns an employee by its staff number
	// (e.g. "EMP001"). Used for the sign-up duplicate check.
	GetEmployeeByStaffNumber(ctx context.Context, staffNo string) (domain.Employee, error)

	// ListEmployees returns every employee in insertion order.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// CreateEmployee inserts a new employee (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email or staff number is taken.
	CreateEmployee(ctx context.Context, e domain.Employee) error

	// UpdateEmployee rewrites the mutable columns of an employee row.
	// Identity columns (id, employee_id, email) are never touched.
	UpdateEmployee(ctx context.Context, e domain.Employee) error

	// CountEmployees returns the total number of employees.
	CountEmployees(ctx context.Context) (int, error)

	// CountByDepartment returns headcount per department.
	CountByDepartment(ctx context.Context) (map[string]int, error)

	// IsEmpty returns true if there are no employees.
	IsEmpty(ctx context.Context) (bool, error)
}

type Attendance interface {
	// GetAttendanceByDate returns one employee's record for a calendar day.
	GetAttendanceByDate(ctx context.Context, employeeID string, date time.Time) (domain.AttendanceRecord, error)

	// CreateAttendance inserts a new record. Returns ErrAlreadyExists when
	// the employee already has a record for that day.
	CreateAttendance(ctx context.Context, rec domain.AttendanceRecord) error

	// UpdateAttendance rewrites the check-out, status and hours columns.
	UpdateAttendance(ctx context.Context, rec domain.AttendanceRecord) error

	// ListAttendanceByMonth returns one employee's records within a month,
	// newest first.
	ListAttendanceByMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.AttendanceRecord, error)

	// ListAttendance returns all of one employee's records, newest first.
	ListAttendance(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error)

	// ListAttendanceOnDate returns every employee's record for a calendar
	// day, in record insertion order.
	ListAttendanceOnDate(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error)

	// CountPresentOnDate counts employees checked in on a calendar day.
	CountPresentOnDate(ctx context.Context, date time.Time) (int, error)
}

type Leave interface {
	// CreateLeave inserts a new leave request in the pending state.
	CreateLeave(ctx context.Context, l domain.LeaveRequest) error

	// GetLeaveByID returns a leave request by its ULID.
	GetLeaveByID(ctx context.Context, id string) (domain.LeaveRequest, error)

	// ListLeaveByEmployee returns one employee's requests, newest first.
	ListLeaveByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)

	// ListLeave returns every request, newest first, optionally filtered by
	// status. An empty status means no filter.
	ListLeave(ctx context.Context, status string) ([]domain.LeaveRequest, error)

	// ReviewLeave sets the status, reviewer and comment of a request.
	ReviewLeave(ctx context.Context, id, status, reviewedBy, comment string, now time.Time) error

	// CountPendingLeave counts requests still awaiting review.
	CountPendingLeave(ctx context.Context) (int, error)
}
