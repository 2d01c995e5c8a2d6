package hrsdk

import (
	"github.com/dayflowhq/dayflow/pkg/jwtx"
)

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse represents a standard error response from the HR service.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Directory Types
// ============================================================================

// Employee is the public projection of an employee record. It never carries
// credential material.
type Employee struct {
	// ID is the unique identifier of the employee record (ULID)
	ID string `json:"id"`

	// EmployeeID is the human-facing staff number (e.g., "EMP001")
	EmployeeID string `json:"employeeId"`

	// Email is the sign-in email address, unique across the directory
	Email string `json:"email"`

	// Name is the employee's display name
	Name string `json:"name"`

	// Role is either "employee" or "admin"
	Role string `json:"role"`

	Phone   string `json:"phone"`
	Address string `json:"address"`

	// Department and Position default to "Not Assigned" for self-service sign-ups
	Department string `json:"department"`
	Position   string `json:"position"`

	// JoinDate is the date the employee joined, formatted as YYYY-MM-DD
	JoinDate string `json:"joinDate"`

	// Salary is the annual salary
	Salary float64 `json:"salary"`
}

// ListEmployeesResponse contains the full directory in insertion order.
type ListEmployeesResponse struct {
	Employees []Employee `json:"employees"`
}

// ============================================================================
// Auth Types
// ============================================================================

// SignInRequest is the body of POST /v1/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the body of POST /v1/auth/signup. A blank employeeId is
// assigned the next free staff number and a blank role defaults to employee;
// department, position, salary and join date are assigned by the service.
type SignUpRequest struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// SessionResponse is returned from sign-in, sign-up and the current-session
// endpoint. Token fields are only populated when a fresh token was issued.
type SessionResponse struct {
	// Token is the bearer token for subsequent requests
	Token string `json:"token,omitempty"`

	// TokenType is always "Bearer" when a token is present
	TokenType string `json:"tokenType,omitempty"`

	// ExpiresIn is the lifetime in seconds of the token
	ExpiresIn int `json:"expiresIn,omitempty"`

	// Employee is the signed-in employee's public record
	Employee Employee `json:"employee"`
}

// ============================================================================
// Profile Types
// ============================================================================

// ProfileUpdateRequest is the body of PATCH /v1/profile. Only non-nil fields
// are applied. Identity fields (id, employeeId, email, role) are rejected by
// the service when present in the request body.
type ProfileUpdateRequest struct {
	Name       *string  `json:"name,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Address    *string  `json:"address,omitempty"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	JoinDate   *string  `json:"joinDate,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
}

// AdminEmployeeUpdateRequest is the body of PATCH /v1/employees/{id}. Admins
// may additionally change the role. Identity fields remain immutable.
type AdminEmployeeUpdateRequest struct {
	Name       *string  `json:"name,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Address    *string  `json:"address,omitempty"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	JoinDate   *string  `json:"joinDate,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	Role       *string  `json:"role,omitempty"`
}

// String returns a pointer to s. Convenience for building update requests.
func String(s string) *string { return &s }

// Float64 returns a pointer to f. Convenience for building update requests.
func Float64(f float64) *float64 { return &f }

// ============================================================================
// Attendance Types
// ============================================================================

// AttendanceRecord represents one employee's attendance for one day.
type AttendanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`

	// Date is the attendance day, formatted as YYYY-MM-DD
	Date string `json:"date"`

	// CheckIn and CheckOut are RFC3339 timestamps; CheckOut is empty until checkout
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`

	// Status is one of "present", "absent", "half-day" or "leave"
	Status string `json:"status"`

	// WorkHours is the computed hours between check-in and check-out
	WorkHours float64 `json:"workHours"`
}

// ListAttendanceResponse contains attendance records, newest first.
type ListAttendanceResponse struct {
	Records []AttendanceRecord `json:"records"`
}

// AttendanceSummary aggregates one employee's attendance for a month.
type AttendanceSummary struct {
	// Month is formatted as YYYY-MM
	Month string `json:"month"`

	PresentDays  int     `json:"presentDays"`
	HalfDays     int     `json:"halfDays"`
	LeaveDays    int     `json:"leaveDays"`
	AbsentDays   int     `json:"absentDays"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}

// ============================================================================
// Leave Types
// ============================================================================

// LeaveRequest represents a leave application and its review state.
type LeaveRequest struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`

	// Type is one of "paid", "sick" or "unpaid"
	Type string `json:"type"`

	// StartDate and EndDate are formatted as YYYY-MM-DD, inclusive
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Days is the inclusive length of the leave in days
	Days int `json:"days"`

	Reason string `json:"reason"`

	// Status is one of "pending", "approved" or "rejected"
	Status string `json:"status"`

	// ReviewedBy is the staff number of the reviewing admin (empty while pending)
	ReviewedBy    string `json:"reviewedBy,omitempty"`
	ReviewComment string `json:"reviewComment,omitempty"`

	// CreatedAt is an RFC3339 timestamp
	CreatedAt string `json:"createdAt"`
}

// SubmitLeaveRequest is the body of POST /v1/leave.
type SubmitLeaveRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// ReviewLeaveRequest is the body of POST /v1/leave/{id}/review.
type ReviewLeaveRequest struct {
	// Status must be "approved" or "rejected"
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

// ListLeaveResponse contains leave requests, newest first.
type ListLeaveResponse struct {
	Requests []LeaveRequest `json:"requests"`
}

// ============================================================================
// Payroll Types
// ============================================================================

// PayrollStatement is a computed monthly payroll line for one employee.
type PayrollStatement struct {
	EmployeeID string `json:"employeeId"`

	// Month is formatted as YYYY-MM
	Month string `json:"month"`

	BaseSalary float64 `json:"baseSalary"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"netPay"`
}

// PayrollHistoryResponse contains statements, newest month first.
type PayrollHistoryResponse struct {
	Statements []PayrollStatement `json:"statements"`
}

// ============================================================================
// Admin Types
// ============================================================================

// StatsResponse is the admin dashboard aggregate.
type StatsResponse struct {
	TotalEmployees       int            `json:"totalEmployees"`
	PresentToday         int            `json:"presentToday"`
	PendingLeaveRequests int            `json:"pendingLeaveRequests"`
	Departments          map[string]int `json:"departments"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
// Used in the /readyz endpoint to indicate the status of each component.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the JWT signing capability status
	Signer string `json:"signer"`
}

// ============================================================================
// JWKS Types
// ============================================================================

// JWKSResponse contains the JSON Web Key Set.
// This is returned from the GET /.well-known/jwks.json endpoint and contains
// public keys used to verify session token signatures.
type JWKSResponse jwtx.KeySet
