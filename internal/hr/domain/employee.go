package domain

import "time"

// Role names. There are exactly two.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// DateFormat is the wire format for calendar dates (join date, attendance
// days, leave ranges).
const DateFormat = "2006-01-02"

// MonthFormat is the wire format for calendar months (attendance summaries,
// payroll statements).
const MonthFormat = "2006-01"

// ValidRole reports whether r is a recognized role name.
func ValidRole(r string) bool {
	return r == RoleEmployee || r == RoleAdmin
}

type Employee struct {
	ID         string
	EmployeeID string // Human-facing staff number (e.g. "EMP001")
	Email      string
	Name       string
	SecretHash string // argon2 encoded, never leaves the service layer
	Role       string
	Phone      string
	Address    string
	Department string
	Position   string
	JoinDate   time.Time
	Salary     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfileUpdate is a partial self-service update. Nil fields are left
// untouched. Identity fields (ID, EmployeeID, Email, Role) have no place
// here; they are rejected before a ProfileUpdate is ever built.
type ProfileUpdate struct {
	Name       *string
	Phone      *string
	Address    *string
	Department *string
	Position   *string
	JoinDate   *time.Time
	Salary     *float64
}

// AdminEmployeeUpdate extends ProfileUpdate with the role change only admins
// may perform.
type AdminEmployeeUpdate struct {
	ProfileUpdate
	Role *string
}

// Apply merges the update into e, bumping UpdatedAt.
func (u ProfileUpdate) Apply(e *Employee, now time.Time) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Phone != nil {
		e.Phone = *u.Phone
	}
	if u.Address != nil {
		e.Address = *u.Address
	}
	if u.Department != nil {
		e.Department = *u.Department
	}
	if u.Position != nil {
		e.Position = *u.Position
	}
	if u.JoinDate != nil {
		e.JoinDate = *u.JoinDate
	}
	if u.Salary != nil {
		e.Salary = *u.Salary
	}
	e.UpdatedAt = now
}

// Apply merges the admin update into e, bumping UpdatedAt.
func (u AdminEmployeeUpdate) Apply(e *Employee, now time.Time) {
	u.ProfileUpdate.Apply(e, now)
	if u.Role != nil {
		e.Role = *u.Role
	}
}
