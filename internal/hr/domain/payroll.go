package domain

import "time"

// Flat monthly payroll adjustments applied to every employee.
const (
	MonthlyAllowances = 500.0
	MonthlyDeductions = 1200.0
)

// PayrollStatement is a computed monthly payroll line. Statements are derived
// from the employee record on demand and never stored.
type PayrollStatement struct {
	EmployeeID string // Staff number, not the ULID
	Month      time.Time
	BaseSalary float64
	Allowances float64
	Deductions float64
	NetPay     float64
}

// ComputePayroll derives the statement for an employee's salary and month.
// Base pay is one twelfth of the annual salary.
func ComputePayroll(staffNo string, annualSalary float64, month time.Time) PayrollStatement {
	base := annualSalary / 12
	return PayrollStatement{
		EmployeeID: staffNo,
		Month:      month,
		BaseSalary: base,
		Allowances: MonthlyAllowances,
		Deductions: MonthlyDeductions,
		NetPay:     base + MonthlyAllowances - MonthlyDeductions,
	}
}
