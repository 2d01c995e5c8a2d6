package service

import (
	"context"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
)

// maxPayrollHistoryMonths caps how far back the history view reaches.
const maxPayrollHistoryMonths = 24

// PayrollService derives monthly statements from the employee record.
// Nothing is stored; a salary change is reflected in every statement.
type PayrollService struct {
	// Clock is overridable for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *PayrollService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Statement computes the employee's statement for a month (YYYY-MM).
// An empty month means the current month. Months before the employee joined
// or in the future return ErrNotFound.
func (s *PayrollService) Statement(ctx context.Context, emp domain.Employee, month string) (domain.PayrollStatement, error) {
	current := monthStart(s.now())

	m := current
	if month != "" {
		parsed, err := time.Parse(domain.MonthFormat, month)
		if err != nil {
			return domain.PayrollStatement{}, ErrInvalidInput
		}
		m = monthStart(parsed)
	}

	if m.After(current) || m.Before(monthStart(emp.JoinDate)) {
		return domain.PayrollStatement{}, ErrNotFound
	}

	return domain.ComputePayroll(emp.EmployeeID, emp.Salary, m), nil
}

// History returns statements from the join month through the current month,
// newest first, capped at maxPayrollHistoryMonths.
func (s *PayrollService) History(ctx context.Context, emp domain.Employee) ([]domain.PayrollStatement, error) {
	current := monthStart(s.now())
	joined := monthStart(emp.JoinDate)

	var statements []domain.PayrollStatement
	for m := current; !m.Before(joined) && len(statements) < maxPayrollHistoryMonths; m = m.AddDate(0, -1, 0) {
		statements = append(statements, domain.ComputePayroll(emp.EmployeeID, emp.Salary, m))
	}
	return statements, nil
}

// monthStart truncates t to the first day of its UTC month.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
