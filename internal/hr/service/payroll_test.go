package service

import (
	"context"
	"testing"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/stretchr/testify/require"
)

func payrollEmployee(joined string, salary float64) domain.Employee {
	join, _ := time.Parse(domain.DateFormat, joined)
	return domain.Employee{
		EmployeeID: "EMP001",
		JoinDate:   join,
		Salary:     salary,
	}
}

func TestStatementComputesNetPay(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	svc := &PayrollService{Clock: clock}

	emp := payrollEmployee("2024-01-10", 84000)

	stmt, err := svc.Statement(ctx, emp, "2026-08")
	require.NoError(t, err)
	require.Equal(t, "EMP001", stmt.EmployeeID)
	require.InDelta(t, 7000.0, stmt.BaseSalary, 0.001)
	require.InDelta(t, domain.MonthlyAllowances, stmt.Allowances, 0.001)
	require.InDelta(t, domain.MonthlyDeductions, stmt.Deductions, 0.001)
	require.InDelta(t, 7000.0+domain.MonthlyAllowances-domain.MonthlyDeductions, stmt.NetPay, 0.001)
}

func TestStatementDefaultsToCurrentMonth(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	svc := &PayrollService{Clock: clock}

	stmt, err := svc.Statement(ctx, payrollEmployee("2024-01-10", 60000), "")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), stmt.Month)
}

func TestStatementRejectsOutOfRangeMonths(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	svc := &PayrollService{Clock: clock}
	emp := payrollEmployee("2025-03-10", 60000)

	_, err := svc.Statement(ctx, emp, "2025-02")
	require.ErrorIs(t, err, ErrNotFound, "month before joining")

	_, err = svc.Statement(ctx, emp, "2026-09")
	require.ErrorIs(t, err, ErrNotFound, "future month")

	_, err = svc.Statement(ctx, emp, "soon")
	require.ErrorIs(t, err, ErrInvalidInput)

	// The join month itself is payable
	_, err = svc.Statement(ctx, emp, "2025-03")
	require.NoError(t, err)
}

func TestHistoryRunsFromCurrentBackToJoin(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	svc := &PayrollService{Clock: clock}

	history, err := svc.History(ctx, payrollEmployee("2026-05-20", 60000))
	require.NoError(t, err)
	require.Len(t, history, 4) // May, June, July, August
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), history[0].Month)
	require.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), history[3].Month)
}

func TestHistoryIsCapped(t *testing.T) {
	ctx := context.Background()
	clock, _ := fixedClock(time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC))
	svc := &PayrollService{Clock: clock}

	history, err := svc.History(ctx, payrollEmployee("2018-01-02", 60000))
	require.NoError(t, err)
	require.Len(t, history, maxPayrollHistoryMonths)
}
