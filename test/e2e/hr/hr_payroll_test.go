package hr_test

import (
	"testing"
	"time"

	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/stretchr/testify/require"
)

// TestPayrollStatementMath verifies the statement derivation for a seeded
// employee: base is one twelfth of the annual salary plus flat adjustments.
func TestPayrollStatementMath(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	month := time.Now().UTC().Format("2006-01")
	statement, err := session.GetPayroll(t.Context(), month)
	require.NoError(t, err)

	base := 75000.0 / 12
	require.Equal(t, "EMP001", statement.EmployeeID)
	require.Equal(t, month, statement.Month)
	require.InDelta(t, base, statement.BaseSalary, 0.001)
	require.InDelta(t, 500, statement.Allowances, 0.001)
	require.InDelta(t, 1200, statement.Deductions, 0.001)
	require.InDelta(t, base+500-1200, statement.NetPay, 0.001)
}

// TestPayrollDefaultsToCurrentMonth verifies the month parameter is optional.
func TestPayrollDefaultsToCurrentMonth(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	statement, err := session.GetPayroll(t.Context(), "")
	require.NoError(t, err)
	require.Equal(t, time.Now().UTC().Format("2006-01"), statement.Month)
}

// TestPayrollRejectsOutOfRangeMonths verifies months before the join date and
// in the future are refused.
func TestPayrollRejectsOutOfRangeMonths(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)
	ctx := t.Context()

	// John joined 2023-01-15.
	_, err := session.GetPayroll(ctx, "2022-12")
	assertAPIError(t, err, hrsdk.ErrorCodeNotFound)

	future := time.Now().UTC().AddDate(0, 2, 0).Format("2006-01")
	_, err = session.GetPayroll(ctx, future)
	assertAPIError(t, err, hrsdk.ErrorCodeNotFound)

	_, err = session.GetPayroll(ctx, "last-month")
	assertAPIError(t, err, hrsdk.ErrorCodeInvalidRequest)
}

// TestPayrollHistoryIsCappedAndOrdered verifies history runs newest first and
// is capped at two years for long-tenured employees.
func TestPayrollHistoryIsCappedAndOrdered(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	statements, err := session.PayrollHistory(t.Context())
	require.NoError(t, err)

	// John joined in early 2023, well over the cap.
	require.Len(t, statements, 24)
	require.Equal(t, time.Now().UTC().Format("2006-01"), statements[0].Month)

	for i := 1; i < len(statements); i++ {
		require.Greater(t, statements[i-1].Month, statements[i].Month,
			"statements should run newest first")
	}
}
