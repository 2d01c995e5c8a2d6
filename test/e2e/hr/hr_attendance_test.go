package hr_test

import (
	"testing"
	"time"

	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/stretchr/testify/require"
)

// TestCheckInCheckOutFlow verifies the basic attendance day lifecycle.
func TestCheckInCheckOutFlow(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)
	ctx := t.Context()

	rec, err := session.CheckIn(ctx)
	require.NoError(t, err)
	require.Equal(t, "present", rec.Status)
	require.NotEmpty(t, rec.CheckIn)
	require.Empty(t, rec.CheckOut)
	require.Equal(t, time.Now().UTC().Format("2006-01-02"), rec.Date)

	closed, err := session.CheckOut(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, closed.CheckOut)

	// Seconds apart, so it's a half day with roughly zero worked hours.
	require.Equal(t, "half-day", closed.Status)
	require.Less(t, closed.WorkHours, 1.0)
}

// TestDoubleCheckInConflicts verifies one record per day.
func TestDoubleCheckInConflicts(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)
	ctx := t.Context()

	_, err := session.CheckIn(ctx)
	require.NoError(t, err)

	_, err = session.CheckIn(ctx)
	assertAPIError(t, err, hrsdk.ErrorCodeConflict)
}

// TestCheckOutWithoutCheckInConflicts verifies checkout needs an open record.
func TestCheckOutWithoutCheckInConflicts(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	_, err := session.CheckOut(t.Context())
	assertAPIError(t, err, hrsdk.ErrorCodeConflict)
}

// TestDoubleCheckOutConflicts verifies a closed record stays closed.
func TestDoubleCheckOutConflicts(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)
	ctx := t.Context()

	_, err := session.CheckIn(ctx)
	require.NoError(t, err)
	_, err = session.CheckOut(ctx)
	require.NoError(t, err)

	_, err = session.CheckOut(ctx)
	assertAPIError(t, err, hrsdk.ErrorCodeConflict)
}

// TestListAttendanceAndSummary verifies listing and the monthly aggregate see
// today's record.
func TestListAttendanceAndSummary(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)
	ctx := t.Context()

	_, err := session.CheckIn(ctx)
	require.NoError(t, err)
	_, err = session.CheckOut(ctx)
	require.NoError(t, err)

	month := time.Now().UTC().Format("2006-01")

	records, err := session.ListAttendance(ctx, month)
	require.NoError(t, err)
	require.Len(t, records, 1)

	// Unfiltered listing includes it too.
	all, err := session.ListAttendance(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)

	summary, err := session.AttendanceSummary(ctx, month)
	require.NoError(t, err)
	require.Equal(t, month, summary.Month)
	require.Equal(t, 1, summary.PresentDays+summary.HalfDays)
}

// TestListAttendanceRejectsBadMonth verifies the month filter is validated.
func TestListAttendanceRejectsBadMonth(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	_, err := session.ListAttendance(t.Context(), "March-2024")
	assertAPIError(t, err, hrsdk.ErrorCodeInvalidRequest)
}

// TestAttendanceIsPerEmployee verifies employees only see their own records.
func TestAttendanceIsPerEmployee(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	john := signInAs(t, client, johnEmail, johnPassword)
	_, err := john.CheckIn(ctx)
	require.NoError(t, err)

	jane := signInAs(t, client, janeEmail, janePassword)
	records, err := jane.ListAttendance(ctx, "")
	require.NoError(t, err)
	require.Empty(t, records, "another employee's check-in is invisible")
}
