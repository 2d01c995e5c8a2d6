package hr_test

import (
	"testing"

	"github.com/dayflowhq/dayflow/pkg/hrsdk"
	"github.com/stretchr/testify/require"
)

// TestAdminStats verifies the dashboard aggregate over the seeded roster.
func TestAdminStats(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	// One employee checks in and files a leave request so the aggregate has
	// something to count.
	john := signInAs(t, client, johnEmail, johnPassword)
	_, err := john.CheckIn(ctx)
	require.NoError(t, err)
	_, err = john.SubmitLeave(ctx, hrsdk.SubmitLeaveRequest{
		Type: "paid", StartDate: "2026-09-07", EndDate: "2026-09-08", Reason: "trip",
	})
	require.NoError(t, err)

	admin := signInAs(t, client, adminEmail, adminPass)
	stats, err := admin.GetStats(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, stats.TotalEmployees)
	require.Equal(t, 1, stats.PresentToday)
	require.Equal(t, 1, stats.PendingLeaveRequests)
	require.Equal(t, map[string]int{
		"Engineering":     1,
		"Human Resources": 1,
		"Marketing":       1,
	}, stats.Departments)
}

// TestAdminAttendanceListing verifies admins can read the whole roster's
// attendance for a day, and regular employees cannot.
func TestAdminAttendanceListing(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	john := signInAs(t, client, johnEmail, johnPassword)
	johnRec, err := john.CheckIn(ctx)
	require.NoError(t, err)

	_, err = john.ListAllAttendance(ctx, "")
	assertAPIError(t, err, hrsdk.ErrorCodeInsufficientRole)

	admin := signInAs(t, client, adminEmail, adminPass)
	records, err := admin.ListAllAttendance(ctx, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, johnRec.EmployeeID, records[0].EmployeeID)

	// An explicit day with no records is an empty listing, not an error.
	records, err = admin.ListAllAttendance(ctx, "2020-01-01")
	require.NoError(t, err)
	require.Empty(t, records)

	_, err = admin.ListAllAttendance(ctx, "not-a-date")
	assertAPIError(t, err, hrsdk.ErrorCodeInvalidRequest)
}

// TestStatsRequiresAdmin verifies regular employees cannot read the stats.
func TestStatsRequiresAdmin(t *testing.T) {
	baseURL, cleanup := setupHRContainer(t)
	defer cleanup()

	client := hrsdk.NewSDKClient(baseURL)
	session := signInAs(t, client, johnEmail, johnPassword)

	_, err := session.GetStats(t.Context())
	assertAPIError(t, err, hrsdk.ErrorCodeInsufficientRole)
}
