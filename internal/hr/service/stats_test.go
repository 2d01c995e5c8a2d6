package service

import (
	"context"
	"testing"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/stretchr/testify/require"
)

func TestStatsRequiresAdmin(t *testing.T) {
	svc := &StatsService{Store: newTestStore(t)}
	_, err := svc.Stats(context.Background(), domain.RoleEmployee)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestStatsAggregates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	dir := newTestDirectory(t, st, sessionPath(t))
	require.NoError(t, dir.SeedDemoDirectory(ctx))

	employees, err := dir.ListEmployees(ctx, domain.RoleAdmin)
	require.NoError(t, err)

	clock, _ := fixedClock(time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC))
	att := &AttendanceService{Store: st, Clock: clock}
	_, err = att.CheckIn(ctx, employees[0].ID)
	require.NoError(t, err)

	leave := &LeaveService{Store: st, Clock: clock}
	_, err = leave.Submit(ctx, employees[2].ID, SubmitParams{
		Type: domain.LeavePaid, StartDate: "2026-08-10", EndDate: "2026-08-11", Reason: "trip",
	})
	require.NoError(t, err)

	stats := &StatsService{Store: st, Clock: clock}
	got, err := stats.Stats(ctx, domain.RoleAdmin)
	require.NoError(t, err)

	require.Equal(t, 3, got.TotalEmployees)
	require.Equal(t, 1, got.PresentToday)
	require.Equal(t, 1, got.PendingLeaveRequests)
	require.Equal(t, map[string]int{"Engineering": 1, "Human Resources": 1, "Marketing": 1}, got.Departments)
}
