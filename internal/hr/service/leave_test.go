package service

import (
	"context"
	"testing"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/stretchr/testify/require"
)

func newLeaveFixture(t *testing.T) (*LeaveService, domain.Employee, domain.Employee) {
	t.Helper()
	ctx := context.Background()

	st := newTestStore(t)
	dir := newTestDirectory(t, st, sessionPath(t))

	emp, _, err := dir.SignUp(ctx, SignUpParams{Name: "Alice", Email: "alice@dayflow.com", Secret: "hunter22"})
	require.NoError(t, err)

	admin, _, err := dir.SignUp(ctx, SignUpParams{Name: "Sarah", Email: "sarah@dayflow.com", Secret: "hunter22"})
	require.NoError(t, err)
	role := domain.RoleAdmin
	admin, err = dir.AdminUpdateEmployee(ctx, domain.RoleAdmin, admin.ID, domain.AdminEmployeeUpdate{Role: &role})
	require.NoError(t, err)

	clock, _ := fixedClock(time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	return &LeaveService{Store: st, Clock: clock}, emp, admin
}

func TestSubmitLeaveStartsPending(t *testing.T) {
	ctx := context.Background()
	svc, emp, _ := newLeaveFixture(t)

	req, err := svc.Submit(ctx, emp.ID, SubmitParams{
		Type:      domain.LeavePaid,
		StartDate: "2026-08-10",
		EndDate:   "2026-08-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	require.Equal(t, domain.LeavePending, req.Status)
	require.Equal(t, 3, req.Days)
	require.Empty(t, req.ReviewedBy)
}

func TestSubmitLeaveValidation(t *testing.T) {
	ctx := context.Background()
	svc, emp, _ := newLeaveFixture(t)

	cases := map[string]SubmitParams{
		"unknown type":      {Type: "sabbatical", StartDate: "2026-08-10", EndDate: "2026-08-12", Reason: "r"},
		"bad start date":    {Type: domain.LeaveSick, StartDate: "10/08/2026", EndDate: "2026-08-12", Reason: "r"},
		"bad end date":      {Type: domain.LeaveSick, StartDate: "2026-08-10", EndDate: "later", Reason: "r"},
		"end before start":  {Type: domain.LeaveSick, StartDate: "2026-08-12", EndDate: "2026-08-10", Reason: "r"},
		"missing reason":    {Type: domain.LeaveSick, StartDate: "2026-08-10", EndDate: "2026-08-12", Reason: "  "},
	}
	for name, params := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(ctx, emp.ID, params)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSingleDayLeaveCountsOneDay(t *testing.T) {
	ctx := context.Background()
	svc, emp, _ := newLeaveFixture(t)

	req, err := svc.Submit(ctx, emp.ID, SubmitParams{
		Type:      domain.LeaveSick,
		StartDate: "2026-08-10",
		EndDate:   "2026-08-10",
		Reason:    "doctor",
	})
	require.NoError(t, err)
	require.Equal(t, 1, req.Days)
}

func TestReviewLeave(t *testing.T) {
	ctx := context.Background()
	svc, emp, admin := newLeaveFixture(t)

	req, err := svc.Submit(ctx, emp.ID, SubmitParams{
		Type:      domain.LeavePaid,
		StartDate: "2026-08-10",
		EndDate:   "2026-08-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	t.Run("non-admin cannot review", func(t *testing.T) {
		_, err := svc.Review(ctx, emp, req.ID, domain.LeaveApproved, "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("status must be a decision", func(t *testing.T) {
		_, err := svc.Review(ctx, admin, req.ID, domain.LeavePending, "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("approve records the reviewer", func(t *testing.T) {
		reviewed, err := svc.Review(ctx, admin, req.ID, domain.LeaveApproved, "enjoy")
		require.NoError(t, err)
		require.Equal(t, domain.LeaveApproved, reviewed.Status)
		require.Equal(t, admin.EmployeeID, reviewed.ReviewedBy)
		require.Equal(t, "enjoy", reviewed.ReviewComment)
	})

	t.Run("second review refused", func(t *testing.T) {
		_, err := svc.Review(ctx, admin, req.ID, domain.LeaveRejected, "")
		require.ErrorIs(t, err, ErrAlreadyReviewed)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.Review(ctx, admin, "01J00000000000000000000000", domain.LeaveApproved, "")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListLeave(t *testing.T) {
	ctx := context.Background()
	svc, emp, admin := newLeaveFixture(t)

	first, err := svc.Submit(ctx, emp.ID, SubmitParams{
		Type: domain.LeavePaid, StartDate: "2026-08-10", EndDate: "2026-08-10", Reason: "a",
	})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, emp.ID, SubmitParams{
		Type: domain.LeaveSick, StartDate: "2026-08-20", EndDate: "2026-08-21", Reason: "b",
	})
	require.NoError(t, err)

	_, err = svc.Review(ctx, admin, first.ID, domain.LeaveApproved, "")
	require.NoError(t, err)

	t.Run("mine come newest first", func(t *testing.T) {
		mine, err := svc.ListMine(ctx, emp.ID)
		require.NoError(t, err)
		require.Len(t, mine, 2)
		require.Equal(t, second.ID, mine[0].ID)
	})

	t.Run("all requires admin", func(t *testing.T) {
		_, err := svc.ListAll(ctx, domain.RoleEmployee, "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("all filters by status", func(t *testing.T) {
		pending, err := svc.ListAll(ctx, domain.RoleAdmin, domain.LeavePending)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		require.Equal(t, second.ID, pending[0].ID)

		everything, err := svc.ListAll(ctx, domain.RoleAdmin, "")
		require.NoError(t, err)
		require.Len(t, everything, 2)
	})

	t.Run("bad status filter refused", func(t *testing.T) {
		_, err := svc.ListAll(ctx, domain.RoleAdmin, "maybe")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
