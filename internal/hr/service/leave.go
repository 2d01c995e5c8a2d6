package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/store"
	"github.com/dayflowhq/dayflow/pkg/idx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

// LeaveService handles leave applications and their review.
type LeaveService struct {
	Store store.Store

	// Clock is overridable for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *LeaveService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// SubmitParams are the caller-supplied fields of a leave application.
// Dates use the YYYY-MM-DD wire format.
type SubmitParams struct {
	Type      string
	StartDate string
	EndDate   string
	Reason    string
}

// Submit files a new leave request in the pending state.
func (s *LeaveService) Submit(ctx context.Context, employeeID string, p SubmitParams) (domain.LeaveRequest, error) {
	if !domain.ValidLeaveType(p.Type) {
		return domain.LeaveRequest{}, ErrInvalidInput
	}
	if strings.TrimSpace(p.Reason) == "" {
		return domain.LeaveRequest{}, ErrInvalidInput
	}

	start, err := time.Parse(domain.DateFormat, p.StartDate)
	if err != nil {
		return domain.LeaveRequest{}, ErrInvalidInput
	}
	end, err := time.Parse(domain.DateFormat, p.EndDate)
	if err != nil {
		return domain.LeaveRequest{}, ErrInvalidInput
	}
	if end.Before(start) {
		return domain.LeaveRequest{}, ErrInvalidInput
	}

	now := s.now()
	req := domain.LeaveRequest{
		ID:         idx.New().String(),
		EmployeeID: employeeID,
		Type:       p.Type,
		StartDate:  start,
		EndDate:    end,
		Days:       domain.LeaveDays(start, end),
		Reason:     strings.TrimSpace(p.Reason),
		Status:     domain.LeavePending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Store.Leave().CreateLeave(ctx, req); err != nil {
		return domain.LeaveRequest{}, err
	}

	slogx.FromContext(ctx).Info("leave submitted",
		slog.String("type", req.Type),
		slog.Int("days", req.Days),
	)
	return req, nil
}

// ListMine returns the employee's own requests, newest first.
func (s *LeaveService) ListMine(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	return s.Store.Leave().ListLeaveByEmployee(ctx, employeeID)
}

// ListAll returns every request, optionally filtered by status. Only admins
// may call it.
func (s *LeaveService) ListAll(ctx context.Context, actorRole, status string) ([]domain.LeaveRequest, error) {
	if actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if status != "" && status != domain.LeavePending && status != domain.LeaveApproved && status != domain.LeaveRejected {
		return nil, ErrInvalidInput
	}
	return s.Store.Leave().ListLeave(ctx, status)
}

// Review approves or rejects a pending request. The reviewer is recorded by
// staff number. Requests that already left the pending state cannot be
// reviewed again.
func (s *LeaveService) Review(ctx context.Context, reviewer domain.Employee, leaveID, status, comment string) (domain.LeaveRequest, error) {
	if reviewer.Role != domain.RoleAdmin {
		return domain.LeaveRequest{}, ErrForbidden
	}
	if status != domain.LeaveApproved && status != domain.LeaveRejected {
		return domain.LeaveRequest{}, ErrInvalidInput
	}

	now := s.now()
	var reviewed domain.LeaveRequest

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		req, err := tx.Leave().GetLeaveByID(ctx, leaveID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if req.Status != domain.LeavePending {
			return ErrAlreadyReviewed
		}

		if err := tx.Leave().ReviewLeave(ctx, leaveID, status, reviewer.EmployeeID, comment, now); err != nil {
			return err
		}

		req.Status = status
		req.ReviewedBy = reviewer.EmployeeID
		req.ReviewComment = comment
		req.UpdatedAt = now
		reviewed = req
		return nil
	})
	if err != nil {
		return domain.LeaveRequest{}, err
	}

	slogx.FromContext(ctx).Info("leave reviewed",
		slog.String("leave_id", leaveID),
		slog.String("status", status),
		slog.String("reviewed_by", reviewer.EmployeeID),
	)
	return reviewed, nil
}
