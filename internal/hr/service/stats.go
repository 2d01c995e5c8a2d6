package service

import (
	"context"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/store"
)

// StatsService computes the admin dashboard aggregate.
type StatsService struct {
	Store store.Store

	// Clock is overridable for tests; nil means time.Now.
	Clock func() time.Time
}

func (s *StatsService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Stats returns headline numbers for the dashboard. Only admins may call it.
func (s *StatsService) Stats(ctx context.Context, actorRole string) (domain.Stats, error) {
	if actorRole != domain.RoleAdmin {
		return domain.Stats{}, ErrForbidden
	}

	total, err := s.Store.Employees().CountEmployees(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	departments, err := s.Store.Employees().CountByDepartment(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	present, err := s.Store.Attendance().CountPresentOnDate(ctx, midnightUTC(s.now()))
	if err != nil {
		return domain.Stats{}, err
	}

	pending, err := s.Store.Leave().CountPendingLeave(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.Stats{
		TotalEmployees:       total,
		PresentToday:         present,
		PendingLeaveRequests: pending,
		Departments:          departments,
	}, nil
}
