package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
)

type leaveRepo struct {
	db dbtx
}

const leaveColumns = `id, employee_id, type, start_date, end_date, days, reason, status, reviewed_by, review_comment, created_at, updated_at`

func scanLeave(row interface{ Scan(dest ...any) error }) (domain.LeaveRequest, error) {
	var l domain.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Days,
		&l.Reason, &l.Status, &l.ReviewedBy, &l.ReviewComment,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func (r *leaveRepo) CreateLeave(ctx context.Context, l domain.LeaveRequest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, days, reason, status, reviewed_by, review_comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.EmployeeID, l.Type, l.StartDate, l.EndDate, l.Days,
		l.Reason, l.Status, l.ReviewedBy, l.ReviewComment,
		l.CreatedAt, l.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *leaveRepo) GetLeaveByID(ctx context.Context, id string) (domain.LeaveRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE id = ?`, id)
	l, err := scanLeave(row)
	if err != nil {
		return domain.LeaveRequest{}, mapNotFound(err)
	}
	return l, nil
}

func (r *leaveRepo) ListLeaveByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+leaveColumns+` FROM leave_requests WHERE employee_id = ? ORDER BY id DESC`,
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeave(rows)
}

func (r *leaveRepo) ListLeave(ctx context.Context, status string) ([]domain.LeaveRequest, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+leaveColumns+` FROM leave_requests ORDER BY id DESC`)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT `+leaveColumns+` FROM leave_requests WHERE status = ? ORDER BY id DESC`,
			status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLeave(rows)
}

func (r *leaveRepo) ReviewLeave(ctx context.Context, id, status, reviewedBy, comment string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE leave_requests
		SET status = ?, reviewed_by = ?, review_comment = ?, updated_at = ?
		WHERE id = ?`,
		status, reviewedBy, comment, now, id,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *leaveRepo) CountPendingLeave(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = ?`,
		domain.LeavePending,
	).Scan(&count)
	return count, err
}

func collectLeave(rows *sql.Rows) ([]domain.LeaveRequest, error) {
	var requests []domain.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}
