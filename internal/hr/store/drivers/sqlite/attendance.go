package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
)

type attendanceRepo struct {
	db dbtx
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, status, work_hours, created_at, updated_at`

func scanAttendance(row interface{ Scan(dest ...any) error }) (domain.AttendanceRecord, error) {
	var rec domain.AttendanceRecord
	var checkIn, checkOut sql.NullTime
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &checkIn, &checkOut,
		&rec.Status, &rec.WorkHours, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return domain.AttendanceRecord{}, err
	}
	if checkIn.Valid {
		rec.CheckIn = &checkIn.Time
	}
	if checkOut.Valid {
		rec.CheckOut = &checkOut.Time
	}
	return rec, nil
}

func optionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *attendanceRepo) GetAttendanceByDate(ctx context.Context, employeeID string, date time.Time) (domain.AttendanceRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE employee_id = ? AND date = ?`,
		employeeID, date)
	rec, err := scanAttendance(row)
	if err != nil {
		return domain.AttendanceRecord{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *attendanceRepo) CreateAttendance(ctx context.Context, rec domain.AttendanceRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (id, employee_id, date, check_in, check_out, status, work_hours, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.EmployeeID, rec.Date, optionalTime(rec.CheckIn), optionalTime(rec.CheckOut),
		rec.Status, rec.WorkHours, rec.CreatedAt, rec.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *attendanceRepo) UpdateAttendance(ctx context.Context, rec domain.AttendanceRecord) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE attendance
		SET check_out = ?, status = ?, work_hours = ?, updated_at = ?
		WHERE id = ?`,
		optionalTime(rec.CheckOut), rec.Status, rec.WorkHours, rec.UpdatedAt, rec.ID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *attendanceRepo) ListAttendanceByMonth(ctx context.Context, employeeID string, month time.Time) ([]domain.AttendanceRecord, error) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE employee_id = ? AND date >= ? AND date < ?
		 ORDER BY date DESC`,
		employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepo) ListAttendance(ctx context.Context, employeeID string) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE employee_id = ? ORDER BY date DESC`,
		employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepo) ListAttendanceOnDate(ctx context.Context, date time.Time) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE date = ? ORDER BY id`,
		date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (r *attendanceRepo) CountPresentOnDate(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = ? AND status IN (?, ?)`,
		date, domain.AttendancePresent, domain.AttendanceHalfDay,
	).Scan(&count)
	return count, err
}

func collectAttendance(rows *sql.Rows) ([]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
