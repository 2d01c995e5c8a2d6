package sqlite

import (
	"context"
	"database/sql"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
)

type employeesRepo struct {
	db dbtx
}

const employeeColumns = `id, employee_id, email, name, secret_hash, role, phone, address, department, position, join_date, salary, created_at, updated_at`

func scanEmployee(row interface{ Scan(dest ...any) error }) (domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Email, &e.Name, &e.SecretHash, &e.Role,
		&e.Phone, &e.Address, &e.Department, &e.Position,
		&e.JoinDate, &e.Salary, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) GetEmployeeByStaffNumber(ctx context.Context, staffNo string) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE employee_id = ?`, staffNo)
	e, err := scanEmployee(row)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

// ListEmployees returns the directory in insertion order. IDs are monotonic
// ULIDs, so ordering by id preserves creation order.
func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, employee_id, email, name, secret_hash, role, phone, address, department, position, join_date, salary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.EmployeeID, e.Email, e.Name, e.SecretHash, e.Role,
		e.Phone, e.Address, e.Department, e.Position,
		e.JoinDate, e.Salary, e.CreatedAt, e.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name = ?, role = ?, phone = ?, address = ?, department = ?, position = ?, join_date = ?, salary = ?, updated_at = ?
		WHERE id = ?`,
		e.Name, e.Role, e.Phone, e.Address, e.Department, e.Position,
		e.JoinDate, e.Salary, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (r *employeesRepo) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

func (r *employeesRepo) CountByDepartment(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT department, COUNT(*) FROM employees GROUP BY department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dept string
		var n int
		if err := rows.Scan(&dept, &n); err != nil {
			return nil, err
		}
		counts[dept] = n
	}
	return counts, rows.Err()
}

func (r *employeesRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.CountEmployees(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// requireRowChanged maps zero-row updates to ErrNotFound.
func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
