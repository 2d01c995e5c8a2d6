package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/store"
	"github.com/dayflowhq/dayflow/pkg/cryptox"
	"github.com/dayflowhq/dayflow/pkg/idx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

// seedEmployee describes one demo directory entry.
type seedEmployee struct {
	staffNo    string
	email      string
	secret     string
	name       string
	role       string
	phone      string
	address    string
	department string
	position   string
	joinDate   string
	salary     float64
}

// demoDirectory is the fixed demo roster seeded into an empty directory.
var demoDirectory = []seedEmployee{
	{
		staffNo:    "EMP001",
		email:      "john.doe@dayflow.com",
		secret:     "password123",
		name:       "John Doe",
		role:       domain.RoleEmployee,
		phone:      "+1 234 567 8900",
		address:    "123 Main St, New York, NY 10001",
		department: "Engineering",
		position:   "Software Engineer",
		joinDate:   "2023-01-15",
		salary:     75000,
	},
	{
		staffNo:    "EMP002",
		email:      "admin@dayflow.com",
		secret:     "admin123",
		name:       "Sarah Johnson",
		role:       domain.RoleAdmin,
		phone:      "+1 234 567 8901",
		address:    "456 Oak Ave, New York, NY 10002",
		department: "Human Resources",
		position:   "HR Manager",
		joinDate:   "2022-06-01",
		salary:     95000,
	},
	{
		staffNo:    "EMP003",
		email:      "jane.smith@dayflow.com",
		secret:     "password123",
		name:       "Jane Smith",
		role:       domain.RoleEmployee,
		phone:      "+1 234 567 8902",
		address:    "789 Pine St, New York, NY 10003",
		department: "Marketing",
		position:   "Marketing Specialist",
		joinDate:   "2023-03-20",
		salary:     65000,
	},
}

// SeedDemoDirectory populates an empty directory with the demo roster.
// A directory that already has employees is left untouched, so restarts
// never duplicate or reset accounts.
func (s *DirectoryService) SeedDemoDirectory(ctx context.Context) error {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Employees().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check directory: %w", err)
	}
	if !empty {
		l.Debug("directory already populated, skipping seed")
		return nil
	}

	now := time.Now()

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, seed := range demoDirectory {
			hash, err := cryptox.HashSecret(seed.secret)
			if err != nil {
				return fmt.Errorf("hash seed secret: %w", err)
			}

			joined, err := time.Parse(domain.DateFormat, seed.joinDate)
			if err != nil {
				return fmt.Errorf("parse seed join date: %w", err)
			}

			emp := domain.Employee{
				ID:         idx.New().String(),
				EmployeeID: seed.staffNo,
				Email:      seed.email,
				Name:       seed.name,
				SecretHash: hash,
				Role:       seed.role,
				Phone:      seed.phone,
				Address:    seed.address,
				Department: seed.department,
				Position:   seed.position,
				JoinDate:   joined,
				Salary:     seed.salary,
				CreatedAt:  now,
				UpdatedAt:  now,
			}

			if err := tx.Employees().CreateEmployee(ctx, emp); err != nil {
				return fmt.Errorf("seed %s: %w", seed.staffNo, err)
			}

			l.Info("seeded demo employee",
				slog.String("employee_id", seed.staffNo),
				slog.String("role", seed.role),
			)
		}
		return nil
	})
}
