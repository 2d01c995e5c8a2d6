package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dayflowhq/dayflow/internal/hr/domain"
	"github.com/dayflowhq/dayflow/internal/hr/sessionstore"
	"github.com/dayflowhq/dayflow/internal/hr/store"
	"github.com/dayflowhq/dayflow/pkg/cryptox"
	"github.com/dayflowhq/dayflow/pkg/idx"
	"github.com/dayflowhq/dayflow/pkg/jwtx"
	"github.com/dayflowhq/dayflow/pkg/slogx"
)

// Defaults assigned to self-service sign-ups. Admins fill these in later.
const (
	DefaultDepartment = "Not Assigned"
	DefaultPosition   = "Not Assigned"
	DefaultSalary     = 50000.0
)

// MinSecretLength is the minimum accepted password length at sign-up.
const MinSecretLength = 6

// DirectoryService is the session and directory manager. It owns sign-in,
// sign-up, sign-out, the current-session view, profile updates and the
// directory listing. At most one session is active at a time; the active
// session survives process restarts via the session store.
type DirectoryService struct {
	Store    store.Store
	Sessions *sessionstore.FileStore
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration

	mu     sync.Mutex
	active string // ULID of the signed-in employee, "" when none
}

// NewDirectoryService builds the service and restores any persisted session.
// A corrupt or missing session blob restores to "no active session".
func NewDirectoryService(
	st store.Store,
	sessions *sessionstore.FileStore,
	signer jwtx.Signer,
	issuer string,
	tokenTTL time.Duration,
) *DirectoryService {
	if tokenTTL <= 0 {
		tokenTTL = jwtx.DefaultSessionTokenTTL
	}

	s := &DirectoryService{
		Store:    st,
		Sessions: sessions,
		Signer:   signer,
		Issuer:   issuer,
		TokenTTL: tokenTTL,
	}

	if snap, ok := sessions.Load(); ok {
		s.active = snap.EmployeeID
	}

	return s
}

// SignUpParams are the caller-supplied fields of a sign-up. A blank
// EmployeeID gets the next free EMP### slot and a blank Role defaults to
// employee; department, position, salary and join date always use the
// self-service defaults.
type SignUpParams struct {
	EmployeeID string
	Name       string
	Email      string
	Secret     string
	Role       string
	Phone      string
	Address    string
}

// SignIn verifies the credentials and makes the employee the active session.
// Both an unknown email and a wrong password return ErrInvalidCredentials;
// the distinction never leaves this method.
func (s *DirectoryService) SignIn(ctx context.Context, email, secret string) (domain.Employee, string, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || secret == "" {
		return domain.Employee{}, "", ErrInvalidCredentials
	}

	emp, err := s.Store.Employees().GetEmployeeByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("sign-in failed", slog.String("reason", "credential_mismatch"))
			return domain.Employee{}, "", ErrInvalidCredentials
		}
		return domain.Employee{}, "", err
	}

	if err := cryptox.VerifySecret(secret, emp.SecretHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Info("sign-in failed", slog.String("reason", "credential_mismatch"))
			return domain.Employee{}, "", ErrInvalidCredentials
		}
		return domain.Employee{}, "", err
	}

	token, err := s.issueToken(emp, time.Now())
	if err != nil {
		return domain.Employee{}, "", err
	}

	if err := s.activate(emp.ID, token); err != nil {
		return domain.Employee{}, "", err
	}

	l.Info("sign-in succeeded",
		slog.String("employee_id", emp.EmployeeID),
		slog.String("role", emp.Role),
	)
	return emp, token, nil
}

// SignUp registers a new employee and makes it the active session. A taken
// email or staff number fails with ErrDuplicateIdentity; either collision is
// enough to reject.
func (s *DirectoryService) SignUp(ctx context.Context, p SignUpParams) (domain.Employee, string, error) {
	l := slogx.FromContext(ctx)
	now := time.Now()

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.EmployeeID = strings.TrimSpace(p.EmployeeID)
	if p.Name == "" || p.Email == "" || !strings.Contains(p.Email, "@") {
		return domain.Employee{}, "", ErrInvalidInput
	}
	if len(p.Secret) < MinSecretLength {
		return domain.Employee{}, "", ErrInvalidInput
	}
	if p.Role == "" {
		p.Role = domain.RoleEmployee
	} else if !domain.ValidRole(p.Role) {
		return domain.Employee{}, "", ErrInvalidInput
	}

	hash, err := cryptox.HashSecret(p.Secret)
	if err != nil {
		return domain.Employee{}, "", fmt.Errorf("hash secret: %w", err)
	}

	emp := domain.Employee{
		ID:         idx.New().String(),
		Email:      p.Email,
		Name:       p.Name,
		SecretHash: hash,
		Role:       p.Role,
		Phone:      p.Phone,
		Address:    p.Address,
		Department: DefaultDepartment,
		Position:   DefaultPosition,
		JoinDate:   midnightUTC(now),
		Salary:     DefaultSalary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Duplicate check and insert share one transaction so two concurrent
	// sign-ups cannot both pass the check. The unique index backstops it.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Employees().GetEmployeeByEmail(ctx, p.Email); err == nil {
			return ErrDuplicateIdentity
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if p.EmployeeID != "" {
			if _, err := tx.Employees().GetEmployeeByStaffNumber(ctx, p.EmployeeID); err == nil {
				return ErrDuplicateIdentity
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			emp.EmployeeID = p.EmployeeID
		} else {
			count, err := tx.Employees().CountEmployees(ctx)
			if err != nil {
				return err
			}
			emp.EmployeeID = fmt.Sprintf("EMP%03d", count+1)
		}

		if err := tx.Employees().CreateEmployee(ctx, emp); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateIdentity
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Employee{}, "", err
	}

	token, err := s.issueToken(emp, now)
	if err != nil {
		return domain.Employee{}, "", err
	}

	if err := s.activate(emp.ID, token); err != nil {
		return domain.Employee{}, "", err
	}

	l.Info("sign-up succeeded", slog.String("employee_id", emp.EmployeeID))
	return emp, token, nil
}

// SignOut clears the active session. Signing out with no active session is a no-op.
func (s *DirectoryService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = ""
	if err := s.Sessions.Clear(); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("signed out")
	return nil
}

// CurrentSession returns the employee behind the active session, or
// ErrNoActiveSession. A stale session whose employee no longer exists is
// cleared and reported as no session.
func (s *DirectoryService) CurrentSession(ctx context.Context) (domain.Employee, error) {
	s.mu.Lock()
	id := s.active
	s.mu.Unlock()

	if id == "" {
		return domain.Employee{}, ErrNoActiveSession
	}

	emp, err := s.Store.Employees().GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = s.SignOut(ctx)
			return domain.Employee{}, ErrNoActiveSession
		}
		return domain.Employee{}, err
	}
	return emp, nil
}

// GetEmployee returns one employee record by its ULID.
func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (domain.Employee, error) {
	emp, err := s.Store.Employees().GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrNotFound
		}
		return domain.Employee{}, err
	}
	return emp, nil
}

// UpdateProfile merges a partial self-service update into the employee's own
// record and returns the result. It fails with ErrNoActiveSession unless the
// employee owns the active session slot, so a token that outlives a sign-out
// cannot keep mutating the record. Identity fields are rejected before this
// method is reached; it only ever sees mutable fields.
func (s *DirectoryService) UpdateProfile(ctx context.Context, employeeID string, u domain.ProfileUpdate) (domain.Employee, error) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()
	if active == "" || active != employeeID {
		return domain.Employee{}, ErrNoActiveSession
	}

	emp, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return domain.Employee{}, err
	}

	u.Apply(&emp, time.Now())

	if err := s.Store.Employees().UpdateEmployee(ctx, emp); err != nil {
		return domain.Employee{}, err
	}

	slogx.FromContext(ctx).Info("profile updated", slog.String("employee_id", emp.EmployeeID))
	return emp, nil
}

// AdminUpdateEmployee merges a partial update, possibly including a role
// change, into any employee's record. The caller's role is checked here as
// well as at the route guard.
func (s *DirectoryService) AdminUpdateEmployee(ctx context.Context, actorRole, targetID string, u domain.AdminEmployeeUpdate) (domain.Employee, error) {
	if actorRole != domain.RoleAdmin {
		return domain.Employee{}, ErrForbidden
	}
	if u.Role != nil && !domain.ValidRole(*u.Role) {
		return domain.Employee{}, ErrInvalidInput
	}

	emp, err := s.GetEmployee(ctx, targetID)
	if err != nil {
		return domain.Employee{}, err
	}

	u.Apply(&emp, time.Now())

	if err := s.Store.Employees().UpdateEmployee(ctx, emp); err != nil {
		return domain.Employee{}, err
	}

	slogx.FromContext(ctx).Info("employee updated",
		slog.String("employee_id", emp.EmployeeID),
		slog.String("role", emp.Role),
	)
	return emp, nil
}

// ListEmployees returns the whole directory in insertion order. Only admins
// may call it; the check lives here, not just in the route guard.
func (s *DirectoryService) ListEmployees(ctx context.Context, actorRole string) ([]domain.Employee, error) {
	if actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.Store.Employees().ListEmployees(ctx)
}

// issueToken signs a session token for the employee.
func (s *DirectoryService) issueToken(emp domain.Employee, now time.Time) (string, error) {
	claims := jwtx.NewSessionClaims(emp.ID, emp.Role, emp.Email, emp.Name, s.Issuer, s.TokenTTL, now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// activate records the employee as the active session, replacing any previous
// one, and persists the snapshot.
func (s *DirectoryService) activate(employeeID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = employeeID
	return s.Sessions.Save(sessionstore.Snapshot{EmployeeID: employeeID, Token: token})
}

// midnightUTC truncates t to the start of its UTC day.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
